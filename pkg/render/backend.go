// pkg/render/backend.go
package render

//go:generate go tool mockgen -destination=./mocks/backend_mock.go -package=mocks . Backend

import (
	"errors"

	"hand-invaders/pkg/geom"
)

// Kind — вид визуала.
type Kind string

const (
	KindPlayer       Kind = "player"
	KindEnemy        Kind = "enemy"
	KindPlayerBullet Kind = "player_bullet"
	KindEnemyBullet  Kind = "enemy_bullet"
	KindSegment      Kind = "segment"
)

// Visual описывает, что нарисовать. Variant уточняет вид (тип врага),
// Alpha — непрозрачность в [0, 1], ноль означает "непрозрачный".
type Visual struct {
	Kind    Kind
	Variant string
	Alpha   float32
}

// Handle — непрозрачный идентификатор визуала внутри бэкенда.
type Handle uint64

// ErrUnknownHandle возвращается реализациями, которые проверяют дескрипторы.
var ErrUnknownHandle = errors.New("unknown visual handle")

// Backend — сохраняемый (retained) набор визуалов. Ядро только создаёт,
// двигает и удаляет визуалы; как они рисуются, решает реализация.
type Backend interface {
	CreateVisual(v Visual, bounds geom.Rect) (Handle, error)
	UpdateVisual(h Handle, bounds geom.Rect, visible bool)
	DestroyVisual(h Handle)
}
