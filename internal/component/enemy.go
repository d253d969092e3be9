// internal/component/enemy.go
package component

import (
	"hand-invaders/internal/types"
	"hand-invaders/pkg/geom"
)

// EnemyKind — тип врага. Вся специфика типа живёт в таблице defs.EnemyDefinition.
type EnemyKind string

const (
	EnemyNormal EnemyKind = "normal"
	EnemySniper EnemyKind = "sniper"
	EnemyGunner EnemyKind = "gunner"
)

// Reward — постоянный эффект, который получает игрок за уничтожение врага.
type Reward string

const (
	RewardNone         Reward = ""
	RewardBulletDamage Reward = "bullet_damage" // +1 к прочности пуль игрока
	RewardBulletCount  Reward = "bullet_count"  // +1 пуля в залпе
)

// Enemy представляет врага в строю. Позиция — центр спрайта,
// горизонтальная скорость хранится в Formation.
type Enemy struct {
	ID       types.EntityID
	Kind     EnemyKind
	Position Vector2D
	Width    float64
	Height   float64
	Health   int // 1 — погибает от первого попадания
	Visible  bool
}

func (e *Enemy) Bounds() geom.Rect {
	return geom.FromCenter(e.Position.X, e.Position.Y, e.Width, e.Height)
}

func (e *Enemy) IsVisible() bool {
	return e.Visible
}

// Hit регистрирует попадание и сообщает, погиб ли враг.
// Здоровье не опускается ниже нуля.
func (e *Enemy) Hit() (killed bool) {
	if e.Health > 1 {
		e.Health--
		return false
	}
	e.Health = 0
	e.Visible = false
	return true
}
