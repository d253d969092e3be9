// internal/component/player.go
package component

import (
	"hand-invaders/internal/types"
	"hand-invaders/pkg/geom"
)

// Player — корабль игрока. Позиция — центр спрайта.
type Player struct {
	ID       types.EntityID
	Position Vector2D
	Width    float64
	Height   float64
	// BulletCount — сколько пуль вылетает за один залп (ограничивается при стрельбе).
	BulletCount int
	// BulletDamage — сколько попаданий выдерживает каждая пуля игрока.
	BulletDamage int
}

// NewPlayer создаёт игрока с начальными улучшениями.
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Position:     Vector2D{X: x, Y: y},
		Width:        w,
		Height:       h,
		BulletCount:  1,
		BulletDamage: 1,
	}
}

func (p *Player) Bounds() geom.Rect {
	return geom.FromCenter(p.Position.X, p.Position.Y, p.Width, p.Height)
}

// IsVisible — игрок всегда участвует в столкновениях.
func (p *Player) IsVisible() bool {
	return true
}
