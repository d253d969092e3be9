// internal/component/projectile.go
package component

import (
	"hand-invaders/internal/types"
	"hand-invaders/pkg/geom"
)

// Bullet — летящая пуля игрока или врага. Позиция — центр спрайта.
type Bullet struct {
	ID         types.EntityID
	Position   Vector2D
	VelocityY  float64
	Width      float64
	Height     float64
	EnemyOwned bool
	// Health — сколько ещё попаданий выдержит пуля ("пробивание").
	Health  int
	Visible bool
}

func (b *Bullet) Bounds() geom.Rect {
	return geom.FromCenter(b.Position.X, b.Position.Y, b.Width, b.Height)
}

func (b *Bullet) IsVisible() bool {
	return b.Visible
}

// Consume тратит одну единицу прочности и сообщает, израсходована ли пуля.
func (b *Bullet) Consume() (spent bool) {
	if b.Health > 1 {
		b.Health--
		return false
	}
	b.Health = 0
	b.Visible = false
	return true
}
