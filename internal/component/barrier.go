// internal/component/barrier.go
package component

import (
	"hand-invaders/internal/types"
	"hand-invaders/pkg/geom"
)

// Segment — один блок укрытия. Позиция — левый верхний угол.
// Уничтожается первым же попаданием.
type Segment struct {
	ID       types.EntityID
	Position Vector2D
	Width    float64
	Height   float64
	Row      int
	Alpha    float32 // косметика: верхние ряды плотнее
	Visible  bool
}

func (s *Segment) Bounds() geom.Rect {
	return geom.Rect{X: s.Position.X, Y: s.Position.Y, W: s.Width, H: s.Height}
}

func (s *Segment) IsVisible() bool {
	return s.Visible
}

// Barrier — сетка сегментов. SegmentsRemaining — только учёт,
// фактическое состояние хранится в самих сегментах.
type Barrier struct {
	Segments          []*Segment
	SegmentsRemaining int
}

// Destroy уничтожает сегмент, если он ещё цел.
func (b *Barrier) Destroy(s *Segment) bool {
	if !s.Visible {
		return false
	}
	s.Visible = false
	if b.SegmentsRemaining > 0 {
		b.SegmentsRemaining--
	}
	return true
}
