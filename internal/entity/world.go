// internal/entity/world.go
package entity

import (
	"hand-invaders/internal/component"
	"hand-invaders/internal/types"
)

// World — корневое состояние одной партии. Единственный писатель — игровой цикл.
type World struct {
	Clock  float64 // симулированное время, секунды
	NextID types.EntityID

	Player        *component.Player
	PlayerBullets []*component.Bullet
	EnemyBullets  []*component.Bullet
	Enemies       []*component.Enemy
	Formation     *component.Formation
	Barriers      []*component.Barrier

	Score  int
	Wave   int
	Phase  component.Phase
	Reason component.OverReason
}

func NewWorld() *World {
	return &World{
		NextID:    1,
		Formation: &component.Formation{},
		Wave:      1,
		Phase:     component.PhaseActive,
	}
}

// NewEntity выдаёт новый идентификатор сущности.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// IsOver сообщает, заморожен ли мир.
func (w *World) IsOver() bool {
	return w.Phase == component.PhaseOver
}

// Compact вырезает из списков сущности, помеченные невидимыми,
// сохраняя порядок оставшихся.
func (w *World) Compact() {
	w.PlayerBullets = compactBullets(w.PlayerBullets)
	w.EnemyBullets = compactBullets(w.EnemyBullets)

	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Visible {
			alive = append(alive, e)
		}
	}
	clear(w.Enemies[len(alive):])
	w.Enemies = alive
}

// ClearBattlefield убирает все пули и укрытия перед новой волной.
func (w *World) ClearBattlefield() {
	w.PlayerBullets = nil
	w.EnemyBullets = nil
	w.Barriers = nil
}

// Segments перебирает все сегменты всех укрытий в порядке списков.
// Итерация прекращается, если fn вернула false.
func (w *World) Segments(fn func(b *component.Barrier, s *component.Segment) bool) {
	for _, b := range w.Barriers {
		for _, s := range b.Segments {
			if !fn(b, s) {
				return
			}
		}
	}
}

func compactBullets(list []*component.Bullet) []*component.Bullet {
	kept := list[:0]
	for _, b := range list {
		if b.Visible {
			kept = append(kept, b)
		}
	}
	clear(list[len(kept):])
	return kept
}
