// internal/system/render.go
package system

import (
	"log/slog"

	"hand-invaders/internal/component"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/types"
	"hand-invaders/pkg/geom"
	"hand-invaders/pkg/render"
)

// RenderSystem держит по одному визуалу на живую сущность: создаёт при первом
// появлении, обновляет каждый кадр и удаляет, когда сущность пропадает из мира.
// Если бэкенд не смог создать визуал, сущность симулируется без него.
type RenderSystem struct {
	backend render.Backend
	handles map[types.EntityID]render.Handle
	failed  map[types.EntityID]struct{}
	seen    map[types.EntityID]struct{}
}

func NewRenderSystem(backend render.Backend) *RenderSystem {
	return &RenderSystem{
		backend: backend,
		handles: make(map[types.EntityID]render.Handle),
		failed:  make(map[types.EntityID]struct{}),
		seen:    make(map[types.EntityID]struct{}),
	}
}

// Sync приводит набор визуалов в соответствие с миром.
func (s *RenderSystem) Sync(w *entity.World) {
	if s.backend == nil {
		return
	}
	clear(s.seen)

	if w.Player != nil {
		s.sync(w.Player.ID, render.Visual{Kind: render.KindPlayer}, w.Player.Bounds(), true)
	}
	for _, e := range w.Enemies {
		s.sync(e.ID, render.Visual{Kind: render.KindEnemy, Variant: string(e.Kind)}, e.Bounds(), e.Visible)
	}
	for _, b := range w.PlayerBullets {
		s.sync(b.ID, render.Visual{Kind: render.KindPlayerBullet}, b.Bounds(), b.Visible)
	}
	for _, b := range w.EnemyBullets {
		s.sync(b.ID, render.Visual{Kind: render.KindEnemyBullet}, b.Bounds(), b.Visible)
	}
	w.Segments(func(_ *component.Barrier, seg *component.Segment) bool {
		s.sync(seg.ID, render.Visual{Kind: render.KindSegment, Alpha: seg.Alpha}, seg.Bounds(), seg.Visible)
		return true
	})

	for id, h := range s.handles {
		if _, ok := s.seen[id]; !ok {
			s.backend.DestroyVisual(h)
			delete(s.handles, id)
		}
	}
	for id := range s.failed {
		if _, ok := s.seen[id]; !ok {
			delete(s.failed, id)
		}
	}
}

func (s *RenderSystem) sync(id types.EntityID, v render.Visual, bounds geom.Rect, visible bool) {
	s.seen[id] = struct{}{}
	if h, ok := s.handles[id]; ok {
		s.backend.UpdateVisual(h, bounds, visible)
		return
	}
	if !visible {
		return
	}
	if _, ok := s.failed[id]; ok {
		return
	}
	h, err := s.backend.CreateVisual(v, bounds)
	if err != nil {
		slog.Warn("failed to create visual", "entity", id, "kind", v.Kind, "error", err)
		s.failed[id] = struct{}{}
		return
	}
	s.handles[id] = h
}

// Reset удаляет все визуалы.
func (s *RenderSystem) Reset() {
	if s.backend == nil {
		return
	}
	for id, h := range s.handles {
		s.backend.DestroyVisual(h)
		delete(s.handles, id)
	}
	clear(s.failed)
}

// Len — число живых визуалов.
func (s *RenderSystem) Len() int {
	return len(s.handles)
}
