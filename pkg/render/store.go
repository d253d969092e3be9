// pkg/render/store.go
package render

import (
	"cmp"
	"slices"
	"sync"

	"hand-invaders/pkg/geom"
)

// Item — визуал в хранилище.
type Item struct {
	Handle  Handle
	Visual  Visual
	Bounds  geom.Rect
	Visible bool
}

// Store — потокобезопасное хранилище визуалов, общее для фронтендов.
// Реализует Backend; фронтенд только обходит Items при отрисовке.
type Store struct {
	mu    sync.Mutex
	next  Handle
	items map[Handle]*Item
}

func NewStore() *Store {
	return &Store{items: make(map[Handle]*Item)}
}

func (s *Store) CreateVisual(v Visual, bounds geom.Rect) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.items[s.next] = &Item{Handle: s.next, Visual: v, Bounds: bounds, Visible: true}
	return s.next, nil
}

// UpdateVisual игнорирует неизвестные дескрипторы.
func (s *Store) UpdateVisual(h Handle, bounds geom.Rect, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[h]; ok {
		it.Bounds = bounds
		it.Visible = visible
	}
}

func (s *Store) DestroyVisual(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, h)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear удаляет все визуалы.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.items)
}

// Items возвращает копию видимых визуалов в порядке отрисовки:
// снизу укрытия, сверху игрок.
func (s *Store) Items() []Item {
	s.mu.Lock()
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Visible {
			out = append(out, *it)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(out, func(a, b Item) int {
		if c := cmp.Compare(layer(a.Visual.Kind), layer(b.Visual.Kind)); c != 0 {
			return c
		}
		return cmp.Compare(a.Handle, b.Handle)
	})
	return out
}

func layer(k Kind) int {
	switch k {
	case KindSegment:
		return 0
	case KindEnemy:
		return 1
	case KindEnemyBullet, KindPlayerBullet:
		return 2
	case KindPlayer:
		return 3
	}
	return 4
}
