// internal/input/input.go
package input

import (
	"sync"
	"time"
)

// Sample — текущее намерение игрока.
//
// Absolute-источники (жесты) задают положение долей ширины поля в HorizontalFraction.
// Относительные источники (клавиатура) задают направление в Steer ∈ [-1, 1].
type Sample struct {
	HorizontalFraction float64
	Steer              float64
	Absolute           bool
	TriggerPressed     bool
}

// Provider отдаёт самое свежее намерение на момент now. Очереди нет.
type Provider interface {
	Sample(now time.Time) Sample
}

// ProviderFunc позволяет использовать функцию как Provider.
type ProviderFunc func(now time.Time) Sample

func (f ProviderFunc) Sample(now time.Time) Sample {
	return f(now)
}

// Latest — однослотовое хранилище "последний выигрывает". Пишется из чужих
// горутин (websocket-мост, события терминала), читается игровым циклом.
// Сэмпл старше TTL считается отсутствием намерения.
type Latest struct {
	mu     sync.Mutex
	sample Sample
	at     time.Time
	ttl    time.Duration
}

// NewLatest создаёт хранилище; ttl <= 0 отключает устаревание.
func NewLatest(ttl time.Duration) *Latest {
	return &Latest{ttl: ttl}
}

// Store записывает сэмпл, полученный в момент at.
func (l *Latest) Store(s Sample, at time.Time) {
	l.mu.Lock()
	l.sample = s
	l.at = at
	l.mu.Unlock()
}

func (l *Latest) Sample(now time.Time) Sample {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.at.IsZero() {
		return Sample{}
	}
	if l.ttl > 0 && now.Sub(l.at) > l.ttl {
		return Sample{}
	}
	return l.sample
}

// Merge объединяет несколько источников: первый источник с намерением
// задаёт движение, курок нажат, если он нажат хотя бы в одном.
type Merge []Provider

func (m Merge) Sample(now time.Time) Sample {
	var out Sample
	moved := false
	for _, p := range m {
		s := p.Sample(now)
		if !moved && (s.Absolute || s.Steer != 0) {
			out.HorizontalFraction = s.HorizontalFraction
			out.Steer = s.Steer
			out.Absolute = s.Absolute
			moved = true
		}
		out.TriggerPressed = out.TriggerPressed || s.TriggerPressed
	}
	return out
}
