// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"hand-invaders/internal/component"
	"hand-invaders/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseKind выбирает тип врага одним броском: вероятности типов
// накапливаются в порядке таблицы, остаток достаётся обычному врагу.
func (s *PRNGService) ChooseKind(kinds []defs.EnemyDefinition) component.EnemyKind {
	return PickKind(kinds, s.Float64())
}

// PickKind — детерминированная часть ChooseKind для заданного броска r ∈ [0, 1).
func PickKind(kinds []defs.EnemyDefinition, r float64) component.EnemyKind {
	cumulative := 0.0
	for _, def := range kinds {
		if def.SpawnRate <= 0 {
			continue
		}
		cumulative += def.SpawnRate
		if r < cumulative {
			return def.Kind
		}
	}
	return component.EnemyNormal
}
