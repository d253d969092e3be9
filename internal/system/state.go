// internal/system/state.go
package system

import (
	"log/slog"

	"hand-invaders/internal/component"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
)

// StateSystem — машина состояний партии: Active → Over, без возврата.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, eventDispatcher: eventDispatcher}
}

// Finish замораживает мир и сообщает итог. Повторный вызов ничего не делает
// и возвращает false.
func (s *StateSystem) Finish(reason component.OverReason) bool {
	if s.world.IsOver() {
		return false
	}
	s.world.Phase = component.PhaseOver
	s.world.Reason = reason

	slog.Info("game over", "reason", reason, "score", s.world.Score, "wave", s.world.Wave)
	s.eventDispatcher.Emit(event.GameOver, event.GameOverData{
		Score:  s.world.Score,
		Wave:   s.world.Wave,
		Reason: reason,
	})
	return true
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Phase
}
