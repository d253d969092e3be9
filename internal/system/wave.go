// internal/system/wave.go
package system

import (
	"log/slog"

	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
)

type WaveSystem struct {
	world           *entity.World
	tuning          *defs.Tuning
	spawner         *SpawnSystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, tuning *defs.Tuning, spawner *SpawnSystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		tuning:          tuning,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
	}
}

// Update продвигает волну, если строй уничтожен. Всё происходит в одном
// вызове: ни один тик не видит пустой строй без нового.
func (s *WaveSystem) Update() bool {
	if s.world.IsOver() || len(s.world.Enemies) > 0 {
		return false
	}

	s.world.Wave++
	bonus := s.tuning.Scoring.BonusPerWave
	s.world.Score += bonus
	s.world.ClearBattlefield()
	s.spawner.SpawnWave(s.world.Wave)

	slog.Info("wave cleared", "wave", s.world.Wave, "score", s.world.Score)
	s.eventDispatcher.Emit(event.ScoreChanged, event.ScoreChangedData{Score: s.world.Score, Delta: bonus})
	s.eventDispatcher.Emit(event.WaveStarted, event.WaveStartedData{Wave: s.world.Wave})
	return true
}
