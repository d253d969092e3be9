// internal/system/shooting.go
package system

import (
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
	"hand-invaders/internal/utils"
)

// ShootingSystem — вражеская стрельба. Вызывается по собственному таймеру
// сессии, а не каждый кадр.
type ShootingSystem struct {
	world           *entity.World
	tuning          *defs.Tuning
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
}

func NewShootingSystem(world *entity.World, tuning *defs.Tuning, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem) *ShootingSystem {
	return &ShootingSystem{
		world:           world,
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
	}
}

// Fire бросает кубик за каждого врага и возвращает число выстрелов.
func (s *ShootingSystem) Fire() int {
	if s.world.IsOver() || len(s.world.Enemies) == 0 {
		return 0
	}
	p := s.tuning.ShootingProbability(s.world.Wave, len(s.world.Enemies))
	fired := 0
	for _, e := range s.world.Enemies {
		if !e.Visible || s.rng.Float64() >= p {
			continue
		}
		s.projectiles.SpawnBullet(e.Position.X, e.Position.Y, true, s.tuning.Kind(e.Kind).ShotHealth())
		s.eventDispatcher.Emit(event.EnemyFired, event.EnemyFiredData{EnemyID: e.ID, Kind: e.Kind})
		fired++
	}
	return fired
}
