// internal/system/player_system.go
package system

import (
	"math"

	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
	"hand-invaders/internal/input"
	"hand-invaders/internal/utils"
)

// PlayerSystem применяет ввод к кораблю игрока: движение и залпы.
type PlayerSystem struct {
	world           *entity.World
	tuning          *defs.Tuning
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
	limiter         *input.FireLimiter
}

func NewPlayerSystem(world *entity.World, tuning *defs.Tuning, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
		limiter:         input.NewFireLimiter(tuning.FireCooldown().Seconds()),
	}
}

// Update двигает игрока по сэмплу и стреляет, если курок нажат и ограничитель пускает.
// Значения вне диапазона обрезаются.
func (s *PlayerSystem) Update(deltaTime float64, sample input.Sample) {
	p := s.world.Player
	switch {
	case sample.Absolute && !math.IsNaN(sample.HorizontalFraction):
		p.Position.X = utils.Clamp(sample.HorizontalFraction, 0, 1) * s.tuning.Width
	case !math.IsNaN(sample.Steer):
		p.Position.X += s.tuning.Player.Speed * utils.Clamp(sample.Steer, -1, 1) * deltaTime
	}
	margin := s.tuning.Player.EdgeMargin
	p.Position.X = utils.Clamp(p.Position.X, margin, s.tuning.Width-margin)

	if sample.TriggerPressed && s.limiter.Allow(s.world.Clock) {
		s.FireVolley()
	}
}

// FireVolley выпускает n = min(BulletCount, MaxBulletCount) пуль,
// симметрично разнесённых вокруг центра корабля.
func (s *PlayerSystem) FireVolley() int {
	p := s.world.Player
	n := min(max(p.BulletCount, 1), s.tuning.Player.MaxBulletCount)
	spacing := s.tuning.Player.VolleySpacing
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * spacing
		s.projectiles.SpawnBullet(p.Position.X+offset, p.Position.Y, false, p.BulletDamage)
	}
	s.eventDispatcher.Emit(event.PlayerFired, event.PlayerFiredData{Bullets: n})
	return n
}
