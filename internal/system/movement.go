// internal/system/movement.go
package system

import (
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
)

// MovementSystem двигает строй врагов.
type MovementSystem struct {
	world  *entity.World
	tuning *defs.Tuning
}

func NewMovementSystem(world *entity.World, tuning *defs.Tuning) *MovementSystem {
	return &MovementSystem{world: world, tuning: tuning}
}

// Update сдвигает строй по горизонтали. Если хоть один враг пересёк
// край поля по ходу движения, строй разворачивается и весь опускается на
// DropStep. Враг, оставшийся за краем после разворота, уже идёт внутрь и
// второго разворота не вызывает.
// Возвращает true, если после опускания строй перешёл линию поражения.
func (s *MovementSystem) Update(deltaTime float64) (reachedBottom bool) {
	cfg := s.tuning.Enemies
	vx := s.world.Formation.VelocityX
	right := s.tuning.Width - cfg.EdgeMargin
	flip := false
	for _, e := range s.world.Enemies {
		e.Position.X += vx * deltaTime
		if (vx > 0 && e.Position.X > right) || (vx < 0 && e.Position.X < cfg.EdgeMargin) {
			flip = true
		}
	}
	if !flip {
		return false
	}

	s.world.Formation.Flip()
	lossLine := s.tuning.LossLine()
	for _, e := range s.world.Enemies {
		e.Position.Y += cfg.DropStep
		if e.Position.Y > lossLine {
			reachedBottom = true
		}
	}
	return reachedBottom
}
