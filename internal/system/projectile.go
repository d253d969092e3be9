// internal/system/projectile.go
package system

import (
	"hand-invaders/internal/component"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
)

// ProjectileSystem двигает пули и убирает вылетевшие за поле.
type ProjectileSystem struct {
	world  *entity.World
	tuning *defs.Tuning
}

func NewProjectileSystem(world *entity.World, tuning *defs.Tuning) *ProjectileSystem {
	return &ProjectileSystem{world: world, tuning: tuning}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.world.PlayerBullets = s.integrate(s.world.PlayerBullets, deltaTime)
	s.world.EnemyBullets = s.integrate(s.world.EnemyBullets, deltaTime)
}

// integrate сдвигает пули по вертикали; вылет за поле не считается промахом
// и не имеет других последствий.
func (s *ProjectileSystem) integrate(list []*component.Bullet, deltaTime float64) []*component.Bullet {
	kept := list[:0]
	for _, b := range list {
		b.Position.Y += b.VelocityY * deltaTime
		if b.Position.Y < 0 || b.Position.Y > s.tuning.Height {
			continue
		}
		kept = append(kept, b)
	}
	clear(list[len(kept):])
	return kept
}

// SpawnBullet создаёт пулю в точке (x, y) и кладёт её в список владельца.
func (s *ProjectileSystem) SpawnBullet(x, y float64, enemyOwned bool, health int) *component.Bullet {
	speed := s.tuning.Player.BulletSpeed
	if enemyOwned {
		speed = s.tuning.Enemies.BulletSpeed
	} else {
		speed = -speed
	}
	if health < 1 {
		health = 1
	}
	b := &component.Bullet{
		ID:         s.world.NewEntity(),
		Position:   component.Vector2D{X: x, Y: y},
		VelocityY:  speed,
		Width:      s.tuning.Player.BulletSize.Width,
		Height:     s.tuning.Player.BulletSize.Height,
		EnemyOwned: enemyOwned,
		Health:     health,
		Visible:    true,
	}
	if enemyOwned {
		s.world.EnemyBullets = append(s.world.EnemyBullets, b)
	} else {
		s.world.PlayerBullets = append(s.world.PlayerBullets, b)
	}
	return b
}
