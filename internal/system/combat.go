// internal/system/combat.go
package system

import (
	"hand-invaders/internal/component"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
	"hand-invaders/pkg/geom"
)

// CombatSystem разрешает столкновения пуль за один тик.
//
// Уничтоженные сущности только помечаются невидимыми; из списков они
// вырезаются одним проходом в конце, поэтому списки не меняются во время обхода.
type CombatSystem struct {
	world           *entity.World
	tuning          *defs.Tuning
	eventDispatcher *event.Dispatcher
	state           *StateSystem
}

func NewCombatSystem(world *entity.World, tuning *defs.Tuning, eventDispatcher *event.Dispatcher, state *StateSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		state:           state,
	}
}

// Update возвращает true, если тик закончил партию. В этом случае
// разрешение прерывается сразу и мир больше не трогается.
func (s *CombatSystem) Update() (over bool) {
	if s.world.IsOver() {
		return true
	}

	for _, b := range s.world.PlayerBullets {
		if !b.Visible {
			continue
		}
		for _, e := range s.world.Enemies {
			if !geom.Collide(b, e) {
				continue
			}
			s.hitEnemy(e)
			if b.Consume() {
				break
			}
		}
		if b.Visible {
			s.hitBarriers(b)
		}
	}

	for _, b := range s.world.EnemyBullets {
		if !b.Visible {
			continue
		}
		if geom.Collide(b, s.world.Player) {
			lethal := b.Consume()
			s.eventDispatcher.Emit(event.PlayerHit, event.PlayerHitData{
				BulletID:     b.ID,
				BulletHealth: b.Health,
				Lethal:       lethal,
			})
			if lethal {
				s.state.Finish(component.ReasonPlayerShot)
				return true
			}
		}
		if b.Visible {
			s.hitBarriers(b)
		}
	}

	s.world.Compact()
	return false
}

func (s *CombatSystem) hitEnemy(e *component.Enemy) {
	if !e.Hit() {
		s.eventDispatcher.Emit(event.EnemyDamaged, event.EnemyDamagedData{
			EnemyID:    e.ID,
			Kind:       e.Kind,
			HealthLeft: e.Health,
		})
		return
	}

	points := s.tuning.Scoring.PointsPerKill
	s.world.Score += points
	s.eventDispatcher.Emit(event.EnemyDestroyed, event.EnemyDestroyedData{
		EnemyID: e.ID,
		Kind:    e.Kind,
		X:       e.Position.X,
		Y:       e.Position.Y,
	})
	s.eventDispatcher.Emit(event.ScoreChanged, event.ScoreChangedData{Score: s.world.Score, Delta: points})

	s.applyReward(s.tuning.Kind(e.Kind).Reward)
}

// applyReward выдаёт игроку постоянное улучшение за убитого врага.
func (s *CombatSystem) applyReward(reward component.Reward) {
	p := s.world.Player
	switch reward {
	case component.RewardBulletDamage:
		p.BulletDamage++
	case component.RewardBulletCount:
		p.BulletCount++
	default:
		return
	}
	s.eventDispatcher.Emit(event.PlayerUpgraded, event.PlayerUpgradedData{
		Reward:       reward,
		BulletCount:  p.BulletCount,
		BulletDamage: p.BulletDamage,
	})
}

// hitBarriers проверяет пулю против всех целых сегментов. Каждое касание
// разрушает сегмент и тратит единицу прочности пули.
func (s *CombatSystem) hitBarriers(b *component.Bullet) {
	s.world.Segments(func(barrier *component.Barrier, seg *component.Segment) bool {
		if !geom.Collide(b, seg) {
			return true
		}
		barrier.Destroy(seg)
		s.eventDispatcher.Emit(event.BarrierHit, event.BarrierHitData{SegmentID: seg.ID, EnemyOwned: b.EnemyOwned})
		return !b.Consume()
	})
}
