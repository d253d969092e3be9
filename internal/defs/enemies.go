// internal/defs/enemies.go
package defs

import "hand-invaders/internal/component"

// EnemyDefinition holds all the static data for a specific kind of enemy:
// spawn weight, hit points, bullet damage capacity and the on-death reward.
type EnemyDefinition struct {
	Kind         component.EnemyKind `json:"kind"`
	SpawnRate    float64             `json:"spawn_rate"`
	Health       int                 `json:"health"`
	BulletHealth int                 `json:"bullet_health"`
	Reward       component.Reward    `json:"reward"`
}

// StartHealth — здоровье при появлении; отсутствие здоровья эквивалентно 1.
func (d EnemyDefinition) StartHealth() int {
	if d.Health < 1 {
		return 1
	}
	return d.Health
}

// ShotHealth — прочность пули, выпущенной врагом этого типа.
func (d EnemyDefinition) ShotHealth() int {
	if d.BulletHealth < 1 {
		return 1
	}
	return d.BulletHealth
}

// DefaultEnemyLibrary — стандартная таблица типов. Порядок важен:
// при выборе типа вероятности накапливаются в порядке объявления.
func DefaultEnemyLibrary() []EnemyDefinition {
	return []EnemyDefinition{
		{Kind: component.EnemySniper, SpawnRate: 0.015, Health: 2, BulletHealth: 2, Reward: component.RewardBulletDamage},
		{Kind: component.EnemyGunner, SpawnRate: 0.015, Health: 1, BulletHealth: 1, Reward: component.RewardBulletCount},
		{Kind: component.EnemyNormal, SpawnRate: 0, Health: 1, BulletHealth: 1},
	}
}
