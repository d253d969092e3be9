// internal/event/types.go
package event

import (
	"hand-invaders/internal/component"
	"hand-invaders/internal/types"
)

const (
	ScoreChanged   EventType = "ScoreChanged"   // Изменился счёт
	WaveStarted    EventType = "WaveStarted"    // Началась новая волна
	EnemyDamaged   EventType = "EnemyDamaged"   // Враг ранен, но жив
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен
	PlayerUpgraded EventType = "PlayerUpgraded" // Игрок получил награду
	BarrierHit     EventType = "BarrierHit"     // Разрушен сегмент укрытия
	PlayerFired    EventType = "PlayerFired"
	EnemyFired     EventType = "EnemyFired"
	PlayerHit      EventType = "PlayerHit" // Вражеская пуля коснулась игрока
	GameOver       EventType = "GameOver"
)

type ScoreChangedData struct {
	Score int
	Delta int
}

type WaveStartedData struct {
	Wave int
}

type EnemyDamagedData struct {
	EnemyID    types.EntityID
	Kind       component.EnemyKind
	HealthLeft int
}

type EnemyDestroyedData struct {
	EnemyID types.EntityID
	Kind    component.EnemyKind
	X, Y    float64
}

type PlayerUpgradedData struct {
	Reward       component.Reward
	BulletCount  int
	BulletDamage int
}

type BarrierHitData struct {
	SegmentID  types.EntityID
	EnemyOwned bool // чья пуля разрушила сегмент
}

type PlayerFiredData struct {
	Bullets int
}

type EnemyFiredData struct {
	EnemyID types.EntityID
	Kind    component.EnemyKind
}

// PlayerHitData — Lethal выставлен, если попадание закончило партию.
type PlayerHitData struct {
	BulletID     types.EntityID
	BulletHealth int
	Lethal       bool
}

type GameOverData struct {
	Score  int
	Wave   int
	Reason component.OverReason
}
