// internal/defs/tuning.go
package defs

import (
	"time"

	"hand-invaders/internal/component"
)

// Size — ширина и высота хитбокса.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlayerTuning — параметры корабля игрока.
type PlayerTuning struct {
	Speed          float64 `json:"speed"`
	Size           Size    `json:"size"`
	StartOffsetY   float64 `json:"start_offset_y"` // расстояние от нижнего края
	EdgeMargin     float64 `json:"edge_margin"`
	BulletSpeed    float64 `json:"bullet_speed"`
	BulletSize     Size    `json:"bullet_size"`
	FireCooldownMs int     `json:"fire_cooldown_ms"`
	MaxBulletCount int     `json:"max_bullet_count"`
	VolleySpacing  float64 `json:"volley_spacing"`
}

// EnemyTuning — параметры строя врагов и их стрельбы.
type EnemyTuning struct {
	BaseSpeed            float64           `json:"base_speed"`
	SpeedIncreasePerWave float64           `json:"speed_increase_per_wave"`
	Rows                 int               `json:"rows"`
	Columns              int               `json:"columns"`
	Padding              float64           `json:"padding"`
	Size                 Size              `json:"size"`
	EdgeMargin           float64           `json:"edge_margin"`
	DropStep             float64           `json:"drop_step"`
	LossLineOffset       float64           `json:"loss_line_offset"` // расстояние от нижнего края
	ShootingIntervalMs   int               `json:"shooting_interval_ms"`
	BulletSpeed          float64           `json:"bullet_speed"`
	BaseShootingProb     float64           `json:"base_shooting_prob"`
	ShootingProbIncrease float64           `json:"shooting_prob_increase"`
	Kinds                []EnemyDefinition `json:"kinds"`
}

// BarrierTuning — параметры укрытий.
type BarrierTuning struct {
	Count   int     `json:"count"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Y       float64 `json:"y"`
	Spacing float64 `json:"spacing"`
}

// ScoringTuning — начисление очков.
type ScoringTuning struct {
	PointsPerKill int `json:"points_per_kill"`
	BonusPerWave  int `json:"bonus_per_wave"`
}

// Tuning holds every tunable number of a run. Default() mirrors the shipped game;
// LoadTuning overlays a JSON file on top of it.
type Tuning struct {
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	MaxDeltaTime float64       `json:"max_delta_time"`
	Player       PlayerTuning  `json:"player"`
	Enemies      EnemyTuning   `json:"enemies"`
	Barriers     BarrierTuning `json:"barriers"`
	Scoring      ScoringTuning `json:"scoring"`
}

// Default returns the stock tuning.
func Default() *Tuning {
	return &Tuning{
		Width:        800,
		Height:       600,
		MaxDeltaTime: 0.1,
		Player: PlayerTuning{
			Speed:          300,
			Size:           Size{Width: 32, Height: 32},
			StartOffsetY:   50,
			EdgeMargin:     15,
			BulletSpeed:    600,
			BulletSize:     Size{Width: 6, Height: 12},
			FireCooldownMs: 250,
			MaxBulletCount: 4,
			VolleySpacing:  10,
		},
		Enemies: EnemyTuning{
			BaseSpeed:            120,
			SpeedIncreasePerWave: 10,
			Rows:                 3,
			Columns:              8,
			Padding:              60,
			Size:                 Size{Width: 32, Height: 32},
			EdgeMargin:           30,
			DropStep:             20,
			LossLineOffset:       100,
			ShootingIntervalMs:   1000,
			BulletSpeed:          600,
			BaseShootingProb:     0.02,
			ShootingProbIncrease: 0.01,
			Kinds:                DefaultEnemyLibrary(),
		},
		Barriers: BarrierTuning{
			Count:   4,
			Width:   60,
			Height:  40,
			Rows:    4,
			Cols:    6,
			Y:       450,
			Spacing: 160,
		},
		Scoring: ScoringTuning{
			PointsPerKill: 100,
			BonusPerWave:  1000,
		},
	}
}

// FireCooldown — минимальный интервал между залпами игрока.
func (t *Tuning) FireCooldown() time.Duration {
	return time.Duration(t.Player.FireCooldownMs) * time.Millisecond
}

// ShootingInterval — период таймера вражеской стрельбы.
func (t *Tuning) ShootingInterval() time.Duration {
	return time.Duration(t.Enemies.ShootingIntervalMs) * time.Millisecond
}

// FormationSize — число врагов в полном строю.
func (t *Tuning) FormationSize() int {
	return t.Enemies.Rows * t.Enemies.Columns
}

// PlayerStartY — вертикальная позиция корабля игрока.
func (t *Tuning) PlayerStartY() float64 {
	return t.Height - t.Player.StartOffsetY
}

// LossLine — ниже этой линии строй считается дошедшим до игрока.
func (t *Tuning) LossLine() float64 {
	return t.Height - t.Enemies.LossLineOffset
}

// Kind ищет определение типа врага. Для неизвестного типа возвращается
// определение обычного врага.
func (t *Tuning) Kind(kind component.EnemyKind) EnemyDefinition {
	for _, def := range t.Enemies.Kinds {
		if def.Kind == kind {
			return def
		}
	}
	return EnemyDefinition{Kind: component.EnemyNormal, Health: 1, BulletHealth: 1}
}

// Clone возвращает независимую копию (таблица типов копируется).
func (t *Tuning) Clone() *Tuning {
	c := *t
	c.Enemies.Kinds = append([]EnemyDefinition(nil), t.Enemies.Kinds...)
	return &c
}
