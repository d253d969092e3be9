// internal/system/spawner.go
package system

import (
	"hand-invaders/internal/component"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/utils"
)

// SpawnSystem строит строй врагов и укрытия. Возвращает только данные:
// визуалы к ним привязывает RenderSystem при ближайшей синхронизации.
type SpawnSystem struct {
	world  *entity.World
	tuning *defs.Tuning
	rng    *utils.PRNGService
}

func NewSpawnSystem(world *entity.World, tuning *defs.Tuning, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{world: world, tuning: tuning, rng: rng}
}

// CreateEnemyFormation создаёт сетку врагов rows×columns. Тип каждого врага
// выбирается независимым броском.
func (s *SpawnSystem) CreateEnemyFormation(wave int) []*component.Enemy {
	cfg := s.tuning.Enemies
	enemies := make([]*component.Enemy, 0, cfg.Rows*cfg.Columns)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			kind := s.rng.ChooseKind(cfg.Kinds)
			def := s.tuning.Kind(kind)
			enemies = append(enemies, &component.Enemy{
				ID:   s.world.NewEntity(),
				Kind: kind,
				Position: component.Vector2D{
					X: cfg.Padding + float64(col)*cfg.Padding,
					Y: cfg.Padding + float64(row)*cfg.Padding,
				},
				Width:   cfg.Size.Width,
				Height:  cfg.Size.Height,
				Health:  def.StartHealth(),
				Visible: true,
			})
		}
	}
	return enemies
}

// CreateBarriers создаёт укрытия, равномерно расставленные вокруг центра поля.
func (s *SpawnSystem) CreateBarriers() []*component.Barrier {
	cfg := s.tuning.Barriers
	if cfg.Count == 0 || cfg.Rows == 0 || cfg.Cols == 0 {
		return nil
	}
	segW := cfg.Width / float64(cfg.Cols)
	segH := cfg.Height / float64(cfg.Rows)
	startX := (s.tuning.Width - float64(cfg.Count-1)*cfg.Spacing) / 2

	barriers := make([]*component.Barrier, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		left := startX + float64(i)*cfg.Spacing - cfg.Width/2
		b := &component.Barrier{Segments: make([]*component.Segment, 0, cfg.Rows*cfg.Cols)}
		for row := 0; row < cfg.Rows; row++ {
			for col := 0; col < cfg.Cols; col++ {
				b.Segments = append(b.Segments, &component.Segment{
					ID:       s.world.NewEntity(),
					Position: component.Vector2D{X: left + float64(col)*segW, Y: cfg.Y + float64(row)*segH},
					Width:    segW,
					Height:   segH,
					Row:      row,
					Alpha:    segmentAlpha(row),
					Visible:  true,
				})
			}
		}
		b.SegmentsRemaining = len(b.Segments)
		barriers = append(barriers, b)
	}
	return barriers
}

// SpawnWave заселяет мир строем и укрытиями для волны и задаёт скорость строя.
func (s *SpawnSystem) SpawnWave(wave int) {
	s.world.Enemies = s.CreateEnemyFormation(wave)
	s.world.Formation.VelocityX = s.tuning.FormationSpeed(wave)
	s.world.Barriers = s.CreateBarriers()
}

// SpawnPlayer ставит корабль игрока по центру у нижнего края.
func (s *SpawnSystem) SpawnPlayer() *component.Player {
	p := component.NewPlayer(s.tuning.Width/2, s.tuning.PlayerStartY(), s.tuning.Player.Size.Width, s.tuning.Player.Size.Height)
	p.ID = s.world.NewEntity()
	s.world.Player = p
	return p
}

func segmentAlpha(row int) float32 {
	a := 0.9 - 0.1*float32(row)
	if a < 0.1 {
		return 0.1
	}
	return a
}
