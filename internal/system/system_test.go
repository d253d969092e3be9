package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"hand-invaders/internal/component"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
	"hand-invaders/internal/input"
	"hand-invaders/internal/utils"
)

type fixture struct {
	world       *entity.World
	tuning      *defs.Tuning
	events      *event.Dispatcher
	got         []event.Event
	spawner     *SpawnSystem
	state       *StateSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	player      *PlayerSystem
	movement    *MovementSystem
	shooting    *ShootingSystem
	waves       *WaveSystem
}

// newFixture собирает системы вокруг пустого мира. Все враги обычные,
// пока тест не поменяет таблицу типов.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	tuning := defs.Default()
	for i := range tuning.Enemies.Kinds {
		tuning.Enemies.Kinds[i].SpawnRate = 0
	}

	f := &fixture{
		world:  entity.NewWorld(),
		tuning: tuning,
		events: event.NewDispatcher(),
	}
	record := event.ListenerFunc(func(e event.Event) { f.got = append(f.got, e) })
	f.events.SubscribeAll(record,
		event.ScoreChanged, event.WaveStarted, event.EnemyDamaged, event.EnemyDestroyed,
		event.PlayerUpgraded, event.BarrierHit, event.PlayerFired, event.EnemyFired,
		event.PlayerHit, event.GameOver)

	rng := utils.NewPRNGService(1)
	f.spawner = NewSpawnSystem(f.world, tuning, rng)
	f.state = NewStateSystem(f.world, f.events)
	f.combat = NewCombatSystem(f.world, tuning, f.events, f.state)
	f.projectiles = NewProjectileSystem(f.world, tuning)
	f.player = NewPlayerSystem(f.world, tuning, f.events, f.projectiles)
	f.movement = NewMovementSystem(f.world, tuning)
	f.shooting = NewShootingSystem(f.world, tuning, rng, f.events, f.projectiles)
	f.waves = NewWaveSystem(f.world, tuning, f.spawner, f.events)
	f.spawner.SpawnPlayer()
	return f
}

func (f *fixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (f *fixture) addEnemy(kind component.EnemyKind, x, y float64) *component.Enemy {
	e := &component.Enemy{
		ID:       f.world.NewEntity(),
		Kind:     kind,
		Position: component.Vector2D{X: x, Y: y},
		Width:    32,
		Height:   32,
		Health:   f.tuning.Kind(kind).StartHealth(),
		Visible:  true,
	}
	f.world.Enemies = append(f.world.Enemies, e)
	return e
}

func TestSpawnSystem_Formation(t *testing.T) {
	f := newFixture(t)
	f.spawner.SpawnWave(3)

	require.Len(t, f.world.Enemies, 24)
	assert.Equal(t, 140.0, f.world.Formation.VelocityX)

	first, last := f.world.Enemies[0], f.world.Enemies[23]
	assert.Equal(t, component.Vector2D{X: 60, Y: 60}, first.Position)
	assert.Equal(t, component.Vector2D{X: 480, Y: 180}, last.Position)
	for _, e := range f.world.Enemies {
		assert.Equal(t, component.EnemyNormal, e.Kind)
		assert.Equal(t, 1, e.Health)
		assert.True(t, e.Visible)
	}

	ids := map[uint64]bool{}
	for _, e := range f.world.Enemies {
		ids[uint64(e.ID)] = true
	}
	assert.Len(t, ids, 24, "every enemy gets its own id")
}

func TestSpawnSystem_SnipersGetTwoHealth(t *testing.T) {
	f := newFixture(t)
	f.tuning.Enemies.Kinds[0].SpawnRate = 1

	for _, e := range f.spawner.CreateEnemyFormation(1) {
		assert.Equal(t, component.EnemySniper, e.Kind)
		assert.Equal(t, 2, e.Health)
	}
}

func TestSpawnSystem_Barriers(t *testing.T) {
	f := newFixture(t)
	barriers := f.spawner.CreateBarriers()

	require.Len(t, barriers, 4)
	for i, b := range barriers {
		require.Len(t, b.Segments, 24)
		assert.Equal(t, 24, b.SegmentsRemaining)

		top := b.Segments[0]
		assert.Equal(t, 130+float64(i)*160, top.Position.X)
		assert.Equal(t, 450.0, top.Position.Y)
		assert.Equal(t, 10.0, top.Width)
		assert.Equal(t, 10.0, top.Height)
	}

	bottom := barriers[0].Segments[23]
	assert.Equal(t, 3, bottom.Row)
	assert.Equal(t, component.Vector2D{X: 180, Y: 480}, bottom.Position)
	assert.InDelta(t, 0.9, barriers[0].Segments[0].Alpha, 1e-6)
	assert.InDelta(t, 0.6, bottom.Alpha, 1e-6)
}

func TestCombat_KillScoresAndCompacts(t *testing.T) {
	f := newFixture(t)
	e := f.addEnemy(component.EnemyNormal, 200, 200)
	f.projectiles.SpawnBullet(200, 205, false, 1)

	assert.False(t, f.combat.Update())

	assert.False(t, e.Visible)
	assert.Zero(t, e.Health)
	assert.Empty(t, f.world.Enemies)
	assert.Empty(t, f.world.PlayerBullets)
	assert.Equal(t, 100, f.world.Score)
	assert.Equal(t, 1, f.count(event.EnemyDestroyed))
}

func TestCombat_SniperNeedsTwoHits(t *testing.T) {
	f := newFixture(t)
	sniper := f.addEnemy(component.EnemySniper, 200, 200)

	f.projectiles.SpawnBullet(200, 200, false, 1)
	f.combat.Update()
	assert.True(t, sniper.Visible)
	assert.Equal(t, 1, sniper.Health)
	assert.Zero(t, f.world.Score)
	assert.Equal(t, 1, f.count(event.EnemyDamaged))

	f.projectiles.SpawnBullet(200, 200, false, 1)
	f.combat.Update()
	assert.False(t, sniper.Visible)
	assert.Equal(t, 100, f.world.Score)
	assert.Equal(t, 2, f.world.Player.BulletDamage, "sniper kill upgrades bullet damage")
}

func TestCombat_PierceBulletHitsOncePerTick(t *testing.T) {
	f := newFixture(t)
	sniper := f.addEnemy(component.EnemySniper, 200, 200)
	b := f.projectiles.SpawnBullet(200, 200, false, 2)

	f.combat.Update()
	assert.Equal(t, 1, sniper.Health)
	assert.Equal(t, 1, b.Health)
	assert.Len(t, f.world.PlayerBullets, 1, "bullet with spare health stays active")

	f.combat.Update()
	assert.False(t, sniper.Visible)
	assert.Empty(t, f.world.PlayerBullets)
}

func TestCombat_GunnerKillAddsBulletToVolley(t *testing.T) {
	f := newFixture(t)
	f.addEnemy(component.EnemyGunner, 200, 200)
	f.projectiles.SpawnBullet(200, 200, false, 1)
	f.combat.Update()

	require.Equal(t, 2, f.world.Player.BulletCount)
	assert.Equal(t, 1, f.count(event.PlayerUpgraded))

	f.world.Player.Position.X = 400
	assert.Equal(t, 2, f.player.FireVolley())
	require.Len(t, f.world.PlayerBullets, 2)
	assert.Equal(t, 395.0, f.world.PlayerBullets[0].Position.X)
	assert.Equal(t, 405.0, f.world.PlayerBullets[1].Position.X)
}

func TestCombat_PierceThroughStackedSegments(t *testing.T) {
	f := newFixture(t)
	upper := &component.Segment{ID: f.world.NewEntity(), Position: component.Vector2D{X: 100, Y: 100}, Width: 10, Height: 10, Visible: true}
	lower := &component.Segment{ID: f.world.NewEntity(), Position: component.Vector2D{X: 100, Y: 110}, Width: 10, Height: 10, Visible: true}
	barrier := &component.Barrier{Segments: []*component.Segment{upper, lower}, SegmentsRemaining: 2}
	f.world.Barriers = []*component.Barrier{barrier}

	b := f.projectiles.SpawnBullet(105, 115, false, 2)
	b.Height = 4

	f.combat.Update()
	assert.False(t, lower.Visible)
	assert.True(t, upper.Visible)
	assert.Equal(t, 1, b.Health)
	require.Len(t, f.world.PlayerBullets, 1)

	b.Position.Y = 105
	f.combat.Update()
	assert.False(t, upper.Visible)
	assert.Empty(t, f.world.PlayerBullets)
	assert.Zero(t, barrier.SegmentsRemaining)
	assert.Equal(t, 2, f.count(event.BarrierHit))
}

func TestCombat_EnemyHitsBeforeBarrier(t *testing.T) {
	f := newFixture(t)
	e := f.addEnemy(component.EnemyNormal, 105, 110)
	seg := &component.Segment{ID: f.world.NewEntity(), Position: component.Vector2D{X: 100, Y: 105}, Width: 10, Height: 10, Visible: true}
	f.world.Barriers = []*component.Barrier{{Segments: []*component.Segment{seg}, SegmentsRemaining: 1}}
	f.projectiles.SpawnBullet(105, 110, false, 1)

	f.combat.Update()
	assert.False(t, e.Visible)
	assert.True(t, seg.Visible, "spent bullet never reaches the barrier")
}

func TestCombat_TwoHealthEnemyBulletEndsGameOnSecondHit(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	b := f.projectiles.SpawnBullet(p.Position.X, p.Position.Y, true, 2)

	assert.False(t, f.combat.Update())
	assert.False(t, f.world.IsOver())
	assert.Equal(t, 1, b.Health)
	assert.Len(t, f.world.EnemyBullets, 1, "surviving bullet stays active")

	assert.True(t, f.combat.Update())
	assert.True(t, f.world.IsOver())
	assert.Equal(t, component.ReasonPlayerShot, f.world.Reason)

	assert.True(t, f.combat.Update())
	assert.False(t, f.state.Finish(component.ReasonReachedBottom))
	assert.Equal(t, 1, f.count(event.GameOver))
	assert.Equal(t, component.ReasonPlayerShot, f.world.Reason)
}

func TestCombat_LethalHitStopsResolution(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	f.projectiles.SpawnBullet(p.Position.X, p.Position.Y, true, 1)
	e := f.addEnemy(component.EnemyNormal, 200, 200)
	f.projectiles.SpawnBullet(200, 200, false, 1)

	// Пуля игрока обрабатывается раньше, так что враг успевает погибнуть,
	// но компактирование после смертельного попадания уже не выполняется.
	assert.True(t, f.combat.Update())
	assert.False(t, e.Visible)
	assert.Len(t, f.world.Enemies, 1)
	assert.Len(t, f.world.EnemyBullets, 1)
}

func TestCombat_EnemyBulletDestroysSegment(t *testing.T) {
	f := newFixture(t)
	seg := &component.Segment{ID: f.world.NewEntity(), Position: component.Vector2D{X: 100, Y: 100}, Width: 10, Height: 10, Visible: true}
	f.world.Barriers = []*component.Barrier{{Segments: []*component.Segment{seg}, SegmentsRemaining: 1}}
	f.projectiles.SpawnBullet(105, 105, true, 1)

	f.combat.Update()
	assert.False(t, seg.Visible)
	assert.Empty(t, f.world.EnemyBullets)
	assert.False(t, f.world.IsOver())
}

func TestProjectileSystem_IntegrateAndCull(t *testing.T) {
	f := newFixture(t)
	up := f.projectiles.SpawnBullet(100, 30, false, 1)
	down := f.projectiles.SpawnBullet(100, 590, true, 1)
	stay := f.projectiles.SpawnBullet(100, 300, true, 1)

	f.projectiles.Update(0.1)

	assert.Empty(t, f.world.PlayerBullets, "left through the top")
	require.Len(t, f.world.EnemyBullets, 1)
	assert.Same(t, stay, f.world.EnemyBullets[0])
	assert.Equal(t, 360.0, stay.Position.Y)
	assert.Equal(t, -30.0, up.Position.Y)
	assert.Equal(t, 650.0, down.Position.Y)
}

func TestPlayerSystem_Movement(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player

	f.player.Update(0.016, input.Sample{HorizontalFraction: 0.5, Absolute: true})
	assert.Equal(t, 400.0, p.Position.X)

	f.player.Update(0.016, input.Sample{HorizontalFraction: 1.7, Absolute: true})
	assert.Equal(t, 785.0, p.Position.X)

	f.player.Update(0.016, input.Sample{HorizontalFraction: -1, Absolute: true})
	assert.Equal(t, 15.0, p.Position.X)

	f.player.Update(0.1, input.Sample{Steer: 1})
	assert.InDelta(t, 45.0, p.Position.X, 1e-9)

	f.player.Update(0.1, input.Sample{Steer: -5})
	assert.InDelta(t, 15.0, p.Position.X, 1e-9)
}

func TestPlayerSystem_FireIsRateLimited(t *testing.T) {
	f := newFixture(t)
	pull := input.Sample{TriggerPressed: true}

	f.player.Update(0.1, pull)
	assert.Len(t, f.world.PlayerBullets, 1)

	f.world.Clock = 0.1
	f.player.Update(0.1, pull)
	assert.Len(t, f.world.PlayerBullets, 1)

	f.world.Clock = 0.25
	f.player.Update(0.1, pull)
	assert.Len(t, f.world.PlayerBullets, 2)
	assert.Equal(t, 2, f.count(event.PlayerFired))
}

func TestPlayerSystem_VolleyIsCapped(t *testing.T) {
	f := newFixture(t)
	f.world.Player.BulletCount = 9
	f.world.Player.BulletDamage = 3

	assert.Equal(t, 4, f.player.FireVolley())
	xs := []float64{}
	for _, b := range f.world.PlayerBullets {
		xs = append(xs, b.Position.X-f.world.Player.Position.X)
		assert.Equal(t, 3, b.Health)
		assert.Negative(t, b.VelocityY)
	}
	assert.Equal(t, []float64{-15, -5, 5, 15}, xs)
}

func TestMovementSystem_FlipAndDrop(t *testing.T) {
	f := newFixture(t)
	f.world.Formation.VelocityX = 120
	a := f.addEnemy(component.EnemyNormal, 700, 100)
	b := f.addEnemy(component.EnemyNormal, 769, 160)

	assert.False(t, f.movement.Update(0.1))

	assert.Equal(t, -120.0, f.world.Formation.VelocityX)
	assert.Equal(t, 712.0, a.Position.X)
	assert.Equal(t, 120.0, a.Position.Y)
	assert.Equal(t, 180.0, b.Position.Y)

	assert.False(t, f.movement.Update(0.1))
	assert.Equal(t, -120.0, f.world.Formation.VelocityX, "back inside the margin, no second flip")
	assert.Equal(t, 120.0, a.Position.Y)
}

func TestMovementSystem_NoFlipInsideMargins(t *testing.T) {
	f := newFixture(t)
	f.world.Formation.VelocityX = 120
	e := f.addEnemy(component.EnemyNormal, 400, 100)

	assert.False(t, f.movement.Update(0.1))
	assert.Equal(t, 120.0, f.world.Formation.VelocityX)
	assert.Equal(t, 100.0, e.Position.Y)
}

func TestMovementSystem_ReachedBottom(t *testing.T) {
	f := newFixture(t)
	f.world.Formation.VelocityX = -120
	f.addEnemy(component.EnemyNormal, 35, 490)

	assert.True(t, f.movement.Update(0.1))
}

func TestMovementSystem_OvershootAfterSlowFrame(t *testing.T) {
	f := newFixture(t)
	f.world.Formation.VelocityX = 120
	e := f.addEnemy(component.EnemyNormal, 769, 100)

	assert.False(t, f.movement.Update(0.1))
	require.Equal(t, -120.0, f.world.Formation.VelocityX)
	require.Equal(t, 120.0, e.Position.Y)

	// После медленного кадра враг ещё за краем, но уже идёт внутрь.
	for i := 0; i < 5; i++ {
		assert.False(t, f.movement.Update(0.016))
		assert.Greater(t, e.Position.X, 770.0)
		assert.Equal(t, -120.0, f.world.Formation.VelocityX)
		assert.Equal(t, 120.0, e.Position.Y)
	}
}

func TestMovementSystem_LeftOvershootAfterSlowFrame(t *testing.T) {
	f := newFixture(t)
	f.world.Formation.VelocityX = -120
	e := f.addEnemy(component.EnemyNormal, 31, 100)

	assert.False(t, f.movement.Update(0.1))
	require.Equal(t, 120.0, f.world.Formation.VelocityX)

	assert.False(t, f.movement.Update(0.016))
	assert.Less(t, e.Position.X, 30.0)
	assert.Equal(t, 120.0, f.world.Formation.VelocityX)
	assert.Equal(t, 120.0, e.Position.Y)
}

func TestMovementSystem_OneDropPerCrossing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t)
		f.world.Formation.VelocityX = rapid.SampledFrom([]float64{-120, 120}).Draw(rt, "vx")
		e := f.addEnemy(component.EnemyNormal, rapid.Float64Range(30, 770).Draw(rt, "x"), 100)
		steps := rapid.SliceOfN(rapid.Float64Range(0.001, 0.1), 1, 80).Draw(rt, "dt")

		prevFlipped := false
		for _, dt := range steps {
			vx, y := f.world.Formation.VelocityX, e.Position.Y
			f.movement.Update(dt)
			flipped := f.world.Formation.VelocityX != vx
			if flipped {
				if e.Position.Y != y+f.tuning.Enemies.DropStep {
					rt.Fatalf("flip must drop by one step: %v -> %v", y, e.Position.Y)
				}
				if prevFlipped {
					rt.Fatalf("two flips in a row at x=%v", e.Position.X)
				}
			} else if e.Position.Y != y {
				rt.Fatalf("dropped without a flip: %v -> %v", y, e.Position.Y)
			}
			prevFlipped = flipped
		}
	})
}

func TestShootingSystem(t *testing.T) {
	f := newFixture(t)
	f.addEnemy(component.EnemySniper, 100, 100)
	f.addEnemy(component.EnemyNormal, 200, 100)

	f.tuning.Enemies.BaseShootingProb = 0
	f.tuning.Enemies.ShootingProbIncrease = 0
	assert.Zero(t, f.shooting.Fire())

	f.tuning.Enemies.BaseShootingProb = 1
	assert.Equal(t, 2, f.shooting.Fire())
	require.Len(t, f.world.EnemyBullets, 2)
	assert.Equal(t, 2, f.world.EnemyBullets[0].Health, "sniper bullets pierce")
	assert.Equal(t, 1, f.world.EnemyBullets[1].Health)
	assert.Equal(t, component.Vector2D{X: 100, Y: 100}, f.world.EnemyBullets[0].Position)
	assert.Positive(t, f.world.EnemyBullets[0].VelocityY)

	f.world.Enemies = nil
	assert.Zero(t, f.shooting.Fire())
}

func TestShootingSystem_SilentAfterGameOver(t *testing.T) {
	f := newFixture(t)
	f.tuning.Enemies.BaseShootingProb = 1
	f.addEnemy(component.EnemyNormal, 200, 100)
	f.state.Finish(component.ReasonReachedBottom)

	assert.Zero(t, f.shooting.Fire())
	assert.Empty(t, f.world.EnemyBullets)
}

func TestWaveSystem_AdvanceIsAtomic(t *testing.T) {
	f := newFixture(t)
	f.spawner.SpawnWave(1)
	f.world.Score = 2400
	f.projectiles.SpawnBullet(10, 10, false, 1)
	f.projectiles.SpawnBullet(10, 10, true, 1)

	assert.False(t, f.waves.Update())

	f.world.Enemies = nil
	assert.True(t, f.waves.Update())

	assert.Equal(t, 2, f.world.Wave)
	assert.Equal(t, 3400, f.world.Score)
	assert.Len(t, f.world.Enemies, 24)
	assert.Equal(t, 130.0, f.world.Formation.VelocityX)
	assert.Empty(t, f.world.PlayerBullets)
	assert.Empty(t, f.world.EnemyBullets)
	require.Len(t, f.world.Barriers, 4)
	assert.Equal(t, 24, f.world.Barriers[0].SegmentsRemaining)
	assert.Equal(t, 1, f.count(event.WaveStarted))
}

func TestStateSystem_FinishOnce(t *testing.T) {
	f := newFixture(t)
	f.world.Score = 700
	f.world.Wave = 3

	assert.True(t, f.state.Finish(component.ReasonReachedBottom))
	assert.False(t, f.state.Finish(component.ReasonPlayerShot))

	require.Equal(t, 1, f.count(event.GameOver))
	for _, e := range f.got {
		if e.Type == event.GameOver {
			assert.Equal(t, event.GameOverData{Score: 700, Wave: 3, Reason: component.ReasonReachedBottom}, e.Data)
		}
	}
	assert.Equal(t, component.PhaseOver, f.state.Current())
}
