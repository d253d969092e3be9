// internal/app/game.go
package app

import (
	"hand-invaders/internal/component"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/entity"
	"hand-invaders/internal/event"
	"hand-invaders/internal/input"
	"hand-invaders/internal/system"
	"hand-invaders/internal/utils"
	"hand-invaders/pkg/render"
)

// Options — параметры новой партии. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Tuning          *defs.Tuning
	Seed            int64 // 0 — от текущего времени
	Backend         render.Backend
	EventDispatcher *event.Dispatcher
}

// Snapshot — неизменяемый срез состояния для HUD и внешних слушателей.
type Snapshot struct {
	Score         int
	Wave          int
	Over          bool
	Reason        component.OverReason
	Enemies       int
	PlayerBullets int
	EnemyBullets  int
	BulletCount   int
	BulletDamage  int
	PlayerX       float64
	Clock         float64
}

// Result — итог партии.
type Result struct {
	Score  int
	Wave   int
	Reason component.OverReason
}

// Earned сообщает, закончилась ли партия по правилам игры. Партию, прерванную
// игроком, в таблицу рекордов не пишем.
func (r Result) Earned() bool {
	return r.Reason != "" && r.Reason != component.ReasonSessionStopped
}

// Game holds one run of the simulation: the world and the systems that mutate it.
// Game is not safe for concurrent use; the session serializes access.
type Game struct {
	World           *entity.World
	Tuning          *defs.Tuning
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem      *system.SpawnSystem
	StateSystem      *system.StateSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	ShootingSystem   *system.ShootingSystem
	WaveSystem       *system.WaveSystem
	RenderSystem     *system.RenderSystem
}

// NewGame initializes a new run with the wave-1 formation and barriers already in place.
func NewGame(opts Options) *Game {
	tuning := opts.Tuning
	if tuning == nil {
		tuning = defs.Default()
	}
	dispatcher := opts.EventDispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld()
	g := &Game{
		World:           world,
		Tuning:          tuning,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
	}
	g.SpawnSystem = system.NewSpawnSystem(world, tuning, g.Rng)
	g.StateSystem = system.NewStateSystem(world, dispatcher)
	g.CombatSystem = system.NewCombatSystem(world, tuning, dispatcher, g.StateSystem)
	g.ProjectileSystem = system.NewProjectileSystem(world, tuning)
	g.PlayerSystem = system.NewPlayerSystem(world, tuning, dispatcher, g.ProjectileSystem)
	g.MovementSystem = system.NewMovementSystem(world, tuning)
	g.ShootingSystem = system.NewShootingSystem(world, tuning, g.Rng, dispatcher, g.ProjectileSystem)
	g.WaveSystem = system.NewWaveSystem(world, tuning, g.SpawnSystem, dispatcher)
	g.RenderSystem = system.NewRenderSystem(opts.Backend)

	g.SpawnSystem.SpawnPlayer()
	g.SpawnSystem.SpawnWave(world.Wave)
	g.RenderSystem.Sync(world)
	dispatcher.Emit(event.WaveStarted, event.WaveStartedData{Wave: world.Wave})
	return g
}

// Update advances the world by one tick. After game over it is a no-op.
func (g *Game) Update(deltaTime float64, sample input.Sample) {
	w := g.World
	if w.IsOver() {
		return
	}
	deltaTime = utils.Clamp(deltaTime, 0, g.Tuning.MaxDeltaTime)
	w.Clock += deltaTime

	g.PlayerSystem.Update(deltaTime, sample)
	g.ProjectileSystem.Update(deltaTime)

	if g.CombatSystem.Update() {
		g.RenderSystem.Sync(w)
		return
	}

	if g.MovementSystem.Update(deltaTime) {
		g.StateSystem.Finish(component.ReasonReachedBottom)
		g.RenderSystem.Sync(w)
		return
	}

	g.WaveSystem.Update()
	g.RenderSystem.Sync(w)
}

// FireEnemies — срабатывание таймера вражеской стрельбы.
func (g *Game) FireEnemies() int {
	fired := g.ShootingSystem.Fire()
	if fired > 0 {
		g.RenderSystem.Sync(g.World)
	}
	return fired
}

// Stop завершает партию по инициативе сессии (выход игрока).
func (g *Game) Stop() bool {
	return g.StateSystem.Finish(component.ReasonSessionStopped)
}

func (g *Game) IsOver() bool {
	return g.World.IsOver()
}

func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Score:         w.Score,
		Wave:          w.Wave,
		Over:          w.IsOver(),
		Reason:        w.Reason,
		Enemies:       len(w.Enemies),
		PlayerBullets: len(w.PlayerBullets),
		EnemyBullets:  len(w.EnemyBullets),
		Clock:         w.Clock,
	}
	if p := w.Player; p != nil {
		s.BulletCount = p.BulletCount
		s.BulletDamage = p.BulletDamage
		s.PlayerX = p.Position.X
	}
	return s
}

// Result возвращает итог; ok == false, пока партия идёт.
func (g *Game) Result() (Result, bool) {
	w := g.World
	if !w.IsOver() {
		return Result{}, false
	}
	return Result{Score: w.Score, Wave: w.Wave, Reason: w.Reason}, true
}

// Teardown освобождает визуалы. Мир после этого использовать нельзя.
func (g *Game) Teardown() {
	g.RenderSystem.Reset()
}
