// internal/state/game_state.go
package state

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hand-invaders/internal/app"
	"hand-invaders/internal/config"
	"hand-invaders/internal/input"
	"hand-invaders/internal/input/keyboard"
	"hand-invaders/internal/session"
	"hand-invaders/internal/ui"
	"hand-invaders/pkg/render/sprite"
)

var (
	_ State   = (*GameState)(nil)
	_ Quitter = (*GameState)(nil)
)

// GameState — идущая партия
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	session  *session.Session
	renderer *sprite.Renderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	renderer := sprite.NewRenderer(config.Palette())

	providers := input.Merge{keyboard.NewProvider()}
	if ctx.Gestures != nil {
		providers = append(input.Merge{ctx.Gestures}, providers...)
	}

	s := session.New(session.Options{
		Game: app.Options{
			Tuning:  ctx.Tuning,
			Seed:    ctx.Seed,
			Backend: renderer,
		},
		Input: providers,
	})
	if ctx.Sound != nil {
		ctx.Sound.Subscribe(s.Events())
	}
	if ctx.Bridge != nil {
		ctx.Bridge.Subscribe(s.Events())
		ctx.Bridge.SetSession(s.ID.String())
	}

	return &GameState{
		sm:       sm,
		ctx:      ctx,
		session:  s,
		renderer: renderer,
		hud:      ui.NewHUD(ctx.Face, ctx.TitleFace),
	}
}

func (g *GameState) Enter() {
	if g.session.Status() != session.StatusReady {
		return
	}
	if err := g.session.Start(g.ctx.now()); err != nil {
		slog.Error("start session", "error", err)
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.session.Pause(); err == nil {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}

	err := g.session.Advance(g.ctx.now())
	if err != nil && !errors.Is(err, session.ErrNotRunning) {
		slog.Error("advance session", "error", err)
	}

	if result, ok := g.session.Result(); ok {
		g.Quit()
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, result))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)
	g.hud.Draw(screen, g.session.Snapshot())
}

func (g *GameState) Exit() {}

// Quit обрывает партию, например при выходе в меню из паузы.
func (g *GameState) Quit() {
	if err := g.session.Terminate(); err != nil && !errors.Is(err, session.ErrClosed) {
		slog.Warn("terminate session", "error", err)
	}
}
