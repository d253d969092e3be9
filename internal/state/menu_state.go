// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hand-invaders/internal/config"
	"hand-invaders/internal/ui"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	pinch pinched
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {
	// щипок, начатый на прошлом экране, не должен сразу запустить игру
	m.pinch.was = true
}

func (m *MenuState) Update(deltaTime float64) {
	pinch := m.pinch.just(m.ctx)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter), pinch:
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		m.sm.SetState(NewLeaderboardState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, config.WindowTitle, m.ctx.TitleFace, config.ScreenHeight/3, config.TextAccentColor)
	ui.DrawCentered(screen, "SPACE or pinch to start", m.ctx.Face, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawCentered(screen, "L - leaderboard", m.ctx.Face, config.ScreenHeight/2+30, config.TextLightColor)
}

func (m *MenuState) Exit() {}
