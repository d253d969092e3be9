// internal/state/pause_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hand-invaders/internal/config"
	"hand-invaders/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var (
	_ State   = (*PauseState)(nil)
	_ Quitter = (*PauseState)(nil)
)

// PauseState рисует замороженную партию под затемнением.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if err := s.game.session.Resume(s.game.ctx.now()); err != nil {
			slog.Error("resume session", "error", err)
		}
		s.sm.SetState(s.game)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.game.Quit()
		s.sm.SetState(NewMenuState(s.sm, s.game.ctx))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawCentered(screen, "PAUSED", s.game.ctx.TitleFace, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawCentered(screen, "P - resume   Q - quit to menu", s.game.ctx.Face, config.ScreenHeight/2+30, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// Quit обрывает партию, стоящую на паузе.
func (s *PauseState) Quit() {
	s.game.Quit()
}
