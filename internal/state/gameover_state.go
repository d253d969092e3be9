// internal/state/gameover_state.go
package state

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hand-invaders/internal/app"
	"hand-invaders/internal/config"
	"hand-invaders/internal/leaderboard"
	"hand-invaders/internal/ui"
)

const submitTimeout = 2 * time.Second

// GameOverState показывает итог и принимает имя для таблицы рекордов.
type GameOverState struct {
	sm     *StateMachine
	ctx    *Context
	result app.Result
	name   *ui.NameInput
	chars  []rune
	errMsg string
}

func NewGameOverState(sm *StateMachine, ctx *Context, result app.Result) *GameOverState {
	return &GameOverState{
		sm:     sm,
		ctx:    ctx,
		result: result,
		name:   ui.NewNameInput(config.MaxPlayerNameLen),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	s.name.Append(s.chars)

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.name.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := s.submit(); err != nil {
			s.errMsg = err.Error()
			return
		}
		s.sm.SetState(NewLeaderboardState(s.sm, s.ctx))
	}
}

func (s *GameOverState) submit() error {
	entry, err := leaderboard.NewEntry(s.name.String(), s.result.Score, s.result.Wave, s.ctx.now())
	if err != nil {
		return err
	}
	if s.ctx.Leaderboard == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	if err := s.ctx.Leaderboard.Submit(ctx, entry); err != nil {
		slog.Error("submit score", "error", err)
		return fmt.Errorf("could not save score: %w", err)
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "GAME OVER", s.ctx.TitleFace, config.ScreenHeight/4, config.EnemyBulletColor)
	ui.DrawCentered(screen, fmt.Sprintf("Score %d   Wave %d", s.result.Score, s.result.Wave), s.ctx.Face, config.ScreenHeight/4+40, config.TextLightColor)
	ui.DrawCentered(screen, "Enter your name:", s.ctx.Face, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawCentered(screen, s.name.String()+"_", s.ctx.TitleFace, config.ScreenHeight/2+40, config.TextAccentColor)
	ui.DrawCentered(screen, "ENTER - save   ESC - skip", s.ctx.Face, config.ScreenHeight/2+80, config.TextLightColor)
	if s.errMsg != "" {
		ui.DrawCentered(screen, s.errMsg, s.ctx.Face, config.ScreenHeight/2+110, config.EnemyBulletColor)
	}
}

func (s *GameOverState) Exit() {}
