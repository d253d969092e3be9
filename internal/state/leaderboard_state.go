// internal/state/leaderboard_state.go
package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"hand-invaders/internal/config"
	"hand-invaders/internal/leaderboard"
	"hand-invaders/internal/ui"
)

// LeaderboardState — таблица лучших результатов.
type LeaderboardState struct {
	sm      *StateMachine
	ctx     *Context
	entries []leaderboard.Entry
	pinch   pinched
}

func NewLeaderboardState(sm *StateMachine, ctx *Context) *LeaderboardState {
	return &LeaderboardState{sm: sm, ctx: ctx}
}

func (s *LeaderboardState) Enter() {
	s.pinch.was = true
	if s.ctx.Leaderboard == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	entries, err := s.ctx.Leaderboard.Top(ctx, config.LeaderboardSize)
	if err != nil {
		slog.Error("load leaderboard", "error", err)
		return
	}
	s.entries = entries
}

func (s *LeaderboardState) Update(deltaTime float64) {
	pinch := s.pinch.just(s.ctx)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) || pinch {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

// Row форматирует строку таблицы.
func Row(place int, e leaderboard.Entry) string {
	return fmt.Sprintf("%2d. %-15s %7d  W%-3d", place, e.Name, e.Score, e.Wave)
}

func (s *LeaderboardState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "LEADERBOARD", s.ctx.TitleFace, 80, config.TextAccentColor)

	if len(s.entries) == 0 {
		ui.DrawCentered(screen, "no scores yet", s.ctx.Face, 160, config.TextLightColor)
	}
	for i, e := range s.entries {
		text.Draw(screen, Row(i+1, e), s.ctx.Face, config.ScreenWidth/4, 140+i*28, config.TextLightColor)
	}
	ui.DrawCentered(screen, "SPACE - back", s.ctx.Face, config.ScreenHeight-40, config.TextLightColor)
}

func (s *LeaderboardState) Exit() {}
