// internal/state/context.go
package state

import (
	"time"

	"golang.org/x/image/font"

	"hand-invaders/internal/audio"
	"hand-invaders/internal/bridge"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/input"
	"hand-invaders/internal/leaderboard"
)

// Context — общие зависимости экранов. Sound и Bridge необязательны.
type Context struct {
	Tuning      *defs.Tuning
	Seed        int64
	Gestures    input.Provider
	Leaderboard leaderboard.Store
	Sound       *audio.SoundManager
	Bridge      *bridge.Server

	Face      font.Face
	TitleFace font.Face

	Now func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// pinched отслеживает фронт щипка, чтобы жестом можно было нажимать "кнопки" меню.
type pinched struct {
	was bool
}

func (p *pinched) just(ctx *Context) bool {
	if ctx.Gestures == nil {
		return false
	}
	now := ctx.Gestures.Sample(ctx.now()).TriggerPressed
	fired := now && !p.was
	p.was = now
	return fired
}
