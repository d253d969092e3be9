// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"hand-invaders/internal/audio"
	"hand-invaders/internal/bridge"
	"hand-invaders/internal/config"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/input"
	"hand-invaders/internal/leaderboard"
	"hand-invaders/internal/state"
	"hand-invaders/internal/ui"
	"hand-invaders/internal/utils"
)

type AppGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		tuningPath = flag.String("tuning", "", "path to a tuning JSON file (built-in defaults if empty)")
		seed       = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
		bridgeAddr = flag.String("bridge", utils.GetEnvDefault("BRIDGE_ADDR", config.DefaultBridgeAddress), "hand tracker websocket address, empty disables it")
		boardPath  = flag.String("leaderboard", config.LeaderboardFile, "leaderboard file")
		mute       = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	if _, err := utils.SetupLogger(os.Stderr, *logLevel); err != nil {
		log.Fatal(err)
	}

	tuning := defs.Default()
	if *tuningPath != "" {
		loaded, err := defs.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = loaded
	}

	face, err := ui.LoadFace(config.HUDFontSize)
	if err != nil {
		log.Fatal(err)
	}
	titleFace, err := ui.LoadFace(config.WaveIndicatorSize)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	group, groupCtx := errgroup.WithContext(ctx)

	gestures := input.NewLatest(config.InputStaleAfter)
	sctx := &state.Context{
		Tuning:      tuning,
		Seed:        *seed,
		Gestures:    gestures,
		Leaderboard: leaderboard.NewFileStore(*boardPath),
		Face:        face,
		TitleFace:   titleFace,
	}

	if *bridgeAddr != "" {
		mapper := input.GestureMapper{
			SenseMin:       config.GestureSenseMin,
			SenseMax:       config.GestureSenseMax,
			PinchThreshold: config.PinchThreshold,
		}
		sctx.Bridge = bridge.NewServer(gestures, mapper)
		group.Go(func() error {
			err := sctx.Bridge.Serve(groupCtx, *bridgeAddr)
			if err != nil {
				// без моста остаётся клавиатура
				slog.Error("hand tracker bridge stopped", "error", err)
			}
			return nil
		})
	}

	if !*mute {
		sound := audio.NewSoundManager(config.SampleRate, 1)
		if err := sound.Initialize(); err != nil {
			slog.Warn("sound disabled", "error", err)
		} else {
			defer sound.Cleanup()
			sctx.Sound = sound
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, sctx))

	app := &AppGame{
		ctx:            ctx,
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	runErr := ebiten.RunGame(app)
	sm.Close()

	stop()
	if err := group.Wait(); err != nil {
		slog.Error("background task failed", "error", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
