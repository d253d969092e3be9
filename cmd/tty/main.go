// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"hand-invaders/internal/app"
	"hand-invaders/internal/bridge"
	"hand-invaders/internal/config"
	"hand-invaders/internal/defs"
	"hand-invaders/internal/input"
	"hand-invaders/internal/leaderboard"
	"hand-invaders/internal/session"
	"hand-invaders/internal/tty"
	"hand-invaders/internal/utils"
	"hand-invaders/pkg/render/cell"
)

func main() {
	var (
		tuningPath = flag.String("tuning", "", "path to a tuning JSON file (built-in defaults if empty)")
		seed       = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
		logFile    = flag.String("log", "hand-invaders.log", "log file (the terminal is busy with the game)")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
		bridgeAddr = flag.String("bridge", utils.GetEnvDefault("BRIDGE_ADDR", ""), "hand tracker websocket address, empty disables it")
		boardPath  = flag.String("leaderboard", config.LeaderboardFile, "leaderboard file")
		name       = flag.String("name", utils.GetEnvDefault("USER", ""), "name for the leaderboard, empty skips saving")
	)
	flag.Parse()

	logOut, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logOut.Close()
	if _, err := utils.SetupLogger(logOut, *logLevel); err != nil {
		log.Fatal(err)
	}

	tuning := defs.Default()
	if *tuningPath != "" {
		if tuning, err = defs.LoadTuning(*tuningPath); err != nil {
			log.Fatal(err)
		}
	}

	result, err := run(tuning, *seed, *bridgeAddr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Game over: score %d, wave %d (%s)\n", result.Score, result.Wave, result.Reason)
	if *name == "" || !result.Earned() {
		return
	}
	entry, err := leaderboard.NewEntry(*name, result.Score, result.Wave, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	store := leaderboard.NewFileStore(*boardPath)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.Submit(ctx, entry); err != nil {
		log.Fatal(err)
	}
	top, err := store.Top(ctx, config.LeaderboardSize)
	if err != nil {
		log.Fatal(err)
	}
	for i, e := range top {
		fmt.Printf("%2d. %-15s %7d  W%d\n", i+1, e.Name, e.Score, e.Wave)
	}
}

// run играет одну партию в терминале и возвращает её итог.
func run(tuning *defs.Tuning, seed int64, bridgeAddr string) (app.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return app.Result{}, err
	}
	if err := screen.Init(); err != nil {
		return app.Result{}, err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	group, groupCtx := errgroup.WithContext(ctx)

	keys := tty.NewKeys()
	gestures := input.NewLatest(config.InputStaleAfter)
	providers := append(input.Merge{gestures}, keys.Providers()...)

	renderer := cell.NewRenderer(config.Palette(), config.CellWidth, config.CellHeight)
	sess := session.New(session.Options{
		Game: app.Options{
			Tuning:  tuning,
			Seed:    seed,
			Backend: renderer,
		},
		Input: providers,
	})

	if bridgeAddr != "" {
		srv := bridge.NewServer(gestures, input.GestureMapper{
			SenseMin:       config.GestureSenseMin,
			SenseMax:       config.GestureSenseMax,
			PinchThreshold: config.PinchThreshold,
		})
		srv.Subscribe(sess.Events())
		srv.SetSession(sess.ID.String())
		group.Go(func() error {
			if err := srv.Serve(groupCtx, bridgeAddr); err != nil {
				slog.Error("hand tracker bridge stopped", "error", err)
			}
			return nil
		})
	}

	group.Go(func() error {
		err := sess.Run(groupCtx, config.FrameInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-sess.Done():
			break loop
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch keys.Handle(ev, time.Now()) {
				case tty.CommandQuit:
					break loop
				case tty.CommandPause:
					togglePause(sess)
				}
			}
		case <-ticker.C:
			screen.Clear()
			renderer.Draw(screen)
			tty.DrawHUD(screen, sess.Snapshot(), sess.Status() == session.StatusPaused)
			screen.Show()
		}
	}

	if err := sess.Terminate(); err != nil && !errors.Is(err, session.ErrClosed) {
		slog.Warn("terminate session", "error", err)
	}
	stop()
	if err := group.Wait(); err != nil {
		return app.Result{}, err
	}
	result, _ := sess.Result()
	return result, nil
}

func togglePause(sess *session.Session) {
	if sess.Status() == session.StatusPaused {
		if err := sess.Resume(time.Now()); err != nil {
			slog.Warn("resume session", "error", err)
		}
		return
	}
	if err := sess.Pause(); err != nil {
		slog.Warn("pause session", "error", err)
	}
}
