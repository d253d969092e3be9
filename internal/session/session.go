// internal/session/session.go
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"hand-invaders/internal/app"
	"hand-invaders/internal/event"
	"hand-invaders/internal/input"
)

var (
	ErrNotRunning     = errors.New("session is not running")
	ErrNotPaused      = errors.New("session is not paused")
	ErrAlreadyStarted = errors.New("session already started")
	ErrClosed         = errors.New("session is closed")
)

// DefaultFrameInterval — шаг тикера Run, если не задан.
const DefaultFrameInterval = time.Second / 60

type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusPaused
	StatusOver
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	case StatusClosed:
		return "closed"
	}
	return "unknown"
}

// Options — параметры сессии. Колбэки вызываются вне блокировки сессии,
// поэтому из них можно обращаться к Session.
type Options struct {
	Game  app.Options
	Input input.Provider

	OnGameOver func(score, wave int)
	OnScore    func(score int)
	OnWave     func(wave int)
}

// Session owns one run: it schedules the per-frame tick and the enemy-shooting
// timer, and reports the final result exactly once.
//
// All public methods are serialized by a mutex, so Terminate from another
// goroutine never races a tick.
type Session struct {
	ID uuid.UUID

	mu           sync.Mutex
	status       Status
	game         *app.Game
	events       *event.Dispatcher
	subs         map[event.EventType]event.SubscriptionID
	provider     input.Provider
	lastAdvance  time.Time
	shootEvery   time.Duration
	shootElapsed time.Duration

	final    app.Snapshot
	result   app.Result
	reported bool
	pending  []func()
	done     chan struct{}

	onGameOver func(score, wave int)
	onScore    func(score int)
	onWave     func(wave int)

	log *slog.Logger
}

// New собирает партию для первой волны. Расписание не запускается до Start.
func New(opts Options) *Session {
	if opts.Game.EventDispatcher == nil {
		opts.Game.EventDispatcher = event.NewDispatcher()
	}
	id := uuid.New()
	s := &Session{
		ID:         id,
		status:     StatusReady,
		events:     opts.Game.EventDispatcher,
		provider:   opts.Input,
		done:       make(chan struct{}),
		onGameOver: opts.OnGameOver,
		onScore:    opts.OnScore,
		onWave:     opts.OnWave,
		log:        slog.Default().With("session", id.String()),
	}
	s.subs = map[event.EventType]event.SubscriptionID{
		event.ScoreChanged: s.events.Subscribe(event.ScoreChanged, s),
		event.WaveStarted:  s.events.Subscribe(event.WaveStarted, s),
		event.GameOver:     s.events.Subscribe(event.GameOver, s),
	}

	s.game = app.NewGame(opts.Game)
	s.shootEvery = s.game.Tuning.ShootingInterval()
	s.final = s.game.Snapshot()
	s.pending = nil // стартовая волна не считается изменением
	s.log.Info("session created", "enemies", s.final.Enemies)
	return s
}

// OnEvent переводит события партии в колбэки. Вызывается под блокировкой
// сессии, поэтому колбэки только ставятся в очередь.
func (s *Session) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ScoreChangedData:
		if s.onScore != nil {
			score := data.Score
			s.pending = append(s.pending, func() { s.onScore(score) })
		}
	case event.WaveStartedData:
		if s.onWave != nil {
			wave := data.Wave
			s.pending = append(s.pending, func() { s.onWave(wave) })
		}
	case event.GameOverData:
		if s.reported {
			return
		}
		s.reported = true
		if s.onGameOver != nil {
			score, wave := data.Score, data.Wave
			s.pending = append(s.pending, func() { s.onGameOver(score, wave) })
		}
	}
}

// Events — диспетчер событий партии, для звука и моста.
func (s *Session) Events() *event.Dispatcher {
	return s.events
}

// Done закрывается, когда партия окончена или сессия закрыта.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot возвращает текущее состояние, а после окончания — итоговое.
func (s *Session) Snapshot() app.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game != nil {
		return s.game.Snapshot()
	}
	return s.final
}

// Result возвращает итог; ok == false, пока партия не окончена.
func (s *Session) Result() (app.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.reported
}

func (s *Session) Start(now time.Time) error {
	return s.locked(func() error {
		switch s.status {
		case StatusReady:
		case StatusClosed:
			return ErrClosed
		default:
			return ErrAlreadyStarted
		}
		s.status = StatusRunning
		s.lastAdvance = now
		s.shootElapsed = 0
		s.log.Info("session started")
		return nil
	})
}

// Pause приостанавливает и тик, и таймер стрельбы; мир не меняется.
func (s *Session) Pause() error {
	return s.locked(func() error {
		if err := s.requireLocked(StatusRunning, ErrNotRunning); err != nil {
			return err
		}
		s.status = StatusPaused
		return nil
	})
}

// Resume продолжает партию с новой точки отсчёта: время паузы не догоняется.
func (s *Session) Resume(now time.Time) error {
	return s.locked(func() error {
		if err := s.requireLocked(StatusPaused, ErrNotPaused); err != nil {
			return err
		}
		s.status = StatusRunning
		s.lastAdvance = now
		return nil
	})
}

// Terminate останавливает партию и освобождает мир. Если партия ещё шла,
// итог сообщается с причиной session_stopped.
func (s *Session) Terminate() error {
	return s.locked(func() error {
		if s.status == StatusClosed {
			return ErrClosed
		}
		if s.game != nil {
			s.game.Stop()
			s.finishLocked()
		}
		s.status = StatusClosed
		for t, id := range s.subs {
			s.events.Unsubscribe(t, id)
		}
		s.log.Info("session closed")
		return nil
	})
}

// Advance — покадровый вызов. Берёт последний сэмпл ввода, продвигает мир
// на прошедшее с прошлого вызова время и тикает таймер стрельбы.
// Таймер срабатывает не чаще раза за вызов; пропущенные периоды не копятся.
func (s *Session) Advance(now time.Time) error {
	return s.locked(func() error {
		if err := s.requireLocked(StatusRunning, ErrNotRunning); err != nil {
			return err
		}
		elapsed := now.Sub(s.lastAdvance)
		if elapsed < 0 {
			elapsed = 0
		}
		s.lastAdvance = now

		var sample input.Sample
		if s.provider != nil {
			sample = s.provider.Sample(now)
		}
		s.game.Update(elapsed.Seconds(), sample)

		if !s.game.IsOver() && s.shootEvery > 0 {
			s.shootElapsed += elapsed
			if s.shootElapsed >= s.shootEvery {
				s.shootElapsed %= s.shootEvery
				s.game.FireEnemies()
			}
		}
		if s.game.IsOver() {
			s.finishLocked()
		}
		return nil
	})
}

// Run крутит Advance по тикеру для фронтендов без собственного кадрового цикла.
// Выходит при отмене ctx, закрытии сессии или окончании партии; тикер
// останавливается до возврата.
func (s *Session) Run(ctx context.Context, frameInterval time.Duration) error {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	switch err := s.Start(time.Now()); {
	case err == nil, errors.Is(err, ErrAlreadyStarted):
	case errors.Is(err, ErrClosed):
		return nil
	default:
		return err
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case now := <-ticker.C:
			err := s.Advance(now)
			switch {
			case err == nil, errors.Is(err, ErrNotRunning):
			case errors.Is(err, ErrClosed):
				return nil
			default:
				return err
			}
		}
	}
}

// finishLocked фиксирует итог и отпускает мир: после этого мутаторы недостижимы.
func (s *Session) finishLocked() {
	if res, ok := s.game.Result(); ok {
		s.result = res
	}
	s.final = s.game.Snapshot()
	s.game.Teardown()
	s.game = nil
	s.status = StatusOver
	close(s.done)
	s.log.Info("session finished", "score", s.result.Score, "wave", s.result.Wave, "reason", s.result.Reason)
}

func (s *Session) requireLocked(want Status, wrong error) error {
	if s.status == StatusClosed {
		return ErrClosed
	}
	if s.status != want {
		return wrong
	}
	return nil
}

// locked выполняет fn под блокировкой и после её снятия доставляет колбэки.
func (s *Session) locked(fn func() error) error {
	s.mu.Lock()
	err := fn()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, notify := range pending {
		notify()
	}
	return err
}
