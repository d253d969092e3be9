// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"hand-invaders/internal/event"
)

// SoundType — звуковой эффект.
type SoundType int

const (
	SoundNone SoundType = iota
	SoundShoot
	SoundEnemyShoot
	SoundExplosion
	SoundUpgrade
	SoundWave
	SoundGameOver
)

// SoundFor выбирает эффект для игрового события.
func SoundFor(e event.Event) SoundType {
	switch e.Type {
	case event.PlayerFired:
		return SoundShoot
	case event.EnemyFired:
		return SoundEnemyShoot
	case event.EnemyDestroyed:
		return SoundExplosion
	case event.PlayerUpgraded:
		return SoundUpgrade
	case event.WaveStarted:
		return SoundWave
	case event.GameOver:
		return SoundGameOver
	}
	return SoundNone
}

// Effect собирает поток для эффекта. nil для SoundNone.
func Effect(sound SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case SoundShoot:
		return CreateShootSound(rate, vol)
	case SoundEnemyShoot:
		return CreateEnemyShootSound(rate, vol)
	case SoundExplosion:
		return CreateExplosionSound(rate, vol)
	case SoundUpgrade:
		return CreateUpgradeSound(rate, vol)
	case SoundWave:
		return CreateWaveSound(rate, vol)
	case SoundGameOver:
		return CreateGameOverSound(rate, vol)
	}
	return nil
}

// SoundManager играет эффекты по событиям партии.
// Без инициализированного динамика все вызовы молча ничего не делают,
// так что игра работает и на машинах без звука.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	played      int
}

func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize открывает аудиоустройство.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	slog.Info("audio initialized", "sample_rate", int(sm.rate))
	return nil
}

// Cleanup глушит все эффекты.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}

// Play запускает эффект поверх уже играющих.
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound == SoundNone {
		return
	}
	streamer := Effect(sound, sm.rate, sm.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played++
}

// Played — сколько эффектов было отправлено в микшер.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

func (sm *SoundManager) OnEvent(e event.Event) {
	sm.Play(SoundFor(e))
}

// Subscribe подписывает менеджер на озвучиваемые события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) []event.SubscriptionID {
	return d.SubscribeAll(sm,
		event.PlayerFired,
		event.EnemyFired,
		event.EnemyDestroyed,
		event.PlayerUpgraded,
		event.WaveStarted,
		event.GameOver,
	)
}
