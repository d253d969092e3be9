// internal/audio/audio_test.go
package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hand-invaders/internal/event"
)

const testRate = beep.SampleRate(44100)

// drain читает поток до конца и возвращает число сэмплов и пиковую амплитуду.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 1000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("поток не закончился")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		assert.Equal(t, testRate.N(100*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
		assert.NoError(t, osc.Err())
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.InDelta(t, 0.0, buf[0][0], 1e-9, "нарастание начинается с тишины")
	assert.InDelta(t, 1.0, buf[n/2][0], 1e-9, "в середине полная громкость")
	assert.Less(t, math.Abs(buf[n-1][0]), 0.01, "к концу затухает")
}

func TestEffectsFinish(t *testing.T) {
	sounds := []SoundType{SoundShoot, SoundEnemyShoot, SoundExplosion, SoundUpgrade, SoundWave, SoundGameOver}
	for _, sound := range sounds {
		s := Effect(sound, testRate, 1)
		require.NotNil(t, s, "эффект %d", sound)
		n, peak := drain(t, s)
		assert.Positive(t, n)
		assert.Less(t, n, testRate.N(2*time.Second))
		assert.Positive(t, peak)
	}
	assert.Nil(t, Effect(SoundNone, testRate, 1))
}

func TestMutedEffectIsSilent(t *testing.T) {
	_, peak := drain(t, Effect(SoundShoot, testRate, 0))
	assert.Zero(t, peak)
}

func TestSoundForEvents(t *testing.T) {
	cases := map[event.EventType]SoundType{
		event.PlayerFired:    SoundShoot,
		event.EnemyFired:     SoundEnemyShoot,
		event.EnemyDestroyed: SoundExplosion,
		event.PlayerUpgraded: SoundUpgrade,
		event.WaveStarted:    SoundWave,
		event.GameOver:       SoundGameOver,
		event.ScoreChanged:   SoundNone,
		event.BarrierHit:     SoundNone,
	}
	for typ, want := range cases {
		assert.Equal(t, want, SoundFor(event.Event{Type: typ}), string(typ))
	}
}

func TestManagerWithoutSpeakerIsSilent(t *testing.T) {
	sm := NewSoundManager(44100, 1)
	d := event.NewDispatcher()
	ids := sm.Subscribe(d)
	assert.Len(t, ids, 6)

	d.Emit(event.PlayerFired, event.PlayerFiredData{Bullets: 1})
	d.Emit(event.GameOver, event.GameOverData{})
	sm.Cleanup()

	assert.Zero(t, sm.Played())
}
