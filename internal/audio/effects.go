// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator — генератор тона заданной длительности.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — упрощённая огибающая: нарастание и затухание.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// log2(0) = -Inf, поэтому нулевая громкость включает Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// CreateShootSound — короткий писк выстрела.
func CreateShootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(880, 60*time.Millisecond, WaveSquare, rate), vol*0.4)
}

// CreateEnemyShootSound — выстрел пришельца, ниже и глуше.
func CreateEnemyShootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(220, 80*time.Millisecond, WaveSaw, rate), vol*0.3)
}

// CreateExplosionSound — шумовой хлопок.
func CreateExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(0, 180*time.Millisecond, WaveNoise, rate), vol*0.5)
}

// CreateUpgradeSound — восходящее арпеджио.
func CreateUpgradeSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Seq(
		tone(659.25, 70*time.Millisecond, WaveSine, rate),
		tone(987.77, 70*time.Millisecond, WaveSine, rate),
		tone(1318.51, 120*time.Millisecond, WaveSine, rate),
	), vol*0.6)
}

// CreateWaveSound — два аккорда в начале волны.
func CreateWaveSound(rate beep.SampleRate, vol float64) beep.Streamer {
	chord := func(d time.Duration, freqs ...float64) beep.Streamer {
		parts := make([]beep.Streamer, 0, len(freqs))
		for _, f := range freqs {
			parts = append(parts, newVolume(tone(f, d, WaveSine, rate), 1/float64(len(freqs))))
		}
		return beep.Mix(parts...)
	}
	return newVolume(beep.Seq(
		chord(120*time.Millisecond, 523.25, 659.25),
		chord(200*time.Millisecond, 659.25, 783.99),
	), vol*0.6)
}

// CreateGameOverSound — нисходящая фраза.
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Seq(
		tone(392, 200*time.Millisecond, WaveSaw, rate),
		tone(311.13, 200*time.Millisecond, WaveSaw, rate),
		tone(196, 400*time.Millisecond, WaveSaw, rate),
	), vol*0.5)
}
