// Package audio turns runner cues into sound: synthesised tones on the local
// speaker, or a terminal bell for remote sessions.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/ring-runner/internal/config"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// ParseWave maps a configuration name to a wave shape. Empty means sine.
func ParseWave(name string) (WaveType, error) {
	switch name {
	case "", "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "triangle":
		return WaveTriangle, nil
	default:
		return WaveSine, fmt.Errorf("unknown wave %q", name)
	}
}

// oscillator generates an endless periodic wave
type oscillator struct {
	freq  float64
	phase float64
	wave  WaveType
	rate  beep.SampleRate
}

// NewOscillator creates an oscillator; bound it with an envelope or beep.Take.
func NewOscillator(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream exponentially and ends it once the level is inaudible.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	k        float64 // per-sample decay constant
}

// silenceLevel is where an exponential decay is cut off (about -60 dB).
const silenceLevel = 0.001

// NewDecay applies an exponential envelope reaching silence after d.
func NewDecay(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	if total < 1 {
		total = 1
	}
	return &decay{
		streamer: s,
		total:    total,
		k:        math.Log(silenceLevel) / float64(total),
	}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(e.k * float64(e.position))
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume. math.Log2(0) is -Inf, so 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewTone builds a one-shot cue: the fundamental plus an optional octave
// overtone, normalised to unit peak and shaped by an exponential decay.
func NewTone(cfg config.ToneConfig, rate beep.SampleRate) (beep.Streamer, error) {
	wave, err := ParseWave(cfg.Wave)
	if err != nil {
		return nil, err
	}

	var s beep.Streamer = NewOscillator(cfg.Frequency, wave, rate)
	if cfg.Overtone > 0 {
		norm := 1 / (1 + cfg.Overtone)
		s = beep.Mix(
			newVolume(s, norm),
			newVolume(NewOscillator(cfg.Frequency*2, wave, rate), cfg.Overtone*norm),
		)
	}

	d := time.Duration(cfg.Decay * float64(time.Second))
	return NewDecay(s, d, rate), nil
}
