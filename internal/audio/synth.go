package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/games/ringrun"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Synth plays runner cues on the local speaker. Every Emit adds a fresh
// one-shot tone to a shared mixer, so overlapping cues sum.
// Emit before Init or after Close does nothing.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	tones       map[ringrun.SoundKind]config.ToneConfig
	initialized bool
	logger      *log.Logger
}

// NewSynth creates a synthesiser for the given sound configuration.
func NewSynth(cfg config.SoundConfig, logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.Default()
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		tones: map[ringrun.SoundKind]config.ToneConfig{
			ringrun.SoundJump:    cfg.Jump,
			ringrun.SoundCollect: cfg.Collect,
		},
		logger: logger,
	}
}

// Init opens the audio device. Calling it twice is a no-op.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	for kind, tone := range s.tones {
		if _, err := ParseWave(tone.Wave); err != nil {
			return fmt.Errorf("%s tone: %w", kind, err)
		}
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Emit starts the cue for kind and returns immediately.
func (s *Synth) Emit(kind ringrun.SoundKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	tone, ok := s.tones[kind]
	if !ok {
		return
	}
	streamer, err := NewTone(tone, sampleRate)
	if err != nil {
		s.logger.Debug("skipping cue", "kind", kind, "error", err)
		return
	}

	speaker.Lock()
	s.mixer.Add(newVolume(streamer, s.volume))
	speaker.Unlock()
}

// Close silences all cues and releases the audio device.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Open returns the emitter the local game should use and a function that
// releases it. Audio is optional: when sound is disabled or no device is
// available the game runs silent.
func Open(cfg config.SoundConfig, logger *log.Logger) (ringrun.SoundEmitter, func()) {
	if !cfg.Enabled {
		return ringrun.Silent, func() {}
	}

	synth := NewSynth(cfg, logger)
	if err := synth.Init(); err != nil {
		synth.logger.Warn("audio unavailable, running silent", "error", err)
		return ringrun.Silent, func() {}
	}
	return synth, synth.Close
}
