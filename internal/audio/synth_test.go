package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/games/ringrun"
)

// TestSynthGracefulDegradation verifies cues are safe without a device.
func TestSynthGracefulDegradation(t *testing.T) {
	s := NewSynth(config.DefaultRunnerConfig().Sound, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Synth panicked without initialization: %v", r)
		}
	}()

	s.Emit(ringrun.SoundJump)
	s.Emit(ringrun.SoundCollect)
	s.Close()
}

// TestSynthInitialization may find no audio device in CI; that is not a failure.
func TestSynthInitialization(t *testing.T) {
	s := NewSynth(config.DefaultRunnerConfig().Sound, nil)

	if err := s.Init(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := s.Init(); err != nil {
		t.Errorf("second Init should be a no-op, got %v", err)
	}

	s.Emit(ringrun.SoundCollect)
	s.Close()
	s.Emit(ringrun.SoundJump)
}

func TestOpenDisabled(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Sound
	cfg.Enabled = false

	emitter, closeFn := Open(cfg, nil)
	defer closeFn()

	if emitter != ringrun.Silent {
		t.Errorf("disabled sound should be silent, got %T", emitter)
	}
}

func TestBell(t *testing.T) {
	b := NewBell()

	clock := time.Unix(1000, 0)
	b.now = func() time.Time { return clock }

	b.Emit(ringrun.SoundJump)
	if b.Take() {
		t.Error("jump rang the bell")
	}

	b.Emit(ringrun.SoundCollect)
	b.Emit(ringrun.SoundCollect) // merged with the first
	if !b.Take() {
		t.Fatal("collect did not ring the bell")
	}
	if b.Take() {
		t.Error("bell rang twice for merged cues")
	}

	clock = clock.Add(bellGap)
	b.Emit(ringrun.SoundCollect)
	if !b.Take() {
		t.Error("collect after the gap did not ring the bell")
	}
}
