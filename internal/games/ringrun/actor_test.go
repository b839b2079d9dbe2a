package ringrun

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ring-runner/internal/config"
)

func newTestActor(t *testing.T, sound SoundEmitter) *Actor {
	t.Helper()
	a, err := NewActor(testConfig().Actor, flatGround(400), 0, sound)
	if err != nil {
		t.Fatalf("NewActor: %v", err)
	}
	return a
}

func TestActorStartsGrounded(t *testing.T) {
	a := newTestActor(t, nil)

	if !a.Grounded() {
		t.Error("new actor should be grounded")
	}
	if got, want := a.Center().Y, 400-a.Radius(); got != want {
		t.Errorf("y = %g, want %g", got, want)
	}
	if a.Velocity() != 0 {
		t.Errorf("velocity = %g, want 0", a.Velocity())
	}
}

func TestActorJumpFromRest(t *testing.T) {
	cfg := testConfig().Actor
	sound := &soundLog{}
	a := newTestActor(t, sound)
	ground := a.GroundLevel()

	if !a.Jump() {
		t.Fatal("jump from rest was rejected")
	}
	a.Integrate()

	wantV := cfg.Gravity + cfg.JumpImpulse
	if a.Velocity() != wantV {
		t.Errorf("velocity = %g, want %g", a.Velocity(), wantV)
	}
	if got := a.Center().Y; got != ground+wantV {
		t.Errorf("y = %g, want %g", got, ground+wantV)
	}
	if a.Grounded() {
		t.Error("actor should be airborne after a jump")
	}
	if got := sound.count(SoundJump); got != 1 {
		t.Errorf("jump sounds = %d, want 1", got)
	}
}

func TestActorJumpWhileAirborneIgnored(t *testing.T) {
	sound := &soundLog{}
	a := newTestActor(t, sound)

	a.Jump()
	a.Integrate()
	v := a.Velocity()

	if a.Jump() {
		t.Error("airborne jump should be rejected")
	}
	if a.Velocity() != v {
		t.Errorf("airborne jump changed velocity: %g -> %g", v, a.Velocity())
	}
	if got := sound.count(SoundJump); got != 1 {
		t.Errorf("jump sounds = %d, want 1", got)
	}
}

func TestActorNeverBelowGround(t *testing.T) {
	a := newTestActor(t, nil)
	ground := a.GroundLevel()

	landed := false
	for i := 0; i < 500; i++ {
		if i%60 == 0 {
			a.Jump()
		}
		a.Integrate()
		if a.Center().Y > ground {
			t.Fatalf("tick %d: y = %g below ground %g", i, a.Center().Y, ground)
		}
		if a.Grounded() {
			if a.Velocity() != 0 {
				t.Fatalf("tick %d: grounded with velocity %g", i, a.Velocity())
			}
			landed = true
		}
	}
	if !landed {
		t.Error("actor never landed")
	}
}

func TestActorRestIsStable(t *testing.T) {
	a := newTestActor(t, nil)
	y := a.Center().Y

	for i := 0; i < 10; i++ {
		a.Integrate()
	}
	if a.Center().Y != y || !a.Grounded() {
		t.Errorf("resting actor moved to %g (grounded=%v)", a.Center().Y, a.Grounded())
	}
}

func TestActorFollowsFallingGroundWithinSnap(t *testing.T) {
	ground := 400.0
	a, err := NewActor(testConfig().Actor, func(float64) float64 { return ground }, 4, nil)
	if err != nil {
		t.Fatalf("NewActor: %v", err)
	}

	// The terrain drops by more than one tick of gravity but less than snap.
	ground += 3
	a.Integrate()
	if !a.Grounded() || a.Center().Y != a.GroundLevel() {
		t.Errorf("actor should stay on the ground, y = %g, level = %g", a.Center().Y, a.GroundLevel())
	}

	// A drop larger than snap leaves it airborne.
	ground += 50
	a.Integrate()
	if a.Grounded() {
		t.Error("actor should fall after a drop larger than snap")
	}
}

func TestNewActorRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		mod  func(c *config.ActorConfig)
	}{
		{"zero radius", func(c *config.ActorConfig) { c.Radius = 0 }},
		{"no gravity", func(c *config.ActorConfig) { c.Gravity = 0 }},
		{"downward jump", func(c *config.ActorConfig) { c.JumpImpulse = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig().Actor
			tt.mod(&cfg)
			_, err := NewActor(cfg, flatGround(400), 0, nil)
			if !errors.Is(err, config.ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}

	if _, err := NewActor(testConfig().Actor, nil, 0, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("nil ground: err = %v, want ErrInvalid", err)
	}
}
