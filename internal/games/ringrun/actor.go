package ringrun

import (
	"fmt"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
)

// GroundFunc returns the y of the surface the actor rests on at x.
type GroundFunc func(x float64) float64

// Actor is the player character. Only its vertical position moves.
type Actor struct {
	x        float64
	y        float64 // centre, grows downward
	radius   float64
	velocity float64
	gravity  float64
	lift     float64
	grounded bool

	ground GroundFunc
	snap   float64
	sound  SoundEmitter
}

// NewActor creates an actor resting on the ground.
// snap is how far below a falling surface a grounded actor is pulled back
// down; pass 0 for a flat ground.
func NewActor(cfg config.ActorConfig, ground GroundFunc, snap float64, sound SoundEmitter) (*Actor, error) {
	if cfg.Radius <= 0 || !core.Finite(cfg.Radius) {
		return nil, fmt.Errorf("%w: actor radius %g", config.ErrInvalid, cfg.Radius)
	}
	if cfg.Gravity <= 0 || cfg.JumpImpulse >= 0 {
		return nil, fmt.Errorf("%w: actor gravity %g, jump impulse %g", config.ErrInvalid, cfg.Gravity, cfg.JumpImpulse)
	}
	if ground == nil {
		return nil, fmt.Errorf("%w: actor has no ground", config.ErrInvalid)
	}

	a := &Actor{
		x:       cfg.X,
		radius:  cfg.Radius,
		gravity: cfg.Gravity,
		lift:    cfg.JumpImpulse,
		ground:  ground,
		snap:    snap,
		sound:   orSilent(sound),
	}
	a.y = a.GroundLevel()
	a.grounded = true
	return a, nil
}

// GroundLevel is the lowest y the actor centre may take.
func (a *Actor) GroundLevel() float64 {
	return a.ground(a.x) - a.radius
}

// Jump starts a jump if the actor is grounded. A jump while airborne is ignored.
// Reports whether the jump was accepted.
func (a *Actor) Jump() bool {
	if !a.grounded {
		return false
	}
	a.velocity = a.lift
	a.grounded = false
	a.sound.Emit(SoundJump)
	return true
}

// Integrate advances the actor by one tick.
func (a *Actor) Integrate() {
	wasGrounded := a.grounded

	a.velocity += a.gravity
	a.y += a.velocity

	groundLevel := a.GroundLevel()
	if a.y >= groundLevel || (wasGrounded && a.snap > 0 && groundLevel-a.y <= a.snap) {
		a.y = groundLevel
		a.velocity = 0
		a.grounded = true
		return
	}
	a.grounded = false
}

// Draw asks the surface to draw the actor.
func (a *Actor) Draw(s Surface) {
	s.DrawActor(a.Center(), a.radius)
}

// Center returns the actor centre.
func (a *Actor) Center() core.Point {
	return core.Point{X: a.x, Y: a.y}
}

// Radius returns the body radius.
func (a *Actor) Radius() float64 { return a.radius }

// Velocity returns the vertical velocity. Negative is upward.
func (a *Actor) Velocity() float64 { return a.velocity }

// Grounded reports whether a jump would be accepted.
func (a *Actor) Grounded() bool { return a.grounded }
