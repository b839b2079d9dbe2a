package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every configuration validation error.
var ErrInvalid = errors.New("invalid configuration")

// minStep is the smallest cell size or terrain stride, in units.
const minStep = 1

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the configuration and returns the first problem found.
// A run must not start with an invalid configuration.
func (c RunnerConfig) Validate() error {
	nums := map[string]float64{
		"surface.cell_width":     c.Surface.CellWidth,
		"surface.cell_height":    c.Surface.CellHeight,
		"actor.x":                c.Actor.X,
		"actor.radius":           c.Actor.Radius,
		"actor.gravity":          c.Actor.Gravity,
		"actor.jump_impulse":     c.Actor.JumpImpulse,
		"landscape.amplitude":    c.Landscape.Amplitude,
		"landscape.frequency":    c.Landscape.Frequency,
		"landscape.speed":        c.Landscape.Speed,
		"landscape.stride":       c.Landscape.Stride,
		"landscape.detail":       c.Landscape.Detail,
		"landscape.detail_scale": c.Landscape.DetailScale,
		"ground.snap":            c.Ground.Snap,
		"rings.spacing":          c.Rings.Spacing,
		"rings.outer_radius":     c.Rings.OuterRadius,
		"rings.inner_radius":     c.Rings.InnerRadius,
		"rings.reach_height":     c.Rings.ReachHeight,
		"sound.volume":           c.Sound.Volume,
	}
	for name, v := range nums {
		if !finite(v) {
			return invalid("%s must be finite", name)
		}
	}

	switch {
	case c.Surface.CellWidth < minStep || c.Surface.CellHeight < minStep:
		return invalid("surface cell size must be at least %d unit", minStep)
	case c.Actor.Radius <= 0:
		return invalid("actor.radius must be positive, got %g", c.Actor.Radius)
	case c.Actor.Gravity <= 0:
		return invalid("actor.gravity must be positive, got %g", c.Actor.Gravity)
	case c.Actor.JumpImpulse >= 0:
		return invalid("actor.jump_impulse must be negative (upward), got %g", c.Actor.JumpImpulse)
	case c.Landscape.Amplitude < 0:
		return invalid("landscape.amplitude must not be negative")
	case c.Landscape.Frequency <= 0:
		return invalid("landscape.frequency must be positive, got %g", c.Landscape.Frequency)
	case c.Landscape.Speed < 0:
		return invalid("landscape.speed must not be negative")
	case c.Landscape.Stride != 0 && c.Landscape.Stride < minStep:
		return invalid("landscape.stride must be 0 (one cell) or at least %d unit, got %g", minStep, c.Landscape.Stride)
	case c.Landscape.Detail < 0:
		return invalid("landscape.detail must not be negative")
	case c.Landscape.Detail > 0 && c.Landscape.DetailScale <= 0:
		return invalid("landscape.detail_scale must be positive when detail is set")
	case c.Ground.Snap < 0:
		return invalid("ground.snap must not be negative")
	case c.Rings.MinActive < 1:
		return invalid("rings.min_active must be at least 1, got %d", c.Rings.MinActive)
	case c.Rings.OuterRadius <= 0:
		return invalid("rings.outer_radius must be positive, got %g", c.Rings.OuterRadius)
	case c.Rings.InnerRadius < 0 || c.Rings.InnerRadius >= c.Rings.OuterRadius:
		return invalid("rings.inner_radius must be in [0, outer_radius)")
	case c.Rings.Spacing < 2*c.Rings.OuterRadius:
		return invalid("rings.spacing must be at least the ring diameter %g, got %g", 2*c.Rings.OuterRadius, c.Rings.Spacing)
	case c.Rings.Award < 0:
		return invalid("rings.award must not be negative")
	case c.Rings.ReachHeight < 0:
		return invalid("rings.reach_height must not be negative")
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return invalid("sound.volume must be in [0, 1]")
	}

	if err := c.Sound.Jump.validate("sound.jump"); err != nil {
		return err
	}
	return c.Sound.Collect.validate("sound.collect")
}

func (t ToneConfig) validate(name string) error {
	switch {
	case !finite(t.Frequency) || t.Frequency <= 0:
		return invalid("%s.frequency must be positive", name)
	case !finite(t.Decay) || t.Decay <= 0:
		return invalid("%s.decay must be positive", name)
	case !finite(t.Overtone) || t.Overtone < 0 || t.Overtone > 1:
		return invalid("%s.overtone must be in [0, 1]", name)
	}
	switch t.Wave {
	case "", "sine", "square", "triangle":
		return nil
	default:
		return invalid("%s.wave %q is not one of sine, square, triangle", name, t.Wave)
	}
}
