package ringrun

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
)

// Ring is a collectible pickup. Y is fixed at spawn; X scrolls left.
type Ring struct {
	X, Y      float64
	Outer     float64
	Inner     float64 // 0 = no hollow centre
	Collected bool
}

// Center returns the ring centre.
func (r Ring) Center() core.Point {
	return core.Point{X: r.X, Y: r.Y}
}

// Touches reports whether a circle of the given centre and radius overlaps
// the ring body. Both bounds are strict: touching exactly at the edge is a miss.
func (r Ring) Touches(center core.Point, radius float64) bool {
	d := core.Dist(r.Center(), center)
	if d >= radius+r.Outer {
		return false
	}
	if r.Inner > 0 && d <= r.Inner-radius {
		return false // passing through the hollow centre
	}
	return true
}

// offScreen reports whether the ring has scrolled fully past the left edge.
func (r Ring) offScreen() bool {
	return r.X+r.Outer < 0
}

// Score is the run's score. It only ever grows.
type Score struct {
	points int
	rings  int
}

// Award records one collected ring worth the given points.
func (s *Score) Award(points int) {
	if points > 0 {
		s.points += points
	}
	s.rings++
}

// Points returns the score.
func (s Score) Points() int { return s.points }

// Rings returns how many rings were collected.
func (s Score) Rings() int { return s.rings }

// RingStream keeps an evenly spaced, x-ordered stream of rings ahead of the actor.
type RingStream struct {
	rings []Ring // active, ascending x
	spare []Ring // back buffer for the two-phase update

	spacing   float64
	minActive int
	outer     float64
	inner     float64
	award     int
	width     float64

	bandTop    float64 // highest spawn y (smallest value)
	bandBottom float64 // lowest spawn y, two actor radii above the baseline

	rng   *rand.Rand
	sound SoundEmitter
}

// NewRingStream creates a stream for a surface of the given width and fills it.
// Rings spawn between baseline-2*actorRadius and that line minus the reach height.
func NewRingStream(cfg config.RingConfig, width, baseline, actorRadius float64, seed int64, sound SoundEmitter) (*RingStream, error) {
	switch {
	case cfg.Spacing <= 0 || !core.Finite(cfg.Spacing):
		return nil, fmt.Errorf("%w: ring spacing %g", config.ErrInvalid, cfg.Spacing)
	case cfg.MinActive < 1:
		return nil, fmt.Errorf("%w: ring min_active %d", config.ErrInvalid, cfg.MinActive)
	case cfg.OuterRadius <= 0 || cfg.InnerRadius < 0 || cfg.InnerRadius >= cfg.OuterRadius:
		return nil, fmt.Errorf("%w: ring radii %g/%g", config.ErrInvalid, cfg.OuterRadius, cfg.InnerRadius)
	case cfg.Spacing < 2*cfg.OuterRadius:
		return nil, fmt.Errorf("%w: ring spacing %g below diameter %g", config.ErrInvalid, cfg.Spacing, 2*cfg.OuterRadius)
	case cfg.ReachHeight < 0 || cfg.Award < 0:
		return nil, fmt.Errorf("%w: ring reach %g, award %d", config.ErrInvalid, cfg.ReachHeight, cfg.Award)
	case width <= 0 || !core.Finite(width, baseline, actorRadius):
		return nil, fmt.Errorf("%w: surface width %g", config.ErrInvalid, width)
	}

	bottom := baseline - 2*actorRadius
	rs := &RingStream{
		rings:      make([]Ring, 0, cfg.MinActive+1),
		spare:      make([]Ring, 0, cfg.MinActive+1),
		spacing:    cfg.Spacing,
		minActive:  cfg.MinActive,
		outer:      cfg.OuterRadius,
		inner:      cfg.InnerRadius,
		award:      cfg.Award,
		width:      width,
		bandTop:    bottom - cfg.ReachHeight,
		bandBottom: bottom,
		rng:        rand.New(rand.NewSource(seed)),
		sound:      orSilent(sound),
	}
	rs.Spawn()
	return rs, nil
}

// Tail returns the rightmost active ring.
func (rs *RingStream) Tail() (Ring, bool) {
	if len(rs.rings) == 0 {
		return Ring{}, false
	}
	return rs.rings[len(rs.rings)-1], true
}

// needsRing reports whether the spawn invariant is violated.
func (rs *RingStream) needsRing() bool {
	if len(rs.rings) < rs.minActive {
		return true
	}
	tail, _ := rs.Tail()
	return tail.X < rs.width-rs.spacing
}

// Spawn appends rings until at least minActive are active and the tail is
// no more than one spacing short of the right edge. Returns how many were added.
func (rs *RingStream) Spawn() int {
	added := 0
	for rs.needsRing() {
		x := rs.width + rs.spacing
		if tail, ok := rs.Tail(); ok {
			x = tail.X + rs.spacing
		}
		rs.rings = append(rs.rings, Ring{
			X:     x,
			Y:     rs.sampleY(),
			Outer: rs.outer,
			Inner: rs.inner,
		})
		added++
	}
	return added
}

// sampleY draws a spawn height uniformly from the reachable band.
func (rs *RingStream) sampleY() float64 {
	y := rs.bandTop + rs.rng.Float64()*(rs.bandBottom-rs.bandTop)
	return core.ClampF(y, rs.bandTop, rs.bandBottom)
}

// Tick runs collision and scrolling for one tick, then recycles and refills
// the stream. Returns how many rings the actor collected.
func (rs *RingStream) Tick(actor *Actor, scroll float64, score *Score) int {
	center, radius := actor.Center(), actor.Radius()
	collected := 0

	// Phase 1: next state of every ring.
	next := rs.spare[:0]
	for _, r := range rs.rings {
		if r.Collected {
			continue
		}
		if r.Touches(center, radius) {
			r.Collected = true
			rs.sound.Emit(SoundCollect)
			score.Award(rs.award)
			collected++
		} else {
			r.X -= scroll
		}
		next = append(next, r)
	}

	// Phase 2: swap in the survivors.
	rs.spare = rs.rings[:0]
	rs.rings = retain(next)
	rs.Spawn()

	return collected
}

// retain filters collected and off-screen rings in place.
func retain(rings []Ring) []Ring {
	kept := rings[:0]
	for _, r := range rings {
		if r.Collected || r.offScreen() {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// Draw asks the surface to draw every active ring.
func (rs *RingStream) Draw(s Surface) {
	for _, r := range rs.rings {
		s.DrawRing(r.Center(), r.Outer, r.Inner)
	}
}

// Rings returns a copy of the active rings in ascending x.
func (rs *RingStream) Rings() []Ring {
	out := make([]Ring, len(rs.rings))
	copy(out, rs.rings)
	return out
}

// Len returns the number of active rings.
func (rs *RingStream) Len() int {
	return len(rs.rings)
}

// Band returns the spawn band as (top, bottom) y values.
func (rs *RingStream) Band() (top, bottom float64) {
	return rs.bandTop, rs.bandBottom
}
