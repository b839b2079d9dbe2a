package ringrun

import (
	"fmt"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
)

// World owns all simulation state of one run and drives it one tick at a time.
// It is not safe for concurrent use; input and ticks arrive on one goroutine.
type World struct {
	width  float64
	height float64
	stride float64

	landscape *Landscape
	actor     *Actor
	rings     *RingStream
	score     Score

	pendingJump bool
	running     bool
	ticks       int
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Jumped    bool
	Collected int
}

// ActorState is a read-only view of the actor.
type ActorState struct {
	Center      core.Point
	Radius      float64
	Velocity    float64
	Grounded    bool
	GroundLevel float64
}

// Snapshot is the per-frame state exposed to collaborators.
type Snapshot struct {
	Tick      int
	Phase     float64
	Baseline  float64
	Actor     ActorState
	Rings     []Ring
	Score     int
	Collected int
	Running   bool
}

// NewWorld builds a world for a surface of width x height units.
// The configuration is validated first; an invalid one never produces a world.
func NewWorld(cfg config.RunnerConfig, width, height float64, seed int64, sound SoundEmitter) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !core.Finite(width, height) || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %gx%g", config.ErrInvalid, width, height)
	}

	landscape, err := NewLandscape(cfg.Landscape, height, seed)
	if err != nil {
		return nil, err
	}

	ground := func(float64) float64 { return landscape.Baseline() }
	snap := 0.0
	if cfg.Ground.FollowTerrain {
		ground = landscape.HeightAt
		snap = cfg.Ground.Snap
	}

	actor, err := NewActor(cfg.Actor, ground, snap, sound)
	if err != nil {
		return nil, err
	}

	rings, err := NewRingStream(cfg.Rings, width, landscape.Baseline(), actor.Radius(), seed, sound)
	if err != nil {
		return nil, err
	}

	stride := cfg.Landscape.Stride
	if stride == 0 {
		stride = cfg.Surface.CellWidth
	}

	return &World{
		width:     width,
		height:    height,
		stride:    stride,
		landscape: landscape,
		actor:     actor,
		rings:     rings,
		running:   true,
	}, nil
}

// RequestJump queues a jump for the next tick. Several requests before a
// tick count as one.
func (w *World) RequestJump() {
	if w.running {
		w.pendingJump = true
	}
}

// Tick advances and draws one frame: landscape, actor, rings, score.
// A stopped world does nothing.
func (w *World) Tick(s Surface) TickResult {
	var res TickResult
	if !w.running {
		return res
	}
	w.ticks++

	s.Clear()

	w.landscape.Advance()
	w.landscape.Draw(s, w.width, w.height, w.stride)

	if w.pendingJump {
		res.Jumped = w.actor.Jump()
		w.pendingJump = false
	}
	w.actor.Integrate()
	w.actor.Draw(s)

	res.Collected = w.rings.Tick(w.actor, w.landscape.ScrollSpeed(), &w.score)
	w.rings.Draw(s)

	s.DrawScore(w.score.Points())
	return res
}

// Draw renders the current state without advancing it.
func (w *World) Draw(s Surface) {
	s.Clear()
	w.landscape.Draw(s, w.width, w.height, w.stride)
	w.actor.Draw(s)
	w.rings.Draw(s)
	s.DrawScore(w.score.Points())
}

// Start resumes ticking.
func (w *World) Start() {
	w.running = true
}

// Stop halts ticking and drops any queued jump.
func (w *World) Stop() {
	w.running = false
	w.pendingJump = false
}

// Running reports whether ticks advance the world.
func (w *World) Running() bool {
	return w.running
}

// Score returns the run's score.
func (w *World) Score() Score {
	return w.score
}

// Ticks returns how many ticks have been simulated.
func (w *World) Ticks() int {
	return w.ticks
}

// Actor returns the player character.
func (w *World) Actor() *Actor {
	return w.actor
}

// Landscape returns the terrain.
func (w *World) Landscape() *Landscape {
	return w.landscape
}

// RingStream returns the ring stream.
func (w *World) RingStream() *RingStream {
	return w.rings
}

// Size returns the surface size in world units.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Snapshot returns a copy of the current per-frame state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:     w.ticks,
		Phase:    w.landscape.Phase(),
		Baseline: w.landscape.Baseline(),
		Actor: ActorState{
			Center:      w.actor.Center(),
			Radius:      w.actor.Radius(),
			Velocity:    w.actor.Velocity(),
			Grounded:    w.actor.Grounded(),
			GroundLevel: w.actor.GroundLevel(),
		},
		Rings:     w.rings.Rings(),
		Score:     w.score.Points(),
		Collected: w.score.Rings(),
		Running:   w.running,
	}
}
