// Package config provides YAML-based game configuration loading and
// validation for the runner.
package config

// RunnerConfig contains all tunables for the runner. Lengths are in world
// units (one unit is one pixel of the notional canvas), velocities in units
// per tick and accelerations in units per tick squared.
type RunnerConfig struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	Actor     ActorConfig     `yaml:"actor"`
	Landscape LandscapeConfig `yaml:"landscape"`
	Ground    GroundConfig    `yaml:"ground"`
	Rings     RingConfig      `yaml:"rings"`
	Sound     SoundConfig     `yaml:"sound"`
}

// SurfaceConfig maps world units onto terminal cells.
// The world is ScreenW*CellWidth units wide and ScreenH*CellHeight units tall.
type SurfaceConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// ActorConfig defines the player character.
type ActorConfig struct {
	X           float64 `yaml:"x"`            // fixed horizontal centre
	Radius      float64 `yaml:"radius"`       // body radius
	Gravity     float64 `yaml:"gravity"`      // positive, Y grows downward
	JumpImpulse float64 `yaml:"jump_impulse"` // negative, applied on an accepted jump
}

// LandscapeConfig defines the scrolling terrain.
type LandscapeConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"` // radians per unit
	Speed     float64 `yaml:"speed"`     // phase radians per tick
	Stride    float64 `yaml:"stride"`    // sampling step for the silhouette, 0 = one cell
	// Detail adds simplex noise of this amplitude on top of the sinusoid.
	// Zero keeps the pure sinusoid.
	Detail      float64 `yaml:"detail"`
	DetailScale float64 `yaml:"detail_scale"` // noise wavelength in units
}

// GroundConfig decides what the actor stands on.
type GroundConfig struct {
	// FollowTerrain makes the resting line track HeightAt(actor.x) instead
	// of the flat baseline.
	FollowTerrain bool `yaml:"follow_terrain"`
	// Snap is how far a grounded actor may drop in one tick and still be
	// pulled back onto a falling surface. Only used with FollowTerrain.
	Snap float64 `yaml:"snap"`
}

// RingConfig defines the ring stream.
type RingConfig struct {
	Spacing     float64 `yaml:"spacing"`
	MinActive   int     `yaml:"min_active"`
	OuterRadius float64 `yaml:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius"` // 0 = solid ring, no hollow centre
	Award       int     `yaml:"award"`
	ReachHeight float64 `yaml:"reach_height"` // height of the spawn band
}

// SoundConfig defines the audio cues.
type SoundConfig struct {
	Enabled bool       `yaml:"enabled"`
	Volume  float64    `yaml:"volume"` // master volume, 0..1
	Jump    ToneConfig `yaml:"jump"`
	Collect ToneConfig `yaml:"collect"`
}

// ToneConfig describes one synthesised cue.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency"` // Hz
	Overtone  float64 `yaml:"overtone"`  // relative level of the octave above, 0..1
	Decay     float64 `yaml:"decay"`     // seconds to reach silence
	Wave      string  `yaml:"wave"`      // sine, square, triangle
}
