package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic ring placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Rings  int  // Rings collected so far
	Ticks  int  // Ticks simulated since the run started
	Paused bool // Whether the frame driver is stopped
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Collected is the number of rings picked up during this tick.
	Collected int
	// Jumped reports whether a jump was accepted this tick.
	Jumped bool
}
