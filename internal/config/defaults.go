package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Actor: ActorConfig{
			X:           50,
			Radius:      20,
			Gravity:     0.8,
			JumpImpulse: -18, // about one second of airtime at 60 ticks/s
		},
		Landscape: LandscapeConfig{
			Amplitude:   20,
			Frequency:   0.05,
			Speed:       0.1, // 2 units/tick of horizontal scroll
			Stride:      0,
			Detail:      0,
			DetailScale: 120,
		},
		Ground: GroundConfig{
			FollowTerrain: false,
			Snap:          4,
		},
		Rings: RingConfig{
			Spacing:     300,
			MinActive:   5,
			OuterRadius: 10,
			InnerRadius: 0,
			Award:       10,
			ReachHeight: 150,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
			Jump: ToneConfig{
				Frequency: 440,
				Decay:     0.4,
				Wave:      "sine",
			},
			Collect: ToneConfig{
				Frequency: 523.25,
				Overtone:  0.3,
				Decay:     1.0,
				Wave:      "sine",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
