package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration: a 660x600 board
// ticked at 60 FPS with a new pipe pair every 1.5 seconds.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: BoardConfig{
			Width:  660,
			Height: 600,
		},
		Bird: BirdConfig{
			Width:  34,
			Height: 24,
		},
		Pipes: PipeConfig{
			Width:          64,
			Height:         512,
			ScrollVelocity: -4,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpVelocity: -9,
		},
		Timing: TimingConfig{
			TickRate:      60,
			SpawnInterval: 1500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
