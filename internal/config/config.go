// Package config provides YAML-based game configuration loading for the
// flappy game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Bird    BirdConfig    `yaml:"bird"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Physics PhysicsConfig `yaml:"physics"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the logical play field. All other sizes are in the
// same units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BirdConfig defines the bird hitbox. The bird starts at (width/8, height/2)
// of the board.
type BirdConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PipeConfig defines pipe geometry and scrolling.
type PipeConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	ScrollVelocity int `yaml:"scroll_velocity"` // Added to every pipe's x each tick (negative = left)
}

// PhysicsConfig defines the bird's vertical motion.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity"`       // Added to vertical velocity each tick
	JumpVelocity int `yaml:"jump_velocity"` // Velocity set on jump (negative = up)
}

// TimingConfig defines the two periodic drivers.
type TimingConfig struct {
	TickRate      int           `yaml:"tick_rate"`      // Simulation ticks per second
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between pipe pairs
}

// TickInterval returns the period of the simulation driver.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// MarshalYAML writes the spawn interval as a duration string ("1.5s"),
// the form the decoder accepts.
func (t TimingConfig) MarshalYAML() (any, error) {
	return struct {
		TickRate      int    `yaml:"tick_rate"`
		SpawnInterval string `yaml:"spawn_interval"`
	}{t.TickRate, t.SpawnInterval.String()}, nil
}

// BirdX returns the bird's fixed horizontal position.
func (c FlappyConfig) BirdX() int {
	return c.Board.Width / 8
}

// BirdY returns the bird's starting vertical position.
func (c FlappyConfig) BirdY() int {
	return c.Board.Height / 2
}

// OpeningSpace returns the vertical gap between a top and a bottom pipe.
func (c FlappyConfig) OpeningSpace() int {
	return c.Board.Height / 4
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Board.Width > 0 && c.Board.Height > 0, "board size must be positive"},
		{c.Bird.Width > 0 && c.Bird.Height > 0, "bird size must be positive"},
		{c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipe size must be positive"},
		{c.Pipes.ScrollVelocity < 0, "pipes.scroll_velocity must be negative"},
		{c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative"},
		{c.Physics.Gravity >= 0, "physics.gravity must not be negative"},
		{c.Timing.TickRate > 0, "timing.tick_rate must be positive"},
		{c.Timing.SpawnInterval > 0, "timing.spawn_interval must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}
