// Package flappy implements a Flappy Bird-style game.
// The player keeps a bird airborne with upward impulses and steers it through
// the gaps of scrolling pipe pairs. The package holds pure game logic; hosts
// provide timing, input and drawing.
package flappy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session state machine.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ErrMissingImage is returned by NewSession when an image handle is nil.
var ErrMissingImage = errors.New("flappy: missing image")

func missingImage(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingImage, name)
}

// Driver is a periodic schedule owned by the host. The session starts and
// stops its drivers in lockstep with its own state transitions; hosts never
// start or stop them directly.
type Driver interface {
	Start()
	Stop()
}

// nopDriver is used when the host does not supply a driver.
type nopDriver struct{}

func (nopDriver) Start() {}
func (nopDriver) Stop()  {}

// Option configures a Session.
type Option func(*Session)

// WithDrivers sets the simulation (tick) driver and the spawn driver.
func WithDrivers(tick, spawn Driver) Option {
	return func(s *Session) {
		s.tickDriver = tick
		s.spawnDriver = spawn
	}
}

// WithRand sets the random source used for pipe placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// OnGameOver registers a callback run once each time the session ends,
// after the high score has been updated.
func OnGameOver(fn func(core.GameState)) Option {
	return func(s *Session) {
		s.onGameOver = append(s.onGameOver, fn)
	}
}

// OnRestart registers a callback run after each restart.
func OnRestart(fn func(core.GameState)) Option {
	return func(s *Session) {
		s.onRestart = append(s.onRestart, fn)
	}
}

// Session owns all game state: the bird, the pipes, the score and the state
// machine. It must be driven from a single goroutine.
type Session struct {
	cfg     config.FlappyConfig
	images  Images
	rng     *rand.Rand
	spawner *Spawner

	bird      Bird
	velocityY int
	pipes     []Pipe
	score     float64
	highScore float64
	state     State

	tickDriver  Driver
	spawnDriver Driver
	onGameOver  []func(core.GameState)
	onRestart   []func(core.GameState)
}

// NewSession creates a session in the Playing state. Drivers are not started
// until Start is called.
func NewSession(cfg config.FlappyConfig, images Images, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if err := images.validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:         cfg,
		images:      images,
		tickDriver:  nopDriver{},
		spawnDriver: nopDriver{},
		bird: Bird{
			X:      cfg.BirdX(),
			Y:      cfg.BirdY(),
			Width:  cfg.Bird.Width,
			Height: cfg.Bird.Height,
		},
		pipes: make([]Pipe, 0, 16),
		state: StatePlaying,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s.spawner = NewSpawner(s.rng, cfg.Board.Width, cfg.Pipes.Width, cfg.Pipes.Height, cfg.OpeningSpace())

	return s, nil
}

// Start starts both drivers for the initial session.
func (s *Session) Start() {
	if s.state != StatePlaying {
		return
	}
	s.tickDriver.Start()
	s.spawnDriver.Start()
}

// Tick runs one simulation step. When the step ends the session, the
// GameOver transition is handled before Tick returns.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	if s.step() {
		s.enterGameOver()
	}
}

// SpawnPipes appends a new top/bottom pipe pair. Ignored once the session
// is over.
func (s *Session) SpawnPipes() {
	if s.state != StatePlaying {
		return
	}
	top, bottom := s.spawner.Spawn()
	s.pipes = append(s.pipes, top, bottom)
}

// Jump gives the bird an upward impulse, overriding its current velocity.
// Ignored once the session is over.
func (s *Session) Jump() {
	if s.state != StatePlaying {
		return
	}
	s.velocityY = s.cfg.Physics.JumpVelocity
}

// Restart begins a new session after game over, keeping the high score.
// Returns false if the session is still being played.
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}

	s.bird.Y = s.cfg.BirdY()
	s.velocityY = 0
	s.pipes = s.pipes[:0]
	s.score = 0
	s.state = StatePlaying

	s.tickDriver.Start()
	s.spawnDriver.Start()

	snap := s.Snapshot()
	for _, fn := range s.onRestart {
		fn(snap)
	}
	return true
}

// HandleAction maps a host action onto the session.
// Returns true if the action changed the session.
func (s *Session) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionJump:
		if s.state != StatePlaying {
			return false
		}
		s.Jump()
		return true
	case core.ActionRestart:
		return s.Restart()
	}
	return false
}

// enterGameOver performs the Playing -> GameOver side effects.
func (s *Session) enterGameOver() {
	s.state = StateGameOver
	if s.score > s.highScore {
		s.highScore = s.score
	}

	s.tickDriver.Stop()
	s.spawnDriver.Stop()

	snap := s.Snapshot()
	for _, fn := range s.onGameOver {
		fn(snap)
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// RestartAvailable reports whether the host should offer a restart.
func (s *Session) RestartAvailable() bool {
	return s.state == StateGameOver
}

// Score returns the current score. Each pipe is worth half a point, so a
// cleared gap is worth one.
func (s *Session) Score() float64 {
	return s.score
}

// HighScore returns the best score since the session was created.
func (s *Session) HighScore() float64 {
	return s.highScore
}

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird {
	return s.bird
}

// VelocityY returns the bird's vertical velocity (negative = up).
func (s *Session) VelocityY() int {
	return s.velocityY
}

// Pipes returns the live pipe collection, oldest first. Callers must not
// modify it.
func (s *Session) Pipes() []Pipe {
	return s.pipes
}

// Config returns the session's configuration.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Snapshot returns the host-facing state.
func (s *Session) Snapshot() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  s.state == StateGameOver,
	}
}
