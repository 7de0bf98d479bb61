package core

// RuntimeConfig contains host-side settings passed to the game at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts)
	ScreenH  int   // Screen height in characters (terminal hosts)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for pipe placement, 0 = time based
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

// GameState is a read-only snapshot of a session, handed to hosts for
// logging and score keeping.
type GameState struct {
	Score     float64 // Current score, in half-point units
	HighScore float64 // Best score since the process (or connection) started
	GameOver  bool    // Whether the session has ended
}
