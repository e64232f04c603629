package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Phase   string        // Game-defined phase name, e.g. "countdown"
	Elapsed time.Duration // Running stopwatch, frozen once cleared
	Cleared bool          // Whether the current round is finished
	Quit    bool          // Whether the game asked the platform to exit
}

// ClearEvent describes a finished round. It is reported exactly once, on
// the tick the round was cleared.
type ClearEvent struct {
	Seed         int64
	Width        int
	Height       int
	FakeWalls    int
	Moves        int
	OptimalMoves int
	Duration     time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Clear *ClearEvent // Non-nil only on the tick a round was cleared
}
