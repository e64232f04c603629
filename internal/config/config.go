// Package config provides YAML-based configuration loading and validation
// for the maze time trial.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze-trial/internal/maze"
)

// MazeConfig contains all configuration for the maze time trial.
type MazeConfig struct {
	Maze      MazeSize        `yaml:"maze"`
	FakeWalls FakeWallsConfig `yaml:"fake_walls"`
	Timing    TimingConfig    `yaml:"timing"`
	Audio     AudioConfig     `yaml:"audio"`
}

// MazeSize defines the grid dimensions in cells, border included.
type MazeSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FakeWallsConfig bounds how many passable walls are hidden per maze.
type FakeWallsConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingConfig defines the countdown and held-key repeat rate.
type TimingConfig struct {
	Countdown        time.Duration `yaml:"countdown"`
	HoldMoveInterval time.Duration `yaml:"hold_move_interval"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// ValidationError reports a configuration value that cannot produce a
// playable maze.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration can always build a session.
//
// A perfect maze on a w×h grid has 2*nodes-1 road cells; start and goal are never fake walls, so the grid has
// to leave at least fake_walls.max other road cells.
func (c MazeConfig) Validate() error {
	if c.Maze.Width < 5 {
		return ValidationError{Field: "maze.width", Message: fmt.Sprintf("must be at least 5, got %d", c.Maze.Width)}
	}
	if c.Maze.Height < 5 {
		return ValidationError{Field: "maze.height", Message: fmt.Sprintf("must be at least 5, got %d", c.Maze.Height)}
	}
	if c.FakeWalls.Min < 0 {
		return ValidationError{Field: "fake_walls.min", Message: fmt.Sprintf("must not be negative, got %d", c.FakeWalls.Min)}
	}
	if c.FakeWalls.Max < c.FakeWalls.Min {
		return ValidationError{
			Field:   "fake_walls.max",
			Message: fmt.Sprintf("must be at least fake_walls.min (%d), got %d", c.FakeWalls.Min, c.FakeWalls.Max),
		}
	}

	candidates := 2*maze.NodeCount(c.Maze.Width, c.Maze.Height) - 1 - 2
	if candidates < c.FakeWalls.Max {
		return ValidationError{
			Field: "fake_walls.max",
			Message: fmt.Sprintf("a %dx%d maze has only %d candidate cells, need %d",
				c.Maze.Width, c.Maze.Height, candidates, c.FakeWalls.Max),
		}
	}

	if c.Timing.Countdown < 0 {
		return ValidationError{Field: "timing.countdown", Message: "must not be negative"}
	}
	if c.Timing.HoldMoveInterval <= 0 {
		return ValidationError{Field: "timing.hold_move_interval", Message: "must be positive"}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return ValidationError{Field: "audio.volume", Message: fmt.Sprintf("must be within [0, 1], got %g", c.Audio.Volume)}
	}
	return nil
}
