package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Maze: MazeSize{
			Width:  32,
			Height: 30,
		},
		FakeWalls: FakeWallsConfig{
			Min: 5,
			Max: 10,
		},
		Timing: TimingConfig{
			Countdown:        3 * time.Second,
			HoldMoveInterval: 80 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
