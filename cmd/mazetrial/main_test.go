package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/maze-trial/internal/config"
	"github.com/vovakirdan/maze-trial/internal/games/mazetrial"
)

func TestApplyOverrides(t *testing.T) {
	base := config.DefaultMazeConfig()

	cfg := applyOverrides(base, overrides{})
	if cfg != base {
		t.Errorf("no overrides changed config: %+v", cfg)
	}

	cfg = applyOverrides(base, overrides{width: 21, widthSet: true, height: 0, mute: true})
	if cfg.Maze.Width != 21 || cfg.Maze.Height != base.Maze.Height {
		t.Errorf("size = %dx%d, want 21x%d", cfg.Maze.Width, cfg.Maze.Height, base.Maze.Height)
	}
	if cfg.Audio.Enabled {
		t.Error("mute did not disable audio")
	}

	// An explicit zero is passed through for Validate to reject.
	cfg = applyOverrides(base, overrides{height: 0, heightSet: true})
	if cfg.Maze.Height != 0 {
		t.Errorf("height = %d, want 0", cfg.Maze.Height)
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	if got := paramsFromConfig(cfg); got != mazetrial.DefaultParams() {
		t.Errorf("default config params = %+v, want %+v", got, mazetrial.DefaultParams())
	}

	cfg.Timing.HoldMoveInterval = 50 * time.Millisecond
	cfg.FakeWalls.Min = 2
	p := paramsFromConfig(cfg)
	if p.HoldMoveInterval != 50*time.Millisecond || p.FakeWallsMin != 2 {
		t.Errorf("params = %+v", p)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	if err := os.WriteFile(path, []byte("maze:\n  width: 25\n  height: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, overrides{height: 19, heightSet: true})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Maze.Width != 25 || cfg.Maze.Height != 19 {
		t.Errorf("size = %dx%d, want 25x19", cfg.Maze.Width, cfg.Maze.Height)
	}

	if _, err := loadConfig(path, overrides{width: 5, widthSet: true, height: 5, heightSet: true}); err == nil {
		t.Error("5x5 maze with 10 fake walls accepted")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("maze cleared", "moves", 12)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, "maze cleared") || !strings.Contains(out, "moves=12") {
		t.Errorf("log output = %q", out)
	}

	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Error("bad level accepted")
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)

	if !strings.Contains(out.String(), "maze") || !strings.Contains(out.String(), "Maze Time Trial") {
		t.Errorf("list output = %q", out.String())
	}
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	runConfig(configCmd, nil)

	for _, want := range []string{"maze:", "fake_walls:", "hold_move_interval"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config output missing %q:\n%s", want, out.String())
		}
	}
}
