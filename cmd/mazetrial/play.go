package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-trial/internal/audio"
	"github.com/vovakirdan/maze-trial/internal/config"
	"github.com/vovakirdan/maze-trial/internal/core"
	"github.com/vovakirdan/maze-trial/internal/games/mazetrial"
	"github.com/vovakirdan/maze-trial/internal/platform/tui"
	"github.com/vovakirdan/maze-trial/internal/registry"
	"github.com/vovakirdan/maze-trial/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze time trial",
	Long: `Start a maze time trial.

A countdown runs first; the stopwatch starts when the maze appears.

Controls:
  Arrows/WASD/HJKL - Move (hold to keep walking)
  R                - Next maze (after a clear)
  Q                - Quit (after a clear)
  Ctrl+C           - Quit at any time

Examples:
  mazetrial play
  mazetrial play --seed 42
  mazetrial play --width 41 --height 41`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// overrides are the command line values that replace config file values.
type overrides struct {
	width     int
	widthSet  bool
	height    int
	heightSet bool
	mute      bool
}

func applyOverrides(cfg config.MazeConfig, o overrides) config.MazeConfig {
	if o.widthSet {
		cfg.Maze.Width = o.width
	}
	if o.heightSet {
		cfg.Maze.Height = o.height
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	return cfg
}

// paramsFromConfig converts a validated config to session params.
func paramsFromConfig(cfg config.MazeConfig) mazetrial.Params {
	return mazetrial.Params{
		Width:            cfg.Maze.Width,
		Height:           cfg.Maze.Height,
		FakeWallsMin:     cfg.FakeWalls.Min,
		FakeWallsMax:     cfg.FakeWalls.Max,
		Countdown:        cfg.Timing.Countdown,
		HoldMoveInterval: cfg.Timing.HoldMoveInterval,
	}
}

// loadConfig loads the maze config, applies flag overrides and validates.
func loadConfig(path string, o overrides) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(path)
	if err != nil {
		return cfg, err
	}
	cfg = applyOverrides(cfg, o)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the logger used while the game owns the terminal.
// Output is buffered and written to stderr after the alt screen closes.
func newLogger(buf *bytes.Buffer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(buf, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazetrial",
		Level:           lvl,
	})
	return logger, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	var logBuf bytes.Buffer
	logger, err := newLogger(&logBuf, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	cfg, err := loadConfig(flagConfig, overrides{
		width:     flagWidth,
		widthSet:  flags.Changed("width"),
		height:    flagHeight,
		heightSet: flags.Changed("height"),
		mute:      flagMute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mazetrial.SetParams(paramsFromConfig(cfg))

	game, err := registry.Create(mazetrial.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
			sound = nil
		} else if v, ok := game.(registry.Voiced); ok {
			v.SetAudio(sound)
		}
	}

	// Per-process run log
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Debug("starting", "maze", fmt.Sprintf("%dx%d", cfg.Maze.Width, cfg.Maze.Height),
		"fake_walls", fmt.Sprintf("%d-%d", cfg.FakeWalls.Min, cfg.FakeWalls.Max),
		"audio", sound != nil)

	runErr := tui.Run(game, rcfg, tui.Options{Store: store, Logger: logger})

	if mg, ok := game.(*mazetrial.Game); ok {
		snap := mg.Snapshot()
		logger.Debug("game ended", "rounds", snap.Round, "clears", snap.Clears,
			"ticks", snap.Tick, "best", snap.Best, "state", snap.State)
	}

	if sound != nil {
		sound.Cleanup()
	}
	//nolint:errcheck // Best-effort log flush
	os.Stderr.Write(logBuf.Bytes())

	if store != nil {
		summary, err := tui.RunSummary(store, game.ID())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not build run summary: %v\n", err)
		} else if summary != "" {
			fmt.Fprint(cmd.OutOrStdout(), summary)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
