// mazetrial is a maze time trial for the terminal: reach the far end of a
// random maze as fast as you can. Some walls are fake and only show their
// true face when you stand next to them.
//
// Usage:
//
//	mazetrial                - Play (same as "mazetrial play")
//	mazetrial play           - Play
//	mazetrial list           - List available games
//	mazetrial config         - Print the default maze.yaml
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--config <path>      - Use a custom maze.yaml
//	--width, --height    - Override the maze size
//	--mute               - Disable sound
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/maze-trial/internal/games/mazetrial"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazetrial",
	Short: "Maze Time Trial - race through random mazes in your terminal",
	Long: `Maze Time Trial drops you at the top-left corner of a random maze.
The goal is the cell farthest from the start. Some walls are fake: they
look solid until you stand right next to them, and you can walk through them.

Available commands:
  play     - Play (default)
  list     - Show all available games
  config   - Print the default maze.yaml

Examples:
  mazetrial
  mazetrial play --seed 42
  mazetrial --width 21 --height 15 --mute
  mazetrial --config ./maze.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Maze width in cells, border included (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Maze height in cells, border included (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(playCmd)
}
