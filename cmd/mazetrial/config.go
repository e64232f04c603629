package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-trial/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default maze config",
	Long: `Prints the built-in maze.yaml. Save it as ~/.mazetrial/configs/maze.yaml
or ./configs/maze.yaml and edit it to change the defaults.

Example:
  mazetrial config > ~/.mazetrial/configs/maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	//nolint:errcheck // Nothing useful to do if stdout is gone
	cmd.OutOrStdout().Write(config.DefaultYAML())
}
