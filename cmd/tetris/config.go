package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml to
customize gravity, frame rate and key bindings.

Example:
  mkdir -p ~/.tetris/configs
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
