// tetris is a terminal Tetris game.
//
// Usage:
//
//	tetris                   - Play a game (same as "tetris play")
//	tetris play              - Play a game
//	tetris scores            - Show recorded games
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible piece order
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
//	--player <name> - Name recorded with scores (default: $USER)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris game on a 10x20 board.

Available commands:
  play     - Play a game (default)
  scores   - View recorded games
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris scores --tui
  tetris serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name recorded with scores")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
