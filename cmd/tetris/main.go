// tetris is a deterministic falling-block game engine with a CLI for
// running simulated games and inspecting recorded results.
//
// Usage:
//
//	tetris simulate          - Run simulated games driven by a random bot
//	tetris scores            - Show the top recorded scores
//	tetris sources           - List available piece randomizers
//	tetris levels            - Show the gravity table per level
//
// Global flags:
//
//	--config <path>      - Custom config YAML (default: ~/.tetris/config.yaml)
//	--db <path>          - Results database path (default: ~/.tetris/scores.db)
//	--log-level <level>  - Log verbosity: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-engine/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - deterministic falling-block engine",
	Long: `Tetris is a deterministic falling-block game engine. The CLI runs
simulated games against the engine, records their results, and inspects
the scoring and gravity rules.

Available commands:
  simulate - Run simulated games driven by a random bot
  scores   - View recorded high scores and play statistics
  sources  - List available piece randomizers
  levels   - Show the gravity interval per level

Examples:
  tetris simulate --games 10 --seed 42
  tetris simulate --source uniform --difficulty hard
  tetris scores --limit 5
  tetris levels`,
}

func init() {
	// Environment variables seed the flag defaults; flags win when both are set.
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		env = config.Env{DBPath: "~/.tetris/scores.db", LogLevel: "info"}
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(levelsCmd)
}
