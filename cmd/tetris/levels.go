package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-engine/internal/config"
)

var flagMaxLevel int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the gravity table per level",
	Long: `Print the gravity interval and the cleared-line requirement for each
level under the current config. Useful for checking how a tuning change
plays out before running games with it.

Examples:
  tetris levels
  tetris levels --max 20
  tetris levels --config ./my-tetris.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagMaxLevel, "max", 15, "Highest level to show")
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	maxLevel := flagMaxLevel
	if maxLevel < 1 {
		maxLevel = 15
	}

	rules := cfg.Rules()

	fmt.Printf("  %-5s  %-6s  %s\n", "Level", "Lines", "Gravity")
	fmt.Printf("  %-5s  %-6s  %s\n", "-----", "-----", "-------")

	for lvl := 1; lvl <= maxLevel; lvl++ {
		lines := fmt.Sprintf("%d+", (lvl-1)*rules.LinesPerLevel)
		interval := rules.DropSpeed(lvl)
		mark := ""
		if interval == rules.MinDropSpeed {
			mark = "  (min)"
		}
		fmt.Printf("  %-5d  %-6s  %v%s\n", lvl, lines, interval, mark)
	}
}
