package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-engine/internal/storage"
)

var flagLimit int

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Display the top recorded scores and overall play statistics.

Examples:
  tetris scores
  tetris scores --limit 5`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "How many results to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("High Scores"))
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tetris simulate' to record the first one.")
		return
	}

	// Print header
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-9s  %s",
		"Rank", "Score", "Level", "Lines", "Pieces", "Duration", "Date")))

	// Print results
	for i, r := range results {
		line := fmt.Sprintf("  %-4d  %-8d  %-5d  %-5d  %-6d  %-9s  %s",
			i+1, r.Score, r.Level, r.Lines, r.Pieces,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
		if i == 0 {
			line = bestStyle.Render(line)
		}
		fmt.Println(line)
	}

	// Show high score
	fmt.Println()
	if hs, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", hs)
	}

	// Overall statistics
	stats, err := store.Stats()
	if err == nil && stats.Games > 0 {
		fmt.Printf("Games played: %d   Average score: %.0f   Total lines: %d\n",
			stats.Games, stats.AvgScore, stats.TotalLines)
	}
}
