package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-engine/internal/sources"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available piece sources",
	Long:  `Shows every registered piece randomizer and what it does.`,
	Run:   runSources,
}

func runSources(cmd *cobra.Command, args []string) {
	infos := sources.List()

	if len(infos) == 0 {
		fmt.Println("No sources available.")
		return
	}

	fmt.Println("Available piece sources:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range infos {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	// Print sources
	for _, s := range infos {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tetris simulate --source <name>' to use one.")
}
