package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows the game modes registered in flappy with their run counts and best scores.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// Stats are optional; the list works without a database.
	var stats map[string]storage.Stats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.AllStats()
		store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 4, 5 // "Mode", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %5s\n", maxIDLen, "Mode", maxTitleLen, "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-*s  %5s  %5s\n", maxIDLen, "----", maxTitleLen, "-----", "----", "----")

	for _, g := range games {
		runs, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			runs, best = s.Runs, s.Best
		}
		fmt.Printf("  %-*s  %-*s  %5d  %5d\n", maxIDLen, g.ID, maxTitleLen, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <mode>' to play.")
}
