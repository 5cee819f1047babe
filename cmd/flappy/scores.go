package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show scores for a mode",
	Long: `Display the top scores for the given mode (classic when omitted)
and the best score kept in the best-score cookie or database.

Examples:
  flappy scores
  flappy scores glide --limit 20
  flappy scores --recent
  flappy scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the top ones")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history and stored best of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		if flagCookieDir != "" {
			if c := highscore.CookieStores(flagCookieDir)(mode); c != nil {
				if err := c.Save(0); err != nil {
					return err
				}
			}
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	var scores []storage.Run
	if flagScoresRecent {
		scores, err = store.RecentRuns(mode, flagScoresLimit)
	} else {
		scores, err = store.TopRuns(mode, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
	}
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	best, bestErr := openTrackers(store).For(mode).Best()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		if bestErr == nil && best > 0 {
			fmt.Printf("Best: %d\n", best)
			return nil
		}
		fmt.Printf("Play 'flappy play %s' to set the first high score!\n", mode)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "#", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.PlayedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(mode); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.Runs, stats.Average)
	}
	if high, err := store.HighScore(mode); err == nil {
		best = max(best, high)
	}
	fmt.Printf("Best: %d\n", best)
	return nil
}
