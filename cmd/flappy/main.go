// flappy is a Flappy Bird game for the terminal.
//
// Usage:
//
//	flappy list              - List game modes
//	flappy play [mode]       - Play a mode (default: classic)
//	flappy menu              - Pick modes from a menu
//	flappy serve             - Start SSH server for remote play
//	flappy scores [mode]     - Show score history and best score
//	flappy bot [mode]        - Let the autopilot play headless
//
// Global flags:
//
//	--tick <duration>     - Override the mode's tick (e.g. 20ms)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--cookie-dir <path>   - Where best-score cookies live (default: ~/.flappy/cookies)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Register the flappy modes
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagTick       time.Duration
	flagSeed       int64
	flagDBPath     string
	flagCookieDir  string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal. Fly the bird through the gaps between
the pipes; touching a pipe or leaving the field ends the run.

Modes:
  classic  - Flap against gravity with space or a mouse click
  glide    - Hold W/S to move up and down, one pipe at a time

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View score history
  bot      - Watch the autopilot play in the log

Examples:
  flappy play
  flappy play glide --difficulty hard
  flappy menu
  flappy serve --ssh :2222
  flappy scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Simulation tick (0 = mode default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagCookieDir, "cookie-dir", "~/.flappy/cookies", "Directory of best-score cookies (empty = keep the best in the database)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(botCmd)
}
