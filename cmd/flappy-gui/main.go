// flappy-gui plays a flappy mode in a desktop window.
//
// Usage:
//
//	flappy-gui [mode]
//
// Click or press space to flap; in glide mode hold W/S. Q quits.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSeed       int64
	flagDBPath     string
	flagCookieDir  string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-gui [mode]",
	Short: "Flappy Bird in a window",
	Long: `Play a flappy mode (classic when omitted) in a desktop window.

Controls:
  Click/Space  - Flap (classic), start a run
  W/S, Up/Down - Move up/down while held (glide)
  P/Esc        - Pause
  R            - Restart (after game over)
  Q            - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagCookieDir, "cookie-dir", "~/.flappy/cookies", "Directory of best-score cookies")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log game events to stderr")
}

func run(_ *cobra.Command, args []string) error {
	mode := config.ModeClassic
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("%w %q", registry.ErrUnknownGame, mode)
	}
	if err := flappy.Configure(flagConfig, flagDifficulty, mode); err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "flappy-gui",
		})
	}
	flappy.SetLogger(logger)

	g, err := registry.Create(mode)
	if err != nil {
		return err
	}
	game, ok := g.(*flappy.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run in a window", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var open func(mode string) highscore.Store
	switch {
	case flagCookieDir != "":
		open = highscore.CookieStores(flagCookieDir)
	case store != nil:
		open = func(mode string) highscore.Store { return store.BestScores(mode) }
	}
	tracker := highscore.NewTrackers(open).For(mode)

	return gui.Run(game, core.RuntimeConfig{Seed: flagSeed}, gui.Options{
		Store:   store,
		Tracker: tracker,
		Logger:  logger,
	})
}
