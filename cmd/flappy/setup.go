package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// modeArg returns the mode named on the command line, or classic.
func modeArg(args []string) (string, error) {
	mode := config.ModeClassic
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("%w %q (run 'flappy list' to see the modes)", registry.ErrUnknownGame, mode)
	}
	return mode, nil
}

// applyModeFlags hands --config and --difficulty to the flappy package and
// fails when either is unusable for modes (all modes when none are given).
// They apply to every game created afterwards.
func applyModeFlags(modes ...string) error {
	return flappy.Configure(flagConfig, flagDifficulty, modes...)
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Tick = flagTick
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openTrackers picks where best scores live: cookie files when
// --cookie-dir is set, the database otherwise.
func openTrackers(store *storage.Store) *highscore.Trackers {
	if flagCookieDir != "" {
		return highscore.NewTrackers(highscore.CookieStores(flagCookieDir))
	}
	if store == nil {
		return highscore.NewTrackers(nil)
	}
	return highscore.NewTrackers(func(mode string) highscore.Store {
		return store.BestScores(mode)
	})
}

// newLogger returns a debug logger writing to --log-file, or a discarding
// one, and a func that closes the file. The TUI owns stdout, so logs never
// go there.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path := flagLogFile
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "flappy",
	})
	return logger, func() { _ = f.Close() }, nil
}
