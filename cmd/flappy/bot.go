package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagBotRuns     int
	flagBotMaxTicks int
	flagBotRecord   bool
)

var botCmd = &cobra.Command{
	Use:   "bot [mode]",
	Short: "Let the autopilot play without a screen",
	Long: `Run the game headless with the autopilot at the controls and log each
run. The game runs on its normal tick unless --tick is given.

Examples:
  flappy bot
  flappy bot glide --runs 5
  flappy bot --tick 1ms --max-ticks 20000 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBot,
}

func init() {
	botCmd.Flags().IntVar(&flagBotRuns, "runs", 1, "Number of runs to play")
	botCmd.Flags().IntVar(&flagBotMaxTicks, "max-ticks", 10000, "Stop a run after this many ticks (0 = no limit)")
	botCmd.Flags().BoolVar(&flagBotRecord, "record", false, "Save the runs to the score history")
}

func runBot(cmd *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	if err := applyModeFlags(mode); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-bot",
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	g, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := g.(*flappy.Game)
	if !ok {
		return fmt.Errorf("mode %q has no autopilot", mode)
	}

	var record func(score int)
	if flagBotRecord {
		store := openStore()
		if store != nil {
			defer store.Close()
			record = func(score int) {
				if _, err := store.AddRun(mode, score); err != nil {
					logger.Warn("could not save score", "error", err)
				}
			}
		}
	}

	best := 0
	for run := 1; run <= flagBotRuns; run++ {
		seed := flagSeed
		if seed != 0 {
			seed += int64(run - 1)
		}
		game.Reset(core.RuntimeConfig{Tick: flagTick, Seed: seed})

		st, err := playRun(ctx, game, flagBotMaxTicks)
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", "run", run, "score", st.Score)
			return nil
		}
		if err != nil {
			return err
		}

		best = max(best, st.Score)
		world := game.World()
		logger.Info("run finished",
			"mode", mode,
			"run", run,
			"score", st.Score,
			"ticks", world.Tick,
			"crashed", st.Over(),
		)
		if record != nil && st.Score > 0 {
			record(st.Score)
		}
	}

	logger.Info("done", "mode", mode, "runs", flagBotRuns, "best", best)
	return nil
}

// playRun starts a run and lets the autopilot fly it on the game's tick
// until it crashes or reaches maxTicks.
func playRun(ctx context.Context, game *flappy.Game, maxTicks int) (core.GameState, error) {
	pilot := flappy.NewAutopilot(game.Config())
	st := game.Handle(core.Press(core.ActionJump)).State

	interval := game.TickInterval()
	if interval <= 0 {
		interval = time.Millisecond
	}

	err := loop.Run(ctx, interval, func() bool {
		for _, ev := range pilot.Next(game.World()) {
			st = game.Handle(ev).State
		}
		if !st.Over() {
			st = game.Step().State
		}
		if st.Over() {
			return false
		}
		return maxTicks <= 0 || game.World().Tick < maxTicks
	})
	return st, err
}
