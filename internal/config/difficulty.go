package config

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DifficultyManager maps progress in a run (score or ticks) onto a level in
// [0, 1] and scales the obstacle parameters with it.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level rises linearly from InitialLevel to 1 as score or ticks reach
// Progression.MaxAt.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}

	var done int
	switch d.cfg.Progression.Type {
	case "score":
		done = score
	case "time":
		done = ticks
	default:
		return d.base
	}
	progress := core.ClampF(float64(done)/float64(max(d.cfg.Progression.MaxAt, 1)), 0, 1)
	return d.base + progress*(1-d.base)
}

// shrink takes level*by off base, stopping at floor.
func (d *DifficultyManager) shrink(base, floor, by, score, ticks int) int {
	return max(base-int(d.Level(score, ticks)*float64(by)), floor)
}

// Speed is the pipe speed in units per tick, at least 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) int {
	factor := 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
	return max(int(baseSpeed*factor), 1)
}

// GapHeight is the opening height, at least floor.
func (d *DifficultyManager) GapHeight(baseGap, floor int, score int, ticks int) int {
	return d.shrink(baseGap, floor, d.cfg.Scaling.GapReduction, score, ticks)
}

// Spacing is the distance between spawned obstacles, at least floor.
func (d *DifficultyManager) Spacing(baseSpacing, floor int, score int, ticks int) int {
	return d.shrink(baseSpacing, floor, d.cfg.Scaling.SpacingReduction, score, ticks)
}

// GapRange is the inclusive range a new gap's top edge is drawn from. With
// RangeWidening w the range starts at (1-w) of [minY, maxY] around its
// middle and grows to all of it at level 1.
func (d *DifficultyManager) GapRange(minY, maxY int, score int, ticks int) (lo, hi int) {
	w := core.ClampF(d.cfg.Scaling.RangeWidening, 0, 1)
	if w == 0 || maxY <= minY {
		return minY, maxY
	}
	full := maxY - minY
	span := int(math.Round(float64(full) * (1 - w*(1-d.Level(score, ticks)))))
	lo = minY + (full-span)/2
	return lo, lo + span
}
