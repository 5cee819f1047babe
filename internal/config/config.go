// Package config provides YAML-based game configuration loading and
// difficulty management for the flappy modes.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Mode names shipped with the game.
const (
	ModeClassic = "classic"
	ModeGlide   = "glide"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for one game mode.
// Distances are world units (pixels); speeds are per tick.
type FlappyConfig struct {
	Mode       string           `yaml:"mode"`
	Tick       time.Duration    `yaml:"tick"`
	Field      FieldConfig      `yaml:"field"`
	Bird       BirdConfig       `yaml:"bird"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield. A bird whose top is above TopLimit or
// whose bottom is below Height is out of bounds.
type FieldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TopLimit int `yaml:"top_limit"`
}

// BirdConfig defines the bird's fixed column and hitbox.
type BirdConfig struct {
	X      int `yaml:"x"`
	StartY int `yaml:"start_y"`
	Size   int `yaml:"size"`
}

// PhysicsConfig defines vertical and horizontal movement.
type PhysicsConfig struct {
	Gravity     int     `yaml:"gravity"`      // Downward step per tick
	JumpImpulse int     `yaml:"jump_impulse"` // Upward step per jump, 0 disables jumping
	MoveStep    int     `yaml:"move_step"`    // Step per tick while up/down is held, 0 disables
	Clamp       bool    `yaml:"clamp"`        // Clamp held movement to the field walls
	PipeSpeed   float64 `yaml:"pipe_speed"`   // Leftward obstacle step per tick
}

// ObstacleConfig defines obstacle size, gap placement and lifecycle.
type ObstacleConfig struct {
	Width     int  `yaml:"width"`
	GapHeight int  `yaml:"gap_height"`
	MinGapY   int  `yaml:"min_gap_y"` // Smallest y of the gap's top edge
	MaxGapY   int  `yaml:"max_gap_y"` // Largest y of the gap's top edge
	SpawnX    int  `yaml:"spawn_x"`   // Where new or recycled obstacles appear
	Spacing   int  `yaml:"spacing"`   // Horizontal distance between obstacles
	Recycle   bool `yaml:"recycle"`   // Reuse a fixed set of obstacles instead of streaming
	Count     int  `yaml:"count"`     // Obstacles in the recycled set
}

// HoldToMove reports whether the mode is driven by held up/down input.
func (c FlappyConfig) HoldToMove() bool {
	return c.Physics.MoveStep > 0
}

// Validate checks the configuration for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if c.Tick <= 0 {
		fail("tick must be positive, got %s", c.Tick)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		fail("field must have positive size, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if c.Field.TopLimit > 0 {
		fail("field.top_limit must not be below the field top, got %d", c.Field.TopLimit)
	}
	if c.Bird.Size <= 0 {
		fail("bird.size must be positive, got %d", c.Bird.Size)
	}
	if c.Physics.PipeSpeed <= 0 {
		fail("physics.pipe_speed must be positive, got %v", c.Physics.PipeSpeed)
	}
	if c.Physics.Gravity < 0 || c.Physics.JumpImpulse < 0 || c.Physics.MoveStep < 0 {
		fail("physics steps must not be negative")
	}
	if c.Physics.JumpImpulse == 0 && c.Physics.MoveStep == 0 {
		fail("one of physics.jump_impulse or physics.move_step must be set")
	}
	o := c.Obstacles
	if o.Width <= 0 {
		fail("obstacles.width must be positive, got %d", o.Width)
	}
	if o.GapHeight <= c.Bird.Size {
		fail("obstacles.gap_height %d leaves no room for a bird of size %d", o.GapHeight, c.Bird.Size)
	}
	if o.MinGapY > o.MaxGapY {
		fail("obstacles.min_gap_y %d is above max_gap_y %d", o.MinGapY, o.MaxGapY)
	}
	if o.MinGapY < 0 || o.MaxGapY+o.GapHeight > c.Field.Height {
		fail("obstacle gap range [%d, %d] does not fit the field", o.MinGapY, o.MaxGapY+o.GapHeight)
	}
	if o.Recycle && o.Count < 1 {
		fail("obstacles.count must be at least 1 when recycling, got %d", o.Count)
	}
	if o.Spacing <= 0 && (!o.Recycle || o.Count > 1) {
		fail("obstacles.spacing must be positive, got %d", o.Spacing)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to pipe speed multiplier at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap height reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
	RangeWidening    float64 `yaml:"range_widening"`    // Share of the gap draw range withheld at level 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
