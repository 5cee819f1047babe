package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/glide.yaml
var defaultGlideYAML []byte

// Modes lists the shipped mode names in display order.
func Modes() []string {
	return []string{ModeClassic, ModeGlide}
}

// DefaultClassicConfig returns the built-in classic configuration.
func DefaultClassicConfig() FlappyConfig {
	return FlappyConfig{
		Mode: ModeClassic,
		Tick: 30 * time.Millisecond,
		Field: FieldConfig{
			Width:    400,
			Height:   800,
			TopLimit: -170,
		},
		Bird: BirdConfig{
			X:      50,
			StartY: 200,
			Size:   50,
		},
		Physics: PhysicsConfig{
			Gravity:     5,
			JumpImpulse: 100,
			PipeSpeed:   5,
		},
		Obstacles: ObstacleConfig{
			Width:     100,
			GapHeight: 220,
			MinGapY:   80,
			MaxGapY:   500,
			SpawnX:    400,
			Spacing:   330,
		},
		// Pipes keep a fixed step and gap; --difficulty opts in to scaling.
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				GapReduction:     40,
				SpacingReduction: 60,
			},
		},
	}
}

// DefaultGlideConfig returns the built-in glide configuration.
func DefaultGlideConfig() FlappyConfig {
	return FlappyConfig{
		Mode: ModeGlide,
		Tick: 24 * time.Millisecond,
		Field: FieldConfig{
			Width:  600,
			Height: 500,
		},
		Bird: BirdConfig{
			X:      100,
			StartY: 225,
			Size:   50,
		},
		Physics: PhysicsConfig{
			MoveStep:  10,
			Clamp:     true,
			PipeSpeed: 8,
		},
		Obstacles: ObstacleConfig{
			Width:     80,
			GapHeight: 180,
			MinGapY:   0,
			MaxGapY:   320,
			SpawnX:    600,
			Recycle:   true,
			Count:     1,
		},
		// Only the gap-position range grows with score; pipe speed and gap
		// height stay fixed.
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				RangeWidening: 0.6,
			},
		},
	}
}

// DefaultConfig returns the built-in configuration for a mode.
func DefaultConfig(mode string) (FlappyConfig, bool) {
	switch mode {
	case ModeClassic:
		return DefaultClassicConfig(), true
	case ModeGlide:
		return DefaultGlideConfig(), true
	default:
		return FlappyConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(mode string) []byte {
	switch mode {
	case ModeClassic:
		return defaultClassicYAML
	case ModeGlide:
		return defaultGlideYAML
	default:
		return nil
	}
}
