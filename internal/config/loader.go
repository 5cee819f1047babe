package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a mode.
// Search order: customPath -> ~/.flappy/configs/<mode>.yaml -> ./configs/<mode>.yaml -> embedded default.
// Files are decoded over the mode's defaults, so a file only needs the keys it changes.
func Load(mode, customPath string) (FlappyConfig, error) {
	base, ok := DefaultConfig(mode)
	if !ok {
		return FlappyConfig{}, fmt.Errorf("config: unknown mode %q", mode)
	}
	filename := mode + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg, mode)
	}

	// Overrides that fail to parse are skipped, like a missing file.
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(base, data); err == nil {
				return finish(cfg, mode)
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(base, data); err == nil {
			return finish(cfg, mode)
		}
	}

	cfg, err := decode(base, GetDefaultYAML(mode))
	if err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, mode)
}

// LoadWithPreset loads a mode's configuration and applies a difficulty preset.
func LoadWithPreset(mode, customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	cfg, err := Load(mode, customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	return cfg, nil
}

func decode(base FlappyConfig, data []byte) (FlappyConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func finish(cfg FlappyConfig, mode string) (FlappyConfig, error) {
	cfg.Mode = mode
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
