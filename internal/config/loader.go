package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource names the built-in defaults as a config source.
const EmbeddedSource = "built-in defaults"

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
// Only an explicit customPath reports read, parse and validation errors; the
// implicit locations fall through to the next candidate.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, _, err := LoadFlappyWithSource(customPath)
	return cfg, err
}

// LoadFlappyWithSource is LoadFlappy that also reports which file won, or
// EmbeddedSource.
func LoadFlappyWithSource(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFlappy(data)
		if err != nil {
			return FlappyConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseFlappy(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), EmbeddedSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, nil
}

// ParseFlappy decodes YAML on top of the defaults and validates the result.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that every spawned gap fits in the playable area above the ground band.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height {
		errs = append(errs, fmt.Errorf("ground_height %g must be within [0, %g)", c.Field.GroundHeight, c.Field.Height))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Gap <= 0 {
		errs = append(errs, errors.New("obstacle width and gap must be positive"))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("obstacle speed must be positive, got %g", c.Obstacles.Speed))
	}
	if c.Obstacles.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("spawn_period must be positive, got %d", c.Obstacles.SpawnPeriod))
	}
	lo, hi := c.Obstacles.GapTopRange(c.Field.Height)
	if lo < 0 || hi <= lo {
		errs = append(errs, fmt.Errorf("gap top range [%g, %g) is empty or negative", lo, hi))
	}
	if c.Obstacles.GapBottomMargin < c.Field.GroundHeight {
		errs = append(errs, fmt.Errorf("gap_bottom_margin %g would let gaps reach into the ground band (%g)",
			c.Obstacles.GapBottomMargin, c.Field.GroundHeight))
	}
	if c.Player.Size <= 0 || c.Player.HitboxDivisor <= 0 {
		errs = append(errs, errors.New("player size and hitbox_divisor must be positive"))
	}
	if c.Player.X < 0 || c.Player.X > c.Field.Width {
		errs = append(errs, fmt.Errorf("player x %g is outside the field", c.Player.X))
	}
	if c.Player.StartY <= 0 || c.Player.StartY >= c.Field.GroundY() {
		errs = append(errs, fmt.Errorf("player start_y %g must be between the ceiling and the ground", c.Player.StartY))
	}
	return errors.Join(errs...)
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
