// Package config provides YAML-based game configuration loading and
// difficulty management for flappy.
package config

// FlappyConfig contains all tuning for the game.
type FlappyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield every other distance is relative to.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Height of the ground band at the bottom
}

// GroundY returns the top of the ground band.
func (f FieldConfig) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// PhysicsConfig defines the bird's vertical integrator.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity assigned on jump (negative = up)
}

// ObstacleConfig defines pipe geometry and cadence.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`
	Speed           float64 `yaml:"speed"`        // Leftward scroll per frame
	SpawnPeriod     int     `yaml:"spawn_period"` // Frames between spawns
	MinGapTop       float64 `yaml:"min_gap_top"`
	GapBottomMargin float64 `yaml:"gap_bottom_margin"` // Distance kept between gap bottom and field bottom
}

// GapTopRange returns the half-open range [lo, hi) gap tops are drawn from.
func (o ObstacleConfig) GapTopRange(fieldHeight float64) (lo, hi float64) {
	return o.MinGapTop, fieldHeight - o.Gap - o.GapBottomMargin
}

// PlayerConfig defines the bird's fixed column and size.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	StartY        float64 `yaml:"start_y"`
	Size          float64 `yaml:"size"`
	HitboxDivisor float64 `yaml:"hitbox_divisor"` // Vertical half-extent against pipes is Size/HitboxDivisor
}

// HalfSize returns the half-extent used against the field bounds and horizontally against pipes.
func (p PlayerConfig) HalfSize() float64 {
	return p.Size / 2
}

// PipeHalfHeight returns the vertical half-extent used against pipe gaps.
func (p PlayerConfig) PipeHalfHeight() float64 {
	return p.Size / p.HitboxDivisor
}

// DifficultyConfig defines the optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to pipe speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Frames removed from the spawn period at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty input keeps the config as loaded.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
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
