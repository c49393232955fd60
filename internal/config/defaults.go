package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning, identical to the embedded YAML.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:        600,
			Height:       500,
			GroundHeight: 80,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -9,
		},
		Obstacles: ObstacleConfig{
			Width:           80,
			Gap:             180,
			Speed:           3,
			SpawnPeriod:     100,
			MinGapTop:       80,
			GapBottomMargin: 160,
		},
		Player: PlayerConfig{
			X:             100,
			StartY:        250,
			Size:          40,
			HitboxDivisor: 2.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  40,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
