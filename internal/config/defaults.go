package config

import (
	_ "embed"
)

//go:embed defaults/triplets.yaml
var defaultTripletsYAML []byte

// DefaultTripletsConfig returns the built-in configuration.
func DefaultTripletsConfig() TripletsConfig {
	return TripletsConfig{
		Timing: TimingConfig{
			LevelSeconds:          100,
			VictoryOverlaySeconds: 3,
			TimeoutOverlaySeconds: 3,
			HintSeconds:           4,
		},
		Rules: RulesConfig{
			Reward:             10,
			UndoUnlockLevel:    2,
			ShuffleUnlockLevel: 3,
		},
		Difficulty: DifficultyConfig{
			Timed:           true,
			TimeScale:       1.0,
			PerLevelSeconds: 0,
		},
	}
}
