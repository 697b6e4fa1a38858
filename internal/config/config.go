// Package config provides YAML-based game configuration loading and
// difficulty management for Triplets.
package config

// TripletsConfig contains all tunable parameters of the game.
type TripletsConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the level clock and overlay durations, in seconds.
type TimingConfig struct {
	LevelSeconds          float64 `yaml:"level_seconds"`
	VictoryOverlaySeconds float64 `yaml:"victory_overlay_seconds"`
	TimeoutOverlaySeconds float64 `yaml:"timeout_overlay_seconds"`
	HintSeconds           float64 `yaml:"hint_seconds"`
}

// RulesConfig defines scoring and when the helper actions become available.
type RulesConfig struct {
	Reward             int `yaml:"reward"`               // Score per eliminated triple
	UndoUnlockLevel    int `yaml:"undo_unlock_level"`    // First level with Undo
	ShuffleUnlockLevel int `yaml:"shuffle_unlock_level"` // First level with Shuffle
}

// DifficultyConfig scales the level clock.
type DifficultyConfig struct {
	Timed           bool    `yaml:"timed"`             // false disables the level clock
	TimeScale       float64 `yaml:"time_scale"`        // Multiplier applied to level_seconds
	PerLevelSeconds float64 `yaml:"per_level_seconds"` // Extra seconds granted per level above 1
}

// Validate replaces values that would make the game unplayable with defaults.
func (c *TripletsConfig) Validate() {
	def := DefaultTripletsConfig()

	if c.Timing.LevelSeconds <= 0 {
		c.Timing.LevelSeconds = def.Timing.LevelSeconds
	}
	if c.Timing.VictoryOverlaySeconds < 0 {
		c.Timing.VictoryOverlaySeconds = def.Timing.VictoryOverlaySeconds
	}
	if c.Timing.TimeoutOverlaySeconds < 0 {
		c.Timing.TimeoutOverlaySeconds = def.Timing.TimeoutOverlaySeconds
	}
	if c.Timing.HintSeconds < 0 {
		c.Timing.HintSeconds = def.Timing.HintSeconds
	}
	if c.Rules.Reward <= 0 {
		c.Rules.Reward = def.Rules.Reward
	}
	if c.Rules.UndoUnlockLevel < 1 {
		c.Rules.UndoUnlockLevel = def.Rules.UndoUnlockLevel
	}
	if c.Rules.ShuffleUnlockLevel < 1 {
		c.Rules.ShuffleUnlockLevel = def.Rules.ShuffleUnlockLevel
	}
	if c.Difficulty.TimeScale <= 0 {
		c.Difficulty.TimeScale = 1
	}
	if c.Difficulty.PerLevelSeconds < 0 {
		c.Difficulty.PerLevelSeconds = 0
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// TimeScaleForPreset returns the level clock multiplier for a preset.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.8
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables the level clock.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
