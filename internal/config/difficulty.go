package config

import (
	"math"
	"time"
)

// DifficultyManager turns the difficulty settings into per-level clocks.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// IsTimed returns whether levels run against a clock.
func (d *DifficultyManager) IsTimed() bool {
	return d.cfg.Timed
}

// LevelLimit returns the time allowed for a level, or 0 when untimed.
func (d *DifficultyManager) LevelLimit(baseSeconds float64, level int) time.Duration {
	if !d.cfg.Timed {
		return 0
	}
	secs := baseSeconds * d.cfg.TimeScale
	if level > 1 {
		secs += float64(level-1) * d.cfg.PerLevelSeconds
	}
	return time.Duration(secs * float64(time.Second))
}

// LevelTicks converts LevelLimit into simulation ticks, rounding up.
func (d *DifficultyManager) LevelTicks(baseSeconds float64, level, tickRate int) int {
	return SecondsToTicks(d.LevelLimit(baseSeconds, level).Seconds(), tickRate)
}

// SecondsToTicks converts a duration in seconds to ticks, rounding up.
func SecondsToTicks(seconds float64, tickRate int) int {
	if seconds <= 0 || tickRate <= 0 {
		return 0
	}
	return int(math.Ceil(seconds * float64(tickRate)))
}
