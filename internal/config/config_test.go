package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var embedded TripletsConfig
	if err := yaml.Unmarshal(defaultTripletsYAML, &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if embedded != DefaultTripletsConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultTripletsConfig %+v", embedded, DefaultTripletsConfig())
	}
}

func TestLoadTripletsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triplets.yaml")
	data := []byte("timing:\n  level_seconds: 42\nrules:\n  reward: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadTriplets(path)
	if err != nil {
		t.Fatalf("LoadTriplets failed: %v", err)
	}
	if cfg.Timing.LevelSeconds != 42 {
		t.Errorf("expected level_seconds 42, got %v", cfg.Timing.LevelSeconds)
	}
	// Unset keys keep defaults; invalid ones are repaired.
	if cfg.Timing.HintSeconds != 4 {
		t.Errorf("expected default hint_seconds 4, got %v", cfg.Timing.HintSeconds)
	}
	if cfg.Rules.Reward != 10 {
		t.Errorf("expected reward repaired to 10, got %d", cfg.Rules.Reward)
	}
}

func TestLoadTripletsCustomPathErrors(t *testing.T) {
	if _, err := LoadTriplets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadTriplets(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg != DefaultTripletsConfig() {
		t.Error("a parse error should still return usable defaults")
	}
}

func TestValidate(t *testing.T) {
	cfg := TripletsConfig{
		Timing: TimingConfig{LevelSeconds: -1, HintSeconds: -3},
		Rules:  RulesConfig{Reward: -5, UndoUnlockLevel: 0, ShuffleUnlockLevel: 7},
	}
	cfg.Validate()

	if cfg.Timing.LevelSeconds != 100 || cfg.Timing.HintSeconds != 4 {
		t.Errorf("timing not repaired: %+v", cfg.Timing)
	}
	if cfg.Rules.Reward != 10 || cfg.Rules.UndoUnlockLevel != 2 {
		t.Errorf("rules not repaired: %+v", cfg.Rules)
	}
	if cfg.Rules.ShuffleUnlockLevel != 7 {
		t.Errorf("valid value overwritten: %d", cfg.Rules.ShuffleUnlockLevel)
	}
	if cfg.Difficulty.TimeScale != 1 {
		t.Errorf("expected time scale 1, got %v", cfg.Difficulty.TimeScale)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestPresetLevelLimits(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   time.Duration
	}{
		{DifficultyEasy, 180 * time.Second},
		{DifficultyNormal, 100 * time.Second},
		{DifficultyHard, 60 * time.Second},
		{DifficultyFixed, 0},
	}

	for _, tt := range tests {
		cfg := DefaultTripletsConfig()
		ApplyTripletsPreset(&cfg, tt.preset)
		dm := NewDifficultyManager(cfg.Difficulty)

		if got := dm.LevelLimit(cfg.Timing.LevelSeconds, 1); got != tt.want {
			t.Errorf("%s: limit %v, expected %v", tt.preset, got, tt.want)
		}
		if dm.IsTimed() == IsFixedPreset(tt.preset) {
			t.Errorf("%s: IsTimed = %v", tt.preset, dm.IsTimed())
		}
	}
}

func TestLevelTicks(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Timed: true, TimeScale: 1, PerLevelSeconds: 5})

	if got := dm.LevelTicks(100, 1, 60); got != 6000 {
		t.Errorf("level 1: expected 6000 ticks, got %d", got)
	}
	if got := dm.LevelTicks(100, 3, 60); got != 6600 {
		t.Errorf("level 3: expected 6600 ticks, got %d", got)
	}
	if got := SecondsToTicks(2.01, 60); got != 121 {
		t.Errorf("expected ceil to 121 ticks, got %d", got)
	}
}
