package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const tripletsFile = "triplets.yaml"

// LoadTriplets loads the game configuration.
// Search order: customPath -> ~/.triplets/configs/triplets.yaml ->
// ./configs/triplets.yaml -> embedded default -> hard-coded default.
// Only a bad customPath is reported as an error; the result is validated.
func LoadTriplets(customPath string) (TripletsConfig, error) {
	cfg := DefaultTripletsConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultTripletsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(tripletsFile), filepath.Join("configs", tripletsFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := loadFile(path); ok {
			return loaded, nil
		}
	}

	var embedded TripletsConfig
	if err := yaml.Unmarshal(defaultTripletsYAML, &embedded); err != nil {
		return DefaultTripletsConfig(), nil
	}
	embedded.Validate()
	return embedded, nil
}

// loadFile overlays the file at path on the defaults; unreadable or
// malformed files are skipped.
func loadFile(path string) (TripletsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TripletsConfig{}, false
	}
	cfg := DefaultTripletsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TripletsConfig{}, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".triplets", "configs", filename)
}

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyTripletsPreset modifies the config based on a difficulty preset.
func ApplyTripletsPreset(cfg *TripletsConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Timed = false
		return
	}
	cfg.Difficulty.Timed = true
	cfg.Difficulty.TimeScale = TimeScaleForPreset(preset)
}
