package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names probed in each search directory, in order.
var configNames = []string{"crossroad.yaml", "crossroad.yml", "crossroad.toml"}

// Fallback is a config file on the search path that was found but could
// not be used. The loader moves on to the next candidate.
type Fallback struct {
	Path string
	Err  error
}

// LoadCrossroad loads Crossroad configuration.
// Search order: customPath -> ~/.arcade/configs/crossroad.{yaml,yml,toml} ->
// ./configs/crossroad.{yaml,yml,toml} -> embedded default.
// Files are decoded on top of the defaults, so partial files are valid.
// Only an explicit customPath can produce an error; broken files on the
// search path are skipped and returned as fallbacks for the caller to log.
func LoadCrossroad(customPath string) (CrossroadConfig, []Fallback, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrossroadConfig{}, nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return CrossroadConfig{}, nil, err
		}
		return cfg, nil, nil
	}

	var skipped []Fallback
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				skipped = append(skipped, Fallback{Path: path, Err: err})
				continue
			}
			cfg, err := Parse(path, data)
			if err != nil {
				skipped = append(skipped, Fallback{Path: path, Err: err})
				continue
			}
			return cfg, skipped, nil
		}
	}

	return Embedded(), skipped, nil
}

// Parse decodes config data on top of the defaults. The format is chosen by
// the file extension of name: ".toml" for TOML, anything else for YAML.
func Parse(name string, data []byte) (CrossroadConfig, error) {
	cfg := Embedded()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return CrossroadConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return CrossroadConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// Embedded returns the configuration shipped inside the binary.
func Embedded() CrossroadConfig {
	cfg := DefaultCrossroadConfig()
	if err := yaml.Unmarshal(defaultCrossroadYAML, &cfg); err != nil {
		return DefaultCrossroadConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg
}

// searchDirs returns the user and local config directories.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	return append(dirs, "configs")
}

// ApplyCrossroadPreset modifies the config based on a difficulty preset.
func ApplyCrossroadPreset(cfg *CrossroadConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Base = 0.8
		cfg.Difficulty.PerRow = 0.04
		cfg.Round.Duration += 10
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Base = 1.25
		cfg.Difficulty.PerRow = 0.1
		cfg.Cars.MaxPerLane = MaxCarsPerLane / 2
		cfg.Cars.MinPerLane = 3
	}
}
