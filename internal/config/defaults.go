package config

import (
	_ "embed"
)

//go:embed defaults/crossroad.yaml
var defaultCrossroadYAML []byte

// DefaultCrossroadConfig returns the built-in Crossroad configuration.
// It mirrors defaults/crossroad.yaml and is used when the embed cannot be parsed.
func DefaultCrossroadConfig() CrossroadConfig {
	return CrossroadConfig{
		World: CrossroadWorld{
			Width:      800,
			Tile:       48,
			LaneCount:  48,
			WrapMargin: 0,
		},
		Cars: CrossroadCars{
			MinPerLane:     2,
			MaxPerLane:     4,
			MinLaneSpeed:   90,
			MaxLaneSpeed:   160,
			MinSpeedFactor: 0.9,
			MaxSpeedFactor: 1.2,
			MinLength:      1.2,
			MaxLength:      1.8,
			Height:         0.8,
		},
		Player: CrossroadPlayer{
			MoveCooldown:    0.12,
			Invulnerability: 0.35,
			HitboxInset:     4,
		},
		Round: CrossroadRound{
			Duration: 35,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			Base:          1.0,
			PerRow:        0.07,
			MaxMultiplier: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossroad", "crossroad_classic":
		return defaultCrossroadYAML
	default:
		return nil
	}
}
