// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Limits enforced on any loaded configuration. The world keeps lanes and
// cars in fixed-capacity arrays sized by these values.
const (
	MaxLanes       = 100
	MinLanes       = 2
	MaxCarsPerLane = 8
	CarVariants    = 3
)

// CrossroadConfig contains all configuration for the Crossroad game.
type CrossroadConfig struct {
	World      CrossroadWorld   `yaml:"world" toml:"world"`
	Cars       CrossroadCars    `yaml:"cars" toml:"cars"`
	Player     CrossroadPlayer  `yaml:"player" toml:"player"`
	Round      CrossroadRound   `yaml:"round" toml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// CrossroadWorld defines the lane grid in world pixels.
type CrossroadWorld struct {
	Width      float64 `yaml:"width" toml:"width"`             // Horizontal extent of the playfield
	Tile       float64 `yaml:"tile" toml:"tile"`               // Lane height and player step
	LaneCount  int     `yaml:"lane_count" toml:"lane_count"`   // Lanes generated per run
	WrapMargin float64 `yaml:"wrap_margin" toml:"wrap_margin"` // Distance past the edge before a car wraps
}

// CrossroadCars defines how road lanes are populated.
type CrossroadCars struct {
	MinPerLane     int     `yaml:"min_per_lane" toml:"min_per_lane"`
	MaxPerLane     int     `yaml:"max_per_lane" toml:"max_per_lane"`
	MinLaneSpeed   float64 `yaml:"min_lane_speed" toml:"min_lane_speed"` // px/s
	MaxLaneSpeed   float64 `yaml:"max_lane_speed" toml:"max_lane_speed"`
	MinSpeedFactor float64 `yaml:"min_speed_factor" toml:"min_speed_factor"` // Per-car jitter around the lane speed
	MaxSpeedFactor float64 `yaml:"max_speed_factor" toml:"max_speed_factor"`
	MinLength      float64 `yaml:"min_length" toml:"min_length"` // In tiles
	MaxLength      float64 `yaml:"max_length" toml:"max_length"`
	Height         float64 `yaml:"height" toml:"height"` // In tiles
}

// CrossroadPlayer defines player movement timing and hitbox.
type CrossroadPlayer struct {
	MoveCooldown    float64 `yaml:"move_cooldown" toml:"move_cooldown"`     // Seconds between grid steps
	Invulnerability float64 `yaml:"invulnerability" toml:"invulnerability"` // Grace period after a reset
	HitboxInset     float64 `yaml:"hitbox_inset" toml:"hitbox_inset"`       // Pixels shaved off each side for collisions
}

// CrossroadRound defines the countdown.
type CrossroadRound struct {
	Duration float64 `yaml:"duration" toml:"duration"` // Seconds
}

// DifficultyConfig defines how car speed scales with the best row reached.
// The multiplier is Base + PerRow*maxRow, capped at MaxMultiplier when it is positive.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	Base          float64 `yaml:"base" toml:"base"`
	PerRow        float64 `yaml:"per_row" toml:"per_row"`
	MaxMultiplier float64 `yaml:"max_multiplier" toml:"max_multiplier"` // 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Normalize clamps every field into a playable range. Invalid values are
// corrected rather than reported, matching how the simulation treats
// spatial edge cases.
func (c *CrossroadConfig) Normalize() {
	d := DefaultCrossroadConfig()

	if c.World.Width <= 0 {
		c.World.Width = d.World.Width
	}
	if c.World.Tile <= 0 {
		c.World.Tile = d.World.Tile
	}
	if c.World.LaneCount < MinLanes {
		c.World.LaneCount = MinLanes
	}
	if c.World.LaneCount > MaxLanes {
		c.World.LaneCount = MaxLanes
	}
	if c.World.WrapMargin < 0 {
		c.World.WrapMargin = 0
	}

	if c.Cars.MinPerLane < 1 {
		c.Cars.MinPerLane = 1
	}
	if c.Cars.MaxPerLane > MaxCarsPerLane {
		c.Cars.MaxPerLane = MaxCarsPerLane
	}
	if c.Cars.MinPerLane > MaxCarsPerLane {
		c.Cars.MinPerLane = MaxCarsPerLane
	}
	if c.Cars.MaxPerLane < c.Cars.MinPerLane {
		c.Cars.MaxPerLane = c.Cars.MinPerLane
	}
	if c.Cars.MaxLaneSpeed < c.Cars.MinLaneSpeed {
		c.Cars.MinLaneSpeed, c.Cars.MaxLaneSpeed = c.Cars.MaxLaneSpeed, c.Cars.MinLaneSpeed
	}
	if c.Cars.MinSpeedFactor <= 0 {
		c.Cars.MinSpeedFactor = d.Cars.MinSpeedFactor
	}
	if c.Cars.MaxSpeedFactor < c.Cars.MinSpeedFactor {
		c.Cars.MaxSpeedFactor = c.Cars.MinSpeedFactor
	}
	if c.Cars.MinLength <= 0 {
		c.Cars.MinLength = d.Cars.MinLength
	}
	if c.Cars.MaxLength < c.Cars.MinLength {
		c.Cars.MaxLength = c.Cars.MinLength
	}
	if c.Cars.Height <= 0 || c.Cars.Height > 1 {
		c.Cars.Height = d.Cars.Height
	}

	if c.Player.MoveCooldown < 0 {
		c.Player.MoveCooldown = 0
	}
	if c.Player.Invulnerability < 0 {
		c.Player.Invulnerability = 0
	}
	if c.Player.HitboxInset < 0 {
		c.Player.HitboxInset = 0
	}

	if c.Round.Duration <= 0 {
		c.Round.Duration = d.Round.Duration
	}

	if c.Difficulty.Base <= 0 {
		c.Difficulty.Base = 1.0
	}
	if c.Difficulty.PerRow < 0 {
		c.Difficulty.PerRow = 0
	}
}
