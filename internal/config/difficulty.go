package config

// DifficultyManager derives the car speed multiplier from progress.
// It holds no per-run state: the multiplier is a pure function of the best
// row reached and is recomputed every frame.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.Base <= 0 {
		cfg.Base = 1.0
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.PerRow > 0
}

// Multiplier returns the speed multiplier for the given best row.
func (d *DifficultyManager) Multiplier(maxRow int) float64 {
	if !d.IsEnabled() || maxRow <= 0 {
		return d.cfg.Base
	}

	m := d.cfg.Base + d.cfg.PerRow*float64(maxRow)
	if d.cfg.MaxMultiplier > 0 && m > d.cfg.MaxMultiplier {
		m = d.cfg.MaxMultiplier
	}
	return m
}
