package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionNone  = "none"
	ProgressionScore = "score"
	ProgressionTime  = "time"
)

// DifficultyManager raises the paddle-bounce speed floor as a session advances.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: math.Max(0, math.Min(1, cfg.InitialLevel)),
	}
}

// Level returns the difficulty in [0, 1]. Without an active progression
// (disabled, "none" or an unknown type) the level is 0 and the floor is unscaled.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	p, ok := d.progress(score, ticks)
	if !ok {
		return 0
	}
	return d.initialLevel + p*(1-d.initialLevel)
}

func (d *DifficultyManager) progress(score, ticks int) (float64, bool) {
	var done float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = float64(score)
	case ProgressionTime:
		done = float64(ticks)
	default:
		return 0, false
	}
	maxAt := math.Max(1, float64(d.cfg.Progression.MaxAt))
	return math.Min(1, done/maxAt), true
}

// Floor scales the configured speed floor by the current level.
func (d *DifficultyManager) Floor(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
