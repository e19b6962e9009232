package config

import (
	"math"
	"time"
)

// DifficultyManager calculates speed-ups of timed games based on score/time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return 0
	}

	return clampF(progress, 0.0, 1.0)
}

// Period shortens a base tick period as difficulty rises.
// At level 1.0 the period is base / (1 + SpeedMultiplier).
func (d *DifficultyManager) Period(base time.Duration, score int, ticks int) time.Duration {
	level := d.Level(score, ticks)
	speed := 1.0 + level*math.Max(0, d.cfg.Scaling.SpeedMultiplier)
	p := time.Duration(float64(base) / speed)
	if p < time.Millisecond {
		p = time.Millisecond
	}
	return p
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// clampInt restricts an int to [min, max].
func clampInt(val, min, max int) int {
	if max < min {
		max = min
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
