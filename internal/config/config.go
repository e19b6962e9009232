// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "github.com/vovakirdan/grid-arcade/internal/core"

// GridSize is the width and height of a game grid in cells.
type GridSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Cell is a grid coordinate as written in YAML.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts the YAML cell to a core.Point.
func (c Cell) Point() core.Point {
	return core.Pt(c.X, c.Y)
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid           GridSize         `yaml:"grid"`
	Start          Cell             `yaml:"start"`
	Food           Cell             `yaml:"food"`
	Direction      Cell             `yaml:"direction"`
	FoodPoints     int              `yaml:"food_points"`
	MoveIntervalMs int              `yaml:"move_interval_ms"`
	AvoidBody      bool             `yaml:"avoid_body"` // respawn food only on free cells
	Difficulty     DifficultyConfig `yaml:"difficulty"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board      GridSize         `yaml:"board"`
	LinePoints int              `yaml:"line_points"`
	GravityMs  int              `yaml:"gravity_ms"`
	ShowGhost  bool             `yaml:"show_ghost"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GhostConfig describes one Pac-Man ghost.
type GhostConfig struct {
	Start Cell   `yaml:"start"`
	Color string `yaml:"color"` // red, pink, cyan, orange, ...
}

// PacManConfig contains all configuration for Pac-Man.
type PacManConfig struct {
	Grid             GridSize         `yaml:"grid"`
	Player           Cell             `yaml:"player"`
	Ghosts           []GhostConfig    `yaml:"ghosts"`
	DotPoints        int              `yaml:"dot_points"`
	PlayerIntervalMs int              `yaml:"player_interval_ms"`
	GhostIntervalMs  int              `yaml:"ghost_interval_ms"`
	ChaseProbability float64          `yaml:"chase_probability"`
	Layout           []string         `yaml:"layout"` // optional '#' wall rows; empty means classic maze
	Difficulty       DifficultyConfig `yaml:"difficulty"`
}

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Grid  GridSize `yaml:"grid"`
	Mines int      `yaml:"mines"`
}

// DifficultyConfig defines the optional speed progression of timed games.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown or empty values are normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// IntervalScaleForPreset returns the factor applied to tick intervals.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.3
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
