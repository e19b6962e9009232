package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/pacman.yaml
var defaultPacManYAML []byte

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:           GridSize{Width: 20, Height: 20},
		Start:          Cell{X: 10, Y: 10},
		Food:           Cell{X: 15, Y: 15},
		Direction:      Cell{X: 0, Y: -1},
		FoodPoints:     10,
		MoveIntervalMs: 150,
		Difficulty:     defaultProgression(),
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board:      GridSize{Width: 10, Height: 20},
		LinePoints: 100,
		GravityMs:  500,
		ShowGhost:  true,
		Difficulty: defaultProgression(),
	}
}

// DefaultPacManConfig returns the default Pac-Man configuration.
func DefaultPacManConfig() PacManConfig {
	return PacManConfig{
		Grid:   GridSize{Width: 15, Height: 15},
		Player: Cell{X: 7, Y: 7},
		Ghosts: []GhostConfig{
			{Start: Cell{X: 1, Y: 1}, Color: "red"},
			{Start: Cell{X: 13, Y: 1}, Color: "pink"},
			{Start: Cell{X: 1, Y: 13}, Color: "cyan"},
			{Start: Cell{X: 13, Y: 13}, Color: "orange"},
		},
		DotPoints:        10,
		PlayerIntervalMs: 120,
		GhostIntervalMs:  200,
		ChaseProbability: 0.7,
		Difficulty:       defaultProgression(),
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Grid:  GridSize{Width: 10, Height: 10},
		Mines: 15,
	}
}

func defaultProgression() DifficultyConfig {
	return DifficultyConfig{
		Enabled: false,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 500,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "tetris":
		return defaultTetrisYAML
	case "pacman":
		return defaultPacManYAML
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
