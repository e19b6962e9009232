package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigDirEnv overrides the user config directory.
const ConfigDirEnv = "ARCADE_CONFIG_DIR"

// LocalConfigDir is the working-directory fallback searched after the user directory.
const LocalConfigDir = "configs"

// load reads the configuration for one game.
// Search order: customPath -> user config dir -> ./configs -> embedded default -> hardcoded default.
// Files are decoded on top of the hardcoded default, so omitted keys keep their default value.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join(LocalConfigDir, filename)}
	if dir := UserConfigDir(); dir != "" {
		candidates = append([]string{filepath.Join(dir, filename)}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// UserConfigDir returns the directory holding user config overrides,
// or empty if neither the env override nor a home directory is available.
func UserConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
	cfg.Normalize()
	return cfg, err
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
	cfg.Normalize()
	return cfg, err
}

// LoadPacMan loads Pac-Man configuration.
func LoadPacMan(customPath string) (PacManConfig, error) {
	cfg, err := load("pacman.yaml", customPath, defaultPacManYAML, DefaultPacManConfig)
	cfg.Normalize()
	return cfg, err
}

// LoadMinesweeper loads Minesweeper configuration.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	cfg, err := load("minesweeper.yaml", customPath, defaultMinesweeperYAML, DefaultMinesweeperConfig)
	cfg.Normalize()
	return cfg, err
}

// Validate checks that an explicit config file parses for the given game.
func Validate(gameID, path string) error {
	var err error
	switch gameID {
	case "snake":
		_, err = LoadSnake(path)
	case "tetris":
		_, err = LoadTetris(path)
	case "pacman":
		_, err = LoadPacMan(path)
	case "minesweeper":
		_, err = LoadMinesweeper(path)
	default:
		return fmt.Errorf("config: no configuration for game %q", gameID)
	}
	return err
}

func normalizeGrid(g *GridSize, minSize, maxSize int) {
	g.Width = clampInt(g.Width, minSize, maxSize)
	g.Height = clampInt(g.Height, minSize, maxSize)
}

func normalizeCell(c *Cell, g GridSize) {
	c.X = clampInt(c.X, 0, g.Width-1)
	c.Y = clampInt(c.Y, 0, g.Height-1)
}

func normalizeDirection(c *Cell) {
	c.X = clampInt(c.X, -1, 1)
	c.Y = clampInt(c.Y, -1, 1)
	if c.X != 0 && c.Y != 0 {
		c.X = 0
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// Normalize clamps values into ranges the engine accepts.
func (c *SnakeConfig) Normalize() {
	normalizeGrid(&c.Grid, 5, 60)
	normalizeCell(&c.Start, c.Grid)
	normalizeCell(&c.Food, c.Grid)
	normalizeDirection(&c.Direction)
	if c.Direction.X == 0 && c.Direction.Y == 0 {
		c.Direction = Cell{X: 0, Y: -1}
	}
	c.FoodPoints = positiveOr(c.FoodPoints, 10)
	c.MoveIntervalMs = positiveOr(c.MoveIntervalMs, 150)
}

// Normalize clamps values into ranges the engine accepts.
func (c *TetrisConfig) Normalize() {
	c.Board.Width = clampInt(c.Board.Width, 5, 30)
	c.Board.Height = clampInt(c.Board.Height, 4, 40)
	c.LinePoints = positiveOr(c.LinePoints, 100)
	c.GravityMs = positiveOr(c.GravityMs, 500)
}

// Normalize clamps values into ranges the engine accepts.
func (c *PacManConfig) Normalize() {
	if len(c.Layout) > 0 {
		c.Grid.Height = len(c.Layout)
		c.Grid.Width = 0
		for _, row := range c.Layout {
			c.Grid.Width = max(c.Grid.Width, len([]rune(row)))
		}
	}
	normalizeGrid(&c.Grid, 3, 60)
	normalizeCell(&c.Player, c.Grid)
	for i := range c.Ghosts {
		normalizeCell(&c.Ghosts[i].Start, c.Grid)
	}
	c.DotPoints = positiveOr(c.DotPoints, 10)
	c.PlayerIntervalMs = positiveOr(c.PlayerIntervalMs, 120)
	c.GhostIntervalMs = positiveOr(c.GhostIntervalMs, 200)
	c.ChaseProbability = clampF(c.ChaseProbability, 0, 1)
}

// Normalize clamps values into ranges the engine accepts.
func (c *MinesweeperConfig) Normalize() {
	normalizeGrid(&c.Grid, 2, 40)
	c.Mines = clampInt(c.Mines, 1, c.Grid.Width*c.Grid.Height-1)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.MoveIntervalMs = scaleMs(cfg.MoveIntervalMs, preset)
	applyProgressionPreset(&cfg.Difficulty, preset)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.GravityMs = scaleMs(cfg.GravityMs, preset)
	applyProgressionPreset(&cfg.Difficulty, preset)
}

// ApplyPacManPreset modifies the config based on a difficulty preset.
func ApplyPacManPreset(cfg *PacManConfig, preset DifficultyPreset) {
	cfg.GhostIntervalMs = scaleMs(cfg.GhostIntervalMs, preset)
	switch preset {
	case DifficultyEasy:
		cfg.ChaseProbability = 0.5
	case DifficultyHard:
		cfg.ChaseProbability = 0.85
	}
	applyProgressionPreset(&cfg.Difficulty, preset)
}

// ApplyMinesweeperPreset modifies the config based on a difficulty preset.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	cells := cfg.Grid.Width * cfg.Grid.Height
	switch preset {
	case DifficultyEasy:
		cfg.Mines = cells / 10
	case DifficultyHard:
		cfg.Mines = cells / 5
	}
	cfg.Normalize()
}

func applyProgressionPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed, DifficultyEasy:
		d.Enabled = false
	case DifficultyHard:
		d.Enabled = true
	}
}

func scaleMs(ms int, preset DifficultyPreset) int {
	return max(1, int(float64(ms)*IntervalScaleForPreset(preset)))
}

// Millis converts a millisecond config value to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
