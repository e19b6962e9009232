package config

import (
	"strings"
	"sync"
)

// Cache memoizes loaded configs per game, path and preset so that sessions
// do not re-read YAML on every restart. A Watcher invalidates entries when
// files change on disk.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// Shared is the process-wide cache used by the game adapters.
var Shared = NewCache()

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

func cacheKey(gameID, path string, preset DifficultyPreset) string {
	return gameID + "|" + path + "|" + string(preset)
}

func cached[T any](c *Cache, gameID, path string, preset DifficultyPreset, loadFn func() (T, error)) (T, error) {
	key := cacheKey(gameID, path, preset)

	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return v.(T), nil
	}

	cfg, err := loadFn()
	if err != nil {
		return cfg, err
	}

	c.mu.Lock()
	c.entries[key] = cfg
	c.mu.Unlock()
	return cfg, nil
}

// Invalidate drops every cached entry for the game.
func (c *Cache) Invalidate(gameID string) {
	prefix := gameID + "|"
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]any)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snake returns the Snake config for path with the preset applied.
func (c *Cache) Snake(path string, preset DifficultyPreset) (SnakeConfig, error) {
	return cached(c, "snake", path, preset, func() (SnakeConfig, error) {
		cfg, err := LoadSnake(path)
		if err != nil {
			return cfg, err
		}
		ApplySnakePreset(&cfg, preset)
		return cfg, nil
	})
}

// Tetris returns the Tetris config for path with the preset applied.
func (c *Cache) Tetris(path string, preset DifficultyPreset) (TetrisConfig, error) {
	return cached(c, "tetris", path, preset, func() (TetrisConfig, error) {
		cfg, err := LoadTetris(path)
		if err != nil {
			return cfg, err
		}
		ApplyTetrisPreset(&cfg, preset)
		return cfg, nil
	})
}

// PacMan returns the Pac-Man config for path with the preset applied.
// The returned slices are copies.
func (c *Cache) PacMan(path string, preset DifficultyPreset) (PacManConfig, error) {
	cfg, err := cached(c, "pacman", path, preset, func() (PacManConfig, error) {
		cfg, err := LoadPacMan(path)
		if err != nil {
			return cfg, err
		}
		ApplyPacManPreset(&cfg, preset)
		return cfg, nil
	})
	cfg.Ghosts = append([]GhostConfig(nil), cfg.Ghosts...)
	cfg.Layout = append([]string(nil), cfg.Layout...)
	return cfg, err
}

// Minesweeper returns the Minesweeper config for path with the preset applied.
func (c *Cache) Minesweeper(path string, preset DifficultyPreset) (MinesweeperConfig, error) {
	return cached(c, "minesweeper", path, preset, func() (MinesweeperConfig, error) {
		cfg, err := LoadMinesweeper(path)
		if err != nil {
			return cfg, err
		}
		ApplyMinesweeperPreset(&cfg, preset)
		return cfg, nil
	})
}
