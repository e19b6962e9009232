package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation steps per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional explicit game config YAML
	Difficulty string // Difficulty preset name (easy, normal, hard, fixed)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepDuration is the simulated time covered by one Step call.
func (c RuntimeConfig) StepDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState summarizes a game for the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the ending was a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation step.
type StepResult struct {
	State GameState
}
