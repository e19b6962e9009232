// Package snake implements the Snake engine and its arcade adapter.
package snake

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gridview"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game adapts the Snake engine to the registry.Game interface.
// It owns the move timer and maps input frames to engine transitions.
type Game struct {
	engine     *Engine
	state      State
	cfg        config.SnakeConfig
	move       core.Interval
	difficulty *config.DifficultyManager
	rc         core.RuntimeConfig
	tick       uint64
	paused     bool
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads configuration and returns to the waiting screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Shared.Snake(rc.ConfigPath, config.ParsePreset(rc.Difficulty))
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	g.cfg = cfg
	g.rc = rc
	g.engine = NewEngine(EngineConfig(cfg), core.NewRand(rc.Seed))
	g.state = g.engine.Initial()
	g.move = core.NewInterval(config.Millis(cfg.MoveIntervalMs))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick = 0
	g.paused = false
}

// EngineConfig converts the YAML configuration to engine parameters.
func EngineConfig(cfg config.SnakeConfig) Config {
	return Config{
		Width:      cfg.Grid.Width,
		Height:     cfg.Grid.Height,
		Start:      cfg.Start.Point(),
		Food:       cfg.Food.Point(),
		Direction:  cfg.Direction.Point(),
		FoodPoints: cfg.FoodPoints,
		AvoidBody:  cfg.AvoidBody,
	}
}

// Step advances the simulation by one fixed step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.state.Status {
	case StatusWaiting:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionDrop) {
			g.begin()
		}
		return core.StepResult{State: g.State()}
	case StatusOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.begin()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := in.Direction(); ok {
		g.state = g.engine.SetDirection(g.state, dir)
	}

	base := config.Millis(g.cfg.MoveIntervalMs)
	g.move.SetPeriod(g.difficulty.Period(base, g.state.Score, int(g.tick)))
	for n := g.move.Advance(g.rc.StepDuration()); n > 0 && g.state.Status == StatusPlaying; n-- {
		g.state = g.engine.Tick(g.state)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) begin() {
	g.state = g.engine.Start()
	g.move.Reset()
	g.paused = false
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Current returns the current engine state.
func (g *Game) Current() State {
	return g.state.Clone()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	ec := g.engine.Config()
	board, ok := gridview.Fit(dst, ec.Width, ec.Height)
	if !ok {
		gridview.TooSmall(dst, ec.Width, ec.Height)
		return
	}

	gridview.HUD(dst, fmt.Sprintf(" Snake  Score: %d  Length: %d", g.state.Score, len(g.state.Body)))
	board.Frame(dst)

	board.Cell(dst, g.state.Food, "●", core.ColorRed)
	for i := len(g.state.Body) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		board.Cell(dst, g.state.Body[i], "██", color)
	}

	switch {
	case g.state.Status == StatusWaiting:
		gridview.Overlay(dst, "Snake", "Press Enter to start")
	case g.state.Status == StatusOver:
		gridview.Overlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.state.Score))
	case g.paused:
		gridview.Overlay(dst, "Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status == StatusOver,
		Paused:   g.paused,
	}
}
