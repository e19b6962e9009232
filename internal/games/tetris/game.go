// Package tetris implements the Tetris engine and its arcade adapter.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gridview"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game adapts the Tetris engine to the registry.Game interface.
type Game struct {
	engine     *Engine
	state      State
	cfg        config.TetrisConfig
	rc         core.RuntimeConfig
	gravity    core.Interval
	difficulty *config.DifficultyManager
	tick       uint64
	paused     bool
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads configuration and returns to the waiting screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Shared.Tetris(rc.ConfigPath, config.ParsePreset(rc.Difficulty))
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg
	g.rc = rc
	g.engine = NewEngine(Config{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		LinePoints: cfg.LinePoints,
	}, core.NewRand(rc.Seed))
	g.state = g.engine.Initial()
	g.gravity = core.NewInterval(config.Millis(cfg.GravityMs))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick = 0
	g.paused = false
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

	g.handleInput(in)

	base := config.Millis(g.cfg.GravityMs)
	g.gravity.SetPeriod(g.difficulty.Period(base, g.state.Score, int(g.tick)))
	for n := g.gravity.Advance(g.rc.StepDuration()); n > 0 && g.state.Status == StatusPlaying; n-- {
		g.state = g.engine.Move(g.state, 0, 1)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.state = g.engine.Move(g.state, -1, 0)
	}
	if in.Has(core.ActionRight) {
		g.state = g.engine.Move(g.state, 1, 0)
	}
	if in.Has(core.ActionRotate) || in.Has(core.ActionUp) {
		g.state = g.engine.Rotate(g.state)
	}
	if in.Has(core.ActionDown) {
		g.state = g.engine.Move(g.state, 0, 1)
		g.gravity.Reset()
	}
	if in.Has(core.ActionDrop) {
		g.state = g.engine.Drop(g.state)
		g.gravity.Reset()
	}
}

func (g *Game) begin() {
	g.state = g.engine.Start()
	g.gravity.Reset()
	g.paused = false
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

	gridview.HUD(dst, fmt.Sprintf(" Tetris  Score: %d  Lines: %d", g.state.Score, g.state.Lines))
	board.Frame(dst)

	for y, row := range g.state.Board {
		for x, c := range row {
			if c != core.ColorDefault {
				board.Cell(dst, core.Pt(x, y), "██", c)
			} else {
				board.Cell(dst, core.Pt(x, y), " .", core.ColorGray)
			}
		}
	}

	if p := g.state.Piece; p != nil && g.state.Status == StatusPlaying {
		if pos, ok := g.engine.Ghost(g.state); ok && g.cfg.ShowGhost {
			for _, c := range p.Shape.Cells(pos) {
				board.Cell(dst, c, "░░", core.ColorGray)
			}
		}
		for _, c := range p.Cells() {
			board.Cell(dst, c, "██", p.Color)
		}
	}

	switch {
	case g.state.Status == StatusWaiting:
		gridview.Overlay(dst, "Tetris", "Press Enter to start")
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

// Snapshot captures the adapter state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lines  int
	Status Status
	Kind   Kind
	Pos    core.Point
	Board  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Score:  g.state.Score,
		Lines:  g.state.Lines,
		Status: g.state.Status,
		Kind:   -1,
	}
	if p := g.state.Piece; p != nil {
		snap.Kind = p.Kind
		snap.Pos = p.Pos
	}
	for _, row := range g.state.Board {
		for _, c := range row {
			if c == core.ColorDefault {
				snap.Board += "."
			} else {
				snap.Board += "#"
			}
		}
	}
	return snap
}
