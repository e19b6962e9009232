// Package minesweeper implements the Minesweeper engine and its arcade adapter.
package minesweeper

import (
	"fmt"
	"time"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gridview"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game adapts the Minesweeper engine to the registry.Game interface.
// The player moves a cursor over the field; the score is the number of
// safe cells revealed.
type Game struct {
	engine  *Engine
	state   State
	rc      core.RuntimeConfig
	cursor  core.Point
	elapsed time.Duration
	tick    uint64
	paused  bool
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset loads configuration and returns to the waiting screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Shared.Minesweeper(rc.ConfigPath, config.ParsePreset(rc.Difficulty))
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	g.rc = rc
	g.engine = NewEngine(Config{
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Mines:  cfg.Mines,
	}, core.NewRand(rc.Seed))
	g.state = g.engine.Reset()
	g.cursor = core.Pt(cfg.Grid.Width/2, cfg.Grid.Height/2)
	g.elapsed = 0
	g.tick = 0
	g.paused = false
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch {
	case g.state.Status == StatusWaiting:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionDrop) {
			g.begin()
		}
		return core.StepResult{State: g.State()}
	case g.state.Status.Over():
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

	if in.Has(core.ActionRestart) {
		g.state = g.engine.Reset()
		return core.StepResult{State: g.State()}
	}

	if dir, ok := in.Direction(); ok {
		ec := g.engine.Config()
		g.cursor = core.Pt(
			core.Clamp(g.cursor.X+dir.X, 0, ec.Width-1),
			core.Clamp(g.cursor.Y+dir.Y, 0, ec.Height-1),
		)
	}
	if in.Has(core.ActionFlag) {
		g.state = g.engine.ToggleFlag(g.state, g.cursor)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionDrop) {
		g.state = g.engine.Reveal(g.state, g.cursor)
	}

	if g.state.Status == StatusPlaying {
		g.elapsed += g.rc.StepDuration()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) begin() {
	g.state = g.engine.Generate()
	g.elapsed = 0
	g.paused = false
}

// Current returns the current engine state.
func (g *Game) Current() State {
	return g.state.Clone()
}

// Cursor returns the selected cell.
func (g *Game) Cursor() core.Point {
	return g.cursor
}

var countColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

func (g *Game) cellGlyph(c Cell) (rune, core.Color) {
	switch {
	case c.Flagged && !(c.Revealed && g.state.Status == StatusLost):
		return 'F', core.ColorBrightRed
	case !c.Revealed:
		return '■', core.ColorGray
	case c.Mine:
		return '*', core.ColorRed
	case c.Neighbors == 0:
		return ' ', core.ColorDefault
	default:
		return rune('0' + c.Neighbors), countColors[c.Neighbors]
	}
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

	gridview.HUD(dst, fmt.Sprintf(" Minesweeper  Mines: %d  Flags: %d  Time: %ds",
		g.state.Mines, g.state.FlagsRemaining, int(g.elapsed.Seconds())))
	board.Frame(dst)

	for y := 0; y < ec.Height; y++ {
		for x := 0; x < ec.Width; x++ {
			p := core.Pt(x, y)
			r, color := '■', core.ColorGray
			if g.state.Contains(p) {
				r, color = g.cellGlyph(g.state.At(p))
			}
			lead := ' '
			if p == g.cursor && g.state.Status == StatusPlaying {
				lead = '>'
				if !g.state.Contains(p) || !g.state.At(p).Revealed {
					color = core.ColorBrightYellow
				}
			}
			board.Cell(dst, p, string([]rune{lead, r}), color)
		}
	}

	switch {
	case g.state.Status == StatusWaiting:
		gridview.Overlay(dst, "Minesweeper", "Press Enter to start")
	case g.state.Status == StatusWon:
		gridview.Overlay(dst, "You Win!", fmt.Sprintf("Cleared in %ds  R to restart", int(g.elapsed.Seconds())))
	case g.state.Status == StatusLost:
		gridview.Overlay(dst, "Boom!", "R to restart")
	case g.paused:
		gridview.Overlay(dst, "Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.RevealedSafe(),
		GameOver: g.state.Status.Over(),
		Won:      g.state.Status == StatusWon,
		Paused:   g.paused,
	}
}
