// Package pacman implements the Pac-Man engine and its arcade adapter.
package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gridview"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game adapts the Pac-Man engine to the registry.Game interface.
// The player and the ghosts move on two independent timers.
type Game struct {
	engine     *Engine
	state      State
	cfg        config.PacManConfig
	rc         core.RuntimeConfig
	playerMove core.Interval
	ghostMove  core.Interval
	difficulty *config.DifficultyManager
	tick       uint64
	paused     bool
}

// New creates a new Pac-Man game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset loads configuration and returns to the waiting screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Shared.PacMan(rc.ConfigPath, config.ParsePreset(rc.Difficulty))
	if err != nil {
		cfg = config.DefaultPacManConfig()
	}
	g.cfg = cfg
	g.rc = rc
	g.engine = NewEngine(EngineConfig(cfg), core.NewRand(rc.Seed))
	g.state = g.engine.Initial()
	g.playerMove = core.NewInterval(config.Millis(cfg.PlayerIntervalMs))
	g.ghostMove = core.NewInterval(config.Millis(cfg.GhostIntervalMs))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick = 0
	g.paused = false
}

// EngineConfig converts the YAML configuration to engine parameters.
// A layout that walls in any start cell is replaced by the classic maze.
// If the classic maze walls them in too, the default grid and starts are used.
func EngineConfig(cfg config.PacManConfig) Config {
	ec := Config{
		Width:            cfg.Grid.Width,
		Height:           cfg.Grid.Height,
		Walls:            ClassicMaze{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		Player:           cfg.Player.Point(),
		DotPoints:        cfg.DotPoints,
		ChaseProbability: cfg.ChaseProbability,
	}
	for _, gc := range cfg.Ghosts {
		ec.Ghosts = append(ec.Ghosts, Ghost{Pos: gc.Start.Point(), Color: ColorByName(gc.Color)})
	}

	if len(cfg.Layout) > 0 {
		maze := NewLayoutMaze(cfg.Layout)
		withLayout := ec
		withLayout.Walls = maze
		withLayout.Width, withLayout.Height = maze.Size()
		if withLayout.StartsOpen() {
			return withLayout
		}
	}
	if ec.StartsOpen() {
		return ec
	}

	fallback := DefaultConfig()
	fallback.DotPoints = cfg.DotPoints
	fallback.ChaseProbability = cfg.ChaseProbability
	return fallback
}

// ColorByName maps a ghost color name to a screen color.
func ColorByName(name string) core.Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return core.ColorRed
	case "pink":
		return core.ColorPink
	case "cyan":
		return core.ColorCyan
	case "orange":
		return core.ColorOrange
	case "green":
		return core.ColorGreen
	case "magenta", "purple":
		return core.ColorMagenta
	case "blue":
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

// Step advances the simulation by one fixed step.
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

	if dir, ok := in.Direction(); ok {
		g.state = g.engine.SetDirection(g.state, dir)
	}

	dt := g.rc.StepDuration()
	for n := g.playerMove.Advance(dt); n > 0; n-- {
		g.state = g.engine.PlayerTick(g.state)
	}
	base := config.Millis(g.cfg.GhostIntervalMs)
	g.ghostMove.SetPeriod(g.difficulty.Period(base, g.state.Score, int(g.tick)))
	for n := g.ghostMove.Advance(dt); n > 0; n-- {
		g.state = g.engine.GhostTick(g.state)
	}
	g.state = g.engine.Resolve(g.state)

	return core.StepResult{State: g.State()}
}

func (g *Game) begin() {
	g.state = g.engine.Start()
	g.playerMove.Reset()
	g.ghostMove.Reset()
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

	gridview.HUD(dst, fmt.Sprintf(" Pac-Man  Score: %d  Dots: %d", g.state.Score, len(g.state.Dots)))
	board.Frame(dst)

	for y := 0; y < ec.Height; y++ {
		for x := 0; x < ec.Width; x++ {
			p := core.Pt(x, y)
			switch {
			case ec.Walls.IsWall(p):
				board.Cell(dst, p, "▓▓", core.ColorBlue)
			case g.state.HasDot(p):
				board.Cell(dst, p, " ·", core.ColorWhite)
			}
		}
	}

	board.Cell(dst, g.state.Player, "◉ ", core.ColorBrightYellow)
	for _, gh := range g.state.Ghosts {
		board.Cell(dst, gh.Pos, "▲ ", gh.Color)
	}

	switch {
	case g.state.Status == StatusWaiting:
		gridview.Overlay(dst, "Pac-Man", "Press Enter to start")
	case g.state.Status == StatusWon:
		gridview.Overlay(dst, "You Win!", fmt.Sprintf("Score: %d  R to restart", g.state.Score))
	case g.state.Status == StatusLost:
		gridview.Overlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.state.Score))
	case g.paused:
		gridview.Overlay(dst, "Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status.Over(),
		Won:      g.state.Status == StatusWon,
		Paused:   g.paused,
	}
}

// Snapshot captures the adapter state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Score  int
	Dots   int
	Player core.Point
	Ghosts string
	Status Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var ghosts strings.Builder
	for _, gh := range g.state.Ghosts {
		fmt.Fprintf(&ghosts, "%d,%d;", gh.Pos.X, gh.Pos.Y)
	}
	return Snapshot{
		Tick:   g.tick,
		Score:  g.state.Score,
		Dots:   len(g.state.Dots),
		Player: g.state.Player,
		Ghosts: ghosts.String(),
		Status: g.state.Status,
	}
}
