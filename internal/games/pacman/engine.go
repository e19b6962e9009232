package pacman

import (
	"sort"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Status is the lifecycle phase of a Pac-Man round.
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the round has ended.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

// Ghost is one adversary token.
type Ghost struct {
	Pos   core.Point
	Color core.Color
}

// Config fixes the maze, start cells and ghost behavior.
type Config struct {
	Width, Height    int
	Walls            WallMap
	Player           core.Point
	Ghosts           []Ghost
	DotPoints        int
	ChaseProbability float64 // chance a ghost takes its best move
}

// DefaultConfig returns the classic 15×15 maze with four corner ghosts.
func DefaultConfig() Config {
	return Config{
		Width:  15,
		Height: 15,
		Walls:  ClassicMaze{Width: 15, Height: 15},
		Player: core.Pt(7, 7),
		Ghosts: []Ghost{
			{Pos: core.Pt(1, 1), Color: core.ColorRed},
			{Pos: core.Pt(13, 1), Color: core.ColorPink},
			{Pos: core.Pt(1, 13), Color: core.ColorCyan},
			{Pos: core.Pt(13, 13), Color: core.ColorOrange},
		},
		DotPoints:        10,
		ChaseProbability: 0.7,
	}
}

// StartsOpen reports whether the player and every ghost start on an open
// cell, with no ghost starting on the player.
func (c Config) StartsOpen() bool {
	open := func(p core.Point) bool {
		return core.GridRect(c.Width, c.Height).ContainsPoint(p) && !c.Walls.IsWall(p)
	}
	if !open(c.Player) {
		return false
	}
	for _, g := range c.Ghosts {
		if !open(g.Pos) || g.Pos == c.Player {
			return false
		}
	}
	return true
}

// State is an immutable snapshot of a round.
type State struct {
	Player    core.Point
	Ghosts    []Ghost
	Dots      map[core.Point]struct{}
	Direction core.Point
	Status    Status
	Score     int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Ghosts = append([]Ghost(nil), s.Ghosts...)
	c.Dots = make(map[core.Point]struct{}, len(s.Dots))
	for p := range s.Dots {
		c.Dots[p] = struct{}{}
	}
	return c
}

// HasDot reports whether a dot remains on p.
func (s State) HasDot(p core.Point) bool {
	_, ok := s.Dots[p]
	return ok
}

// Engine holds the maze and the random source for ghost movement.
type Engine struct {
	cfg Config
	rng core.Rand
}

// NewEngine creates a Pac-Man engine.
func NewEngine(cfg Config, rng core.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Open reports whether p is inside the grid and not a wall.
func (e *Engine) Open(p core.Point) bool {
	return core.GridRect(e.cfg.Width, e.cfg.Height).ContainsPoint(p) && !e.cfg.Walls.IsWall(p)
}

func (e *Engine) fresh(status Status) State {
	s := State{
		Player: e.cfg.Player,
		Ghosts: append([]Ghost(nil), e.cfg.Ghosts...),
		Dots:   make(map[core.Point]struct{}),
		Status: status,
	}
	for y := 0; y < e.cfg.Height; y++ {
		for x := 0; x < e.cfg.Width; x++ {
			p := core.Pt(x, y)
			if e.Open(p) && !e.isStart(p) {
				s.Dots[p] = struct{}{}
			}
		}
	}
	return s
}

func (e *Engine) isStart(p core.Point) bool {
	if p == e.cfg.Player {
		return true
	}
	for _, g := range e.cfg.Ghosts {
		if g.Pos == p {
			return true
		}
	}
	return false
}

// Initial returns the waiting state with the maze fully stocked.
func (e *Engine) Initial() State {
	return e.fresh(StatusWaiting)
}

// Start begins a new round.
func (e *Engine) Start() State {
	return e.fresh(StatusPlaying)
}

// SetDirection stores the requested heading. Walls are not checked here.
func (e *Engine) SetDirection(s State, dir core.Point) State {
	next := s.Clone()
	if s.Status == StatusPlaying {
		next.Direction = dir
	}
	return next
}

// PlayerTick moves the player one cell along its heading and eats any dot
// there. A blocked move leaves the player in place and keeps the heading.
func (e *Engine) PlayerTick(s State) State {
	next := s.Clone()
	if s.Status != StatusPlaying || s.Direction.IsZero() {
		return next
	}
	target := s.Player.Add(s.Direction)
	if !e.Open(target) {
		return next
	}
	next.Player = target
	if next.HasDot(target) {
		delete(next.Dots, target)
		next.Score += e.cfg.DotPoints
	}
	return next
}

var ghostMoves = [...]core.Point{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// GhostTick moves every ghost one cell. Each ghost takes the move closest to
// the player with probability ChaseProbability, otherwise a uniformly random
// open move. Ties keep the order up, down, left, right.
func (e *Engine) GhostTick(s State) State {
	next := s.Clone()
	if s.Status != StatusPlaying {
		return next
	}
	for i, g := range next.Ghosts {
		next.Ghosts[i].Pos = e.ghostStep(g.Pos, s.Player)
	}
	return next
}

func (e *Engine) ghostStep(from, player core.Point) core.Point {
	valid := make([]core.Point, 0, len(ghostMoves))
	for _, d := range ghostMoves {
		if e.Open(from.Add(d)) {
			valid = append(valid, from.Add(d))
		}
	}
	if len(valid) == 0 {
		return from
	}

	ranked := append([]core.Point(nil), valid...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Manhattan(player) < ranked[j].Manhattan(player)
	})

	if e.rng.Float64() < e.cfg.ChaseProbability {
		return ranked[0]
	}
	return valid[e.rng.Intn(len(valid))]
}

// Resolve ends the round once all dots are eaten or a ghost shares the
// player's cell. Clearing the maze wins even if a ghost arrives on the same frame.
func (e *Engine) Resolve(s State) State {
	next := s.Clone()
	if s.Status != StatusPlaying {
		return next
	}
	if len(s.Dots) == 0 {
		next.Status = StatusWon
		return next
	}
	for _, g := range s.Ghosts {
		if g.Pos == s.Player {
			next.Status = StatusLost
			return next
		}
	}
	return next
}
