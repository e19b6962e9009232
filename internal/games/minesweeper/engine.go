package minesweeper

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Status is the lifecycle phase of a Minesweeper round.
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

// Cell is one square of the minefield.
type Cell struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors int // mines in the 8-neighborhood; unused for mines
}

// Config fixes the field size and mine count.
type Config struct {
	Width, Height int
	Mines         int
}

// DefaultConfig returns the 10×10 field with 15 mines.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 10, Mines: 15}
}

// State is an immutable snapshot of a round. Cells is nil while waiting.
type State struct {
	Width, Height  int
	Cells          [][]Cell
	Status         Status
	FlagsRemaining int
	Mines          int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	if s.Cells != nil {
		c.Cells = make([][]Cell, len(s.Cells))
		for y := range s.Cells {
			c.Cells[y] = append([]Cell(nil), s.Cells[y]...)
		}
	}
	return c
}

// Contains reports whether p lies on a generated field.
func (s State) Contains(p core.Point) bool {
	return s.Cells != nil && core.GridRect(s.Width, s.Height).ContainsPoint(p)
}

// At returns the cell at p. p must be on the field.
func (s State) At(p core.Point) Cell {
	return s.Cells[p.Y][p.X]
}

// RevealedSafe counts revealed non-mine cells.
func (s State) RevealedSafe() int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Revealed && !c.Mine {
				n++
			}
		}
	}
	return n
}

func (s State) allSafeRevealed() bool {
	for _, row := range s.Cells {
		for _, c := range row {
			if !c.Mine && !c.Revealed {
				return false
			}
		}
	}
	return true
}

// neighbors returns the in-bounds cells around p, without wraparound.
func (s State) neighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n := p.Add(core.Pt(dx, dy)); s.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Engine holds the field configuration and the random source for mine placement.
type Engine struct {
	cfg Config
	rng core.Rand
}

// NewEngine creates a Minesweeper engine.
func NewEngine(cfg Config, rng core.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset returns the waiting state with no field.
func (e *Engine) Reset() State {
	return State{
		Width:          e.cfg.Width,
		Height:         e.cfg.Height,
		Status:         StatusWaiting,
		FlagsRemaining: e.cfg.Mines,
		Mines:          e.cfg.Mines,
	}
}

// Generate lays a fresh field with exactly Mines mines at distinct random
// cells and starts play.
func (e *Engine) Generate() State {
	s := e.Reset()
	s.Cells = make([][]Cell, s.Height)
	for y := range s.Cells {
		s.Cells[y] = make([]Cell, s.Width)
	}

	mines := min(e.cfg.Mines, s.Width*s.Height)
	for placed := 0; placed < mines; {
		x, y := e.rng.Intn(s.Width), e.rng.Intn(s.Height)
		if s.Cells[y][x].Mine {
			continue
		}
		s.Cells[y][x].Mine = true
		placed++
	}

	return e.withCounts(s, mines)
}

// FromMines starts play on a field with mines at exactly the given cells.
func (e *Engine) FromMines(mines []core.Point) State {
	s := e.Reset()
	s.Cells = make([][]Cell, s.Height)
	for y := range s.Cells {
		s.Cells[y] = make([]Cell, s.Width)
	}
	n := 0
	for _, p := range mines {
		if s.Contains(p) && !s.Cells[p.Y][p.X].Mine {
			s.Cells[p.Y][p.X].Mine = true
			n++
		}
	}
	return e.withCounts(s, n)
}

func (e *Engine) withCounts(s State, mines int) State {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			p := core.Pt(x, y)
			if s.At(p).Mine {
				continue
			}
			count := 0
			for _, n := range s.neighbors(p) {
				if s.At(n).Mine {
					count++
				}
			}
			s.Cells[y][x].Neighbors = count
		}
	}
	s.Mines = mines
	s.FlagsRemaining = mines
	s.Status = StatusPlaying
	return s
}

// Reveal opens the cell at p. A mine ends the round and exposes every mine.
// A safe cell flood-fills through zero-count cells. Revealed, flagged and
// out-of-range cells are ignored.
func (e *Engine) Reveal(s State, p core.Point) State {
	next := s.Clone()
	if s.Status != StatusPlaying || !s.Contains(p) {
		return next
	}
	if c := s.At(p); c.Revealed || c.Flagged {
		return next
	}

	if s.At(p).Mine {
		for y := range next.Cells {
			for x := range next.Cells[y] {
				if next.Cells[y][x].Mine {
					next.Cells[y][x].Revealed = true
				}
			}
		}
		next.Status = StatusLost
		return next
	}

	stack := []core.Point{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &next.Cells[cur.Y][cur.X]
		if c.Revealed || c.Flagged || c.Mine {
			continue
		}
		c.Revealed = true
		if c.Neighbors == 0 {
			stack = append(stack, next.neighbors(cur)...)
		}
	}

	if next.allSafeRevealed() {
		next.Status = StatusWon
	}
	return next
}

// ToggleFlag flips the flag on an unrevealed cell. FlagsRemaining may go
// negative; it never blocks flagging.
func (e *Engine) ToggleFlag(s State, p core.Point) State {
	next := s.Clone()
	if s.Status != StatusPlaying || !s.Contains(p) || s.At(p).Revealed {
		return next
	}
	c := &next.Cells[p.Y][p.X]
	c.Flagged = !c.Flagged
	if c.Flagged {
		next.FlagsRemaining--
	} else {
		next.FlagsRemaining++
	}
	return next
}
