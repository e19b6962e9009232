package tetris

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Status is the lifecycle phase of a Tetris round.
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config fixes the board size and scoring.
type Config struct {
	Width, Height int
	LinePoints    int
}

// DefaultConfig returns the classic 10×20 board.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 20, LinePoints: 100}
}

// Board holds settled cells row by row. ColorDefault marks an empty cell.
type Board [][]core.Color

// NewBoard creates an empty w×h board.
func NewBoard(w, h int) Board {
	b := make(Board, h)
	for y := range b {
		b[y] = make([]core.Color, w)
	}
	return b
}

// Clone returns a deep copy of b.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y := range b {
		c[y] = append([]core.Color(nil), b[y]...)
	}
	return c
}

// Filled reports whether p holds a settled cell.
func (b Board) Filled(p core.Point) bool {
	return b[p.Y][p.X] != core.ColorDefault
}

func (b Board) rowFull(y int) bool {
	for _, c := range b[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// State is an immutable snapshot of a round.
type State struct {
	Board  Board
	Piece  *Piece // nil while waiting
	Status Status
	Score  int
	Lines  int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Board = s.Board.Clone()
	c.Piece = s.Piece.Clone()
	return c
}

// Engine holds the fixed configuration and the random source for piece selection.
type Engine struct {
	cfg Config
	rng core.Rand
}

// NewEngine creates a Tetris engine.
func NewEngine(cfg Config, rng core.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Initial returns an empty waiting board.
func (e *Engine) Initial() State {
	return State{Board: NewBoard(e.cfg.Width, e.cfg.Height), Status: StatusWaiting}
}

// Start clears the board and spawns the first piece.
func (e *Engine) Start() State {
	s := State{Board: NewBoard(e.cfg.Width, e.cfg.Height), Status: StatusPlaying}
	return e.spawn(s)
}

// spawn places a random piece at the spawn column on row 0.
// s must be a value the caller owns.
func (e *Engine) spawn(s State) State {
	k := Kind(e.rng.Intn(int(kindCount)))
	s.Piece = &Piece{
		Kind:  k,
		Shape: ShapeOf(k),
		Pos:   core.Pt(e.cfg.Width/2-1, 0),
		Color: ColorOf(k),
	}
	if !e.IsValid(s.Board, s.Piece.Shape, s.Piece.Pos) {
		s.Status = StatusOver
	}
	return s
}

// IsValid reports whether shape fits at pos: inside the side walls, above the
// floor, and off every settled cell. Rows above the board are never checked
// against it.
func (e *Engine) IsValid(b Board, shape Shape, pos core.Point) bool {
	for _, c := range shape.Cells(pos) {
		if c.X < 0 || c.X >= e.cfg.Width || c.Y >= e.cfg.Height {
			return false
		}
		if c.Y >= 0 && b.Filled(c) {
			return false
		}
	}
	return true
}

func (e *Engine) active(s State) bool {
	return s.Status == StatusPlaying && s.Piece != nil
}

// Move translates the piece. An invalid downward move locks it instead;
// any other invalid move is ignored.
func (e *Engine) Move(s State, dx, dy int) State {
	next := s.Clone()
	if !e.active(s) {
		return next
	}
	target := next.Piece.Pos.Add(core.Pt(dx, dy))
	switch {
	case e.IsValid(next.Board, next.Piece.Shape, target):
		next.Piece.Pos = target
	case dy > 0:
		next = e.lock(next)
	}
	return next
}

// Rotate turns the piece clockwise in place. There is no wall kick: a
// rotation that does not fit at the current origin is ignored.
func (e *Engine) Rotate(s State) State {
	next := s.Clone()
	if !e.active(s) {
		return next
	}
	rotated := next.Piece.Shape.Rotate()
	if e.IsValid(next.Board, rotated, next.Piece.Pos) {
		next.Piece.Shape = rotated
	}
	return next
}

// Drop moves the piece straight down as far as it goes and locks it.
func (e *Engine) Drop(s State) State {
	next := s.Clone()
	if !e.active(s) {
		return next
	}
	next.Piece.Pos = e.landing(next)
	return e.lock(next)
}

// Ghost returns where the piece would land if dropped.
func (e *Engine) Ghost(s State) (core.Point, bool) {
	if !e.active(s) {
		return core.Point{}, false
	}
	return e.landing(s), true
}

func (e *Engine) landing(s State) core.Point {
	pos := s.Piece.Pos
	for e.IsValid(s.Board, s.Piece.Shape, pos.Add(core.DirDown)) {
		pos = pos.Add(core.DirDown)
	}
	return pos
}

// lock settles the piece, clears full rows and spawns the next piece.
// After a clear the same row index is checked again, since the rows above
// have shifted down into it. s must be a value the caller owns.
func (e *Engine) lock(s State) State {
	for _, c := range s.Piece.Cells() {
		if c.Y >= 0 {
			s.Board[c.Y][c.X] = s.Piece.Color
		}
	}

	for y := e.cfg.Height - 1; y >= 0; y-- {
		if !s.Board.rowFull(y) {
			continue
		}
		copy(s.Board[1:y+1], s.Board[:y])
		s.Board[0] = make([]core.Color, e.cfg.Width)
		s.Score += e.cfg.LinePoints
		s.Lines++
		y++
	}

	return e.spawn(s)
}
