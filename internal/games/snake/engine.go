package snake

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Status is the lifecycle phase of a Snake round.
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

// Config fixes the grid and scoring of an engine instance.
type Config struct {
	Width, Height int
	Start         core.Point // initial single-cell body
	Food          core.Point // initial food cell
	Direction     core.Point // initial heading
	FoodPoints    int
	AvoidBody     bool // respawn food only on cells the body does not occupy
}

// DefaultConfig returns the classic 20×20 setup.
func DefaultConfig() Config {
	return Config{
		Width:      20,
		Height:     20,
		Start:      core.Pt(10, 10),
		Food:       core.Pt(15, 15),
		Direction:  core.DirUp,
		FoodPoints: 10,
	}
}

// State is an immutable snapshot of a round. Transitions return new values
// and never modify their input.
type State struct {
	Body      []core.Point // head at index 0
	Food      core.Point
	Direction core.Point // applied on the next tick
	Status    Status
	Score     int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Body = append([]core.Point(nil), s.Body...)
	return c
}

// Head returns the head cell.
func (s State) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Occupies reports whether any body segment is on p.
func (s State) Occupies(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Engine holds the fixed configuration and the random source for food placement.
type Engine struct {
	cfg Config
	rng core.Rand
}

// NewEngine creates a Snake engine.
func NewEngine(cfg Config, rng core.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) fresh(status Status) State {
	return State{
		Body:      []core.Point{e.cfg.Start},
		Food:      e.cfg.Food,
		Direction: e.cfg.Direction,
		Status:    status,
	}
}

// Initial returns the waiting state shown before the first round.
func (e *Engine) Initial() State {
	return e.fresh(StatusWaiting)
}

// Start begins a new round from any state.
func (e *Engine) Start() State {
	return e.fresh(StatusPlaying)
}

// SetDirection buffers a new heading for the next tick. A vertical heading is
// accepted only while the buffered heading is horizontal and vice versa, so
// the snake can never reverse into itself or stall. Ignored unless playing.
func (e *Engine) SetDirection(s State, dir core.Point) State {
	next := s.Clone()
	if s.Status != StatusPlaying {
		return next
	}
	switch {
	case dir.X == 0 && dir.Y != 0 && s.Direction.Y == 0:
		next.Direction = core.Pt(0, sign(dir.Y))
	case dir.Y == 0 && dir.X != 0 && s.Direction.X == 0:
		next.Direction = core.Pt(sign(dir.X), 0)
	}
	return next
}

// Tick advances the snake one cell. Hitting a wall or any current body
// segment (tail included) ends the round.
func (e *Engine) Tick(s State) State {
	next := s.Clone()
	if s.Status != StatusPlaying {
		return next
	}

	head := s.Head().Add(s.Direction)
	if !core.GridRect(e.cfg.Width, e.cfg.Height).ContainsPoint(head) || s.Occupies(head) {
		next.Status = StatusOver
		return next
	}

	next.Body = append([]core.Point{head}, next.Body...)
	if head == s.Food {
		next.Score += e.cfg.FoodPoints
		next.Food = e.placeFood(next)
	} else {
		next.Body = next.Body[:len(next.Body)-1]
	}
	return next
}

// placeFood picks the next food cell uniformly over the grid. With AvoidBody
// it picks uniformly over free cells, keeping the old position if none are free.
func (e *Engine) placeFood(s State) core.Point {
	if !e.cfg.AvoidBody {
		return core.Pt(e.rng.Intn(e.cfg.Width), e.rng.Intn(e.cfg.Height))
	}

	free := make([]core.Point, 0, max(0, e.cfg.Width*e.cfg.Height-len(s.Body)))
	for y := 0; y < e.cfg.Height; y++ {
		for x := 0; x < e.cfg.Width; x++ {
			if p := core.Pt(x, y); !s.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return s.Food
	}
	return free[e.rng.Intn(len(free))]
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
