package snake

import (
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// seqRand replays fixed Intn results, then falls back to zero.
type seqRand struct {
	ints []int
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *seqRand) Float64() float64 { return 0 }

func playing(body []core.Point, dir core.Point, food core.Point) State {
	return State{
		Body:      body,
		Food:      food,
		Direction: dir,
		Status:    StatusPlaying,
	}
}

func TestTickMovesUp(t *testing.T) {
	e := NewEngine(DefaultConfig(), &seqRand{})
	s := e.Start()

	for i := 0; i < 5; i++ {
		s = e.Tick(s)
	}

	if s.Head() != core.Pt(10, 5) {
		t.Errorf("head = %+v, expected (10,5)", s.Head())
	}
	if len(s.Body) != 1 || s.Score != 0 || s.Status != StatusPlaying {
		t.Errorf("unexpected state after 5 ticks: %+v", s)
	}
}

func TestInitialIsWaiting(t *testing.T) {
	e := NewEngine(DefaultConfig(), &seqRand{})
	s := e.Initial()
	if s.Status != StatusWaiting {
		t.Fatalf("status = %v, expected waiting", s.Status)
	}
	if next := e.Tick(s); next.Head() != s.Head() {
		t.Error("tick must not move the snake while waiting")
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  core.Point
	}{
		{"top", core.Pt(5, 0), core.DirUp},
		{"bottom", core.Pt(5, 19), core.DirDown},
		{"left", core.Pt(0, 5), core.DirLeft},
		{"right", core.Pt(19, 5), core.DirRight},
	}

	e := NewEngine(DefaultConfig(), &seqRand{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := e.Tick(playing([]core.Point{tc.head}, tc.dir, core.Pt(15, 15)))
			if s.Status != StatusOver {
				t.Errorf("status = %v, expected over", s.Status)
			}
			if s.Head() != tc.head {
				t.Error("body must not move on a fatal tick")
			}
		})
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name     string
		current  core.Point
		input    core.Point
		expected core.Point
	}{
		{"reverse ignored", core.DirUp, core.DirDown, core.DirUp},
		{"same axis ignored", core.DirLeft, core.DirRight, core.DirLeft},
		{"turn accepted", core.DirUp, core.DirLeft, core.DirLeft},
		{"turn from horizontal", core.DirRight, core.DirDown, core.DirDown},
		{"zero ignored", core.DirUp, core.DirNone, core.DirUp},
	}

	e := NewEngine(DefaultConfig(), &seqRand{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := e.SetDirection(playing([]core.Point{core.Pt(5, 5)}, tc.current, core.Pt(0, 0)), tc.input)
			if s.Direction != tc.expected {
				t.Errorf("direction = %+v, expected %+v", s.Direction, tc.expected)
			}
		})
	}
}

func TestSetDirectionChecksBufferedHeading(t *testing.T) {
	e := NewEngine(DefaultConfig(), &seqRand{})
	s := playing([]core.Point{core.Pt(5, 5), core.Pt(5, 6)}, core.DirUp, core.Pt(0, 0))

	// Left then Down within one move: Down is checked against the buffered Left.
	s = e.SetDirection(s, core.DirLeft)
	s = e.SetDirection(s, core.DirDown)
	if s.Direction != core.DirDown {
		t.Errorf("direction = %+v, expected down", s.Direction)
	}
}

func TestEatGrowsAndScores(t *testing.T) {
	e := NewEngine(DefaultConfig(), &seqRand{ints: []int{3, 4}})
	s := playing([]core.Point{core.Pt(10, 10)}, core.DirUp, core.Pt(10, 9))

	s = e.Tick(s)

	if s.Score != 10 {
		t.Errorf("score = %d, expected 10", s.Score)
	}
	if len(s.Body) != 2 || s.Body[0] != core.Pt(10, 9) || s.Body[1] != core.Pt(10, 10) {
		t.Errorf("body = %+v", s.Body)
	}
	if s.Food != core.Pt(3, 4) {
		t.Errorf("food = %+v, expected (3,4)", s.Food)
	}
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	e := NewEngine(DefaultConfig(), &seqRand{})
	// A 2x2 loop: moving left puts the head on the current tail.
	body := []core.Point{core.Pt(5, 5), core.Pt(5, 6), core.Pt(4, 6), core.Pt(4, 5)}
	s := e.Tick(playing(body, core.DirLeft, core.Pt(0, 0)))
	if s.Status != StatusOver {
		t.Errorf("status = %v, expected over", s.Status)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	e := NewEngine(DefaultConfig(), &seqRand{})
	in := playing([]core.Point{core.Pt(10, 10), core.Pt(10, 11)}, core.DirUp, core.Pt(10, 9))
	before := in.Clone()

	_ = e.Tick(in)
	_ = e.SetDirection(in, core.DirLeft)

	if in.Direction != before.Direction || in.Score != before.Score || len(in.Body) != len(before.Body) {
		t.Fatal("input state changed")
	}
	for i := range in.Body {
		if in.Body[i] != before.Body[i] {
			t.Fatalf("body[%d] changed", i)
		}
	}
}

func TestAvoidBodyFood(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, Start: core.Pt(0, 1), Food: core.Pt(0, 0), Direction: core.DirUp, FoodPoints: 1, AvoidBody: true}
	e := NewEngine(cfg, &seqRand{ints: []int{0}})

	s := e.Tick(e.Start())

	// Body now covers (0,0) and (0,1); free cells are (1,0) and (1,1).
	if s.Food != core.Pt(1, 0) {
		t.Errorf("food = %+v, expected (1,0)", s.Food)
	}
	if s.Occupies(s.Food) {
		t.Error("food placed on the body")
	}
}
