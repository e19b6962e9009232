package pacman

import (
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// scriptRand replays fixed values, then returns zero.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func oneGhost(at core.Point) Config {
	cfg := DefaultConfig()
	cfg.Ghosts = []Ghost{{Pos: at, Color: core.ColorRed}}
	return cfg
}

func TestClassicMaze(t *testing.T) {
	m := ClassicMaze{Width: 15, Height: 15}
	tests := []struct {
		p    core.Point
		wall bool
	}{
		{core.Pt(0, 7), true},
		{core.Pt(14, 14), true},
		{core.Pt(3, 4), true},
		{core.Pt(11, 10), true},
		{core.Pt(6, 3), true},
		{core.Pt(9, 11), true},
		{core.Pt(7, 6), true},
		{core.Pt(7, 8), true},
		{core.Pt(7, 7), false},
		{core.Pt(1, 1), false},
		{core.Pt(3, 7), false},
		{core.Pt(4, 3), false},
	}
	for _, tc := range tests {
		if got := m.IsWall(tc.p); got != tc.wall {
			t.Errorf("IsWall(%+v) = %v, expected %v", tc.p, got, tc.wall)
		}
	}
}

func TestStartStocksDots(t *testing.T) {
	e := NewEngine(DefaultConfig(), &scriptRand{})
	s := e.Start()

	// 169 interior cells, 24 interior walls, 5 start cells.
	if len(s.Dots) != 140 {
		t.Errorf("dots = %d, expected 140", len(s.Dots))
	}
	if s.HasDot(core.Pt(7, 7)) || s.HasDot(core.Pt(1, 1)) || s.HasDot(core.Pt(0, 0)) {
		t.Error("dots placed on a start or wall cell")
	}
	if s.Status != StatusPlaying || !s.Direction.IsZero() {
		t.Errorf("unexpected start state: %v %+v", s.Status, s.Direction)
	}
}

func TestPlayerTick(t *testing.T) {
	e := NewEngine(DefaultConfig(), &scriptRand{})
	s := e.Start()

	if next := e.PlayerTick(s); next.Player != s.Player {
		t.Error("player moved without a heading")
	}

	s = e.SetDirection(s, core.DirLeft)
	s = e.PlayerTick(s)
	if s.Player != core.Pt(6, 7) || s.Score != 10 || len(s.Dots) != 139 {
		t.Errorf("after eating: player %+v score %d dots %d", s.Player, s.Score, len(s.Dots))
	}

	s = e.SetDirection(s, core.DirRight)
	s = e.PlayerTick(s)
	if s.Score != 10 {
		t.Errorf("start cell has no dot, score = %d", s.Score)
	}
}

func TestPlayerBlockedKeepsHeading(t *testing.T) {
	e := NewEngine(DefaultConfig(), &scriptRand{})
	s := e.SetDirection(e.Start(), core.DirUp)

	s = e.PlayerTick(s)

	if s.Player != core.Pt(7, 7) {
		t.Errorf("player walked into a wall: %+v", s.Player)
	}
	if s.Direction != core.DirUp {
		t.Error("heading should survive a blocked move")
	}
}

func TestSetDirectionIgnoredWhileWaiting(t *testing.T) {
	e := NewEngine(DefaultConfig(), &scriptRand{})
	s := e.SetDirection(e.Initial(), core.DirLeft)
	if !s.Direction.IsZero() {
		t.Error("direction stored before start")
	}
}

func TestGhostChaseTieBreak(t *testing.T) {
	e := NewEngine(oneGhost(core.Pt(1, 1)), &scriptRand{floats: []float64{0.1}})
	s := e.GhostTick(e.Start())

	// Down and right are both 11 from (7,7); down comes first.
	if s.Ghosts[0].Pos != core.Pt(1, 2) {
		t.Errorf("ghost = %+v, expected (1,2)", s.Ghosts[0].Pos)
	}
}

func TestGhostRandomBranch(t *testing.T) {
	e := NewEngine(oneGhost(core.Pt(1, 1)), &scriptRand{floats: []float64{0.9}, ints: []int{1}})
	s := e.GhostTick(e.Start())

	// Valid moves in order are down, right; index 1 is right.
	if s.Ghosts[0].Pos != core.Pt(2, 1) {
		t.Errorf("ghost = %+v, expected (2,1)", s.Ghosts[0].Pos)
	}
}

func TestGhostChasesPlayer(t *testing.T) {
	e := NewEngine(oneGhost(core.Pt(5, 7)), &scriptRand{})
	s := e.GhostTick(e.Start())
	if s.Ghosts[0].Pos != core.Pt(6, 7) {
		t.Errorf("ghost = %+v, expected (6,7)", s.Ghosts[0].Pos)
	}
}

func TestGhostsStayOnOpenCells(t *testing.T) {
	e := NewEngine(DefaultConfig(), core.NewRand(99))
	s := e.Start()
	dirs := []core.Point{core.DirLeft, core.DirDown, core.DirRight, core.DirUp}

	for i := 0; i < 500; i++ {
		s = e.SetDirection(s, dirs[(i/7)%len(dirs)])
		s = e.PlayerTick(s)
		s = e.GhostTick(s)
		for _, g := range s.Ghosts {
			if !e.Open(g.Pos) {
				t.Fatalf("ghost on blocked cell %+v at tick %d", g.Pos, i)
			}
		}
		if !e.Open(s.Player) {
			t.Fatalf("player on blocked cell %+v", s.Player)
		}
	}
}

func TestGhostWithoutMovesStays(t *testing.T) {
	cfg := oneGhost(core.Pt(1, 1))
	cfg.Walls = NewLayoutMaze([]string{
		"#####",
		"#.#.#",
		"###.#",
		"#...#",
		"#####",
	})
	cfg.Width, cfg.Height = 5, 5
	cfg.Player = core.Pt(3, 3)

	e := NewEngine(cfg, &scriptRand{})
	s := e.GhostTick(e.Start())
	if s.Ghosts[0].Pos != core.Pt(1, 1) {
		t.Errorf("boxed-in ghost moved to %+v", s.Ghosts[0].Pos)
	}
}

func TestResolve(t *testing.T) {
	e := NewEngine(oneGhost(core.Pt(1, 1)), &scriptRand{})

	tests := []struct {
		name     string
		ghostAt  core.Point
		noDots   bool
		expected Status
	}{
		{"nothing happens", core.Pt(1, 1), false, StatusPlaying},
		{"caught", core.Pt(7, 7), false, StatusLost},
		{"cleared", core.Pt(1, 1), true, StatusWon},
		{"cleared and caught", core.Pt(7, 7), true, StatusWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := e.Start()
			s.Ghosts[0].Pos = tc.ghostAt
			if tc.noDots {
				s.Dots = map[core.Point]struct{}{}
			}
			if got := e.Resolve(s).Status; got != tc.expected {
				t.Errorf("status = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	e := NewEngine(DefaultConfig(), core.NewRand(1))
	s := e.SetDirection(e.Start(), core.DirLeft)
	before := s.Clone()

	_ = e.PlayerTick(s)
	_ = e.GhostTick(s)

	if s.Player != before.Player || len(s.Dots) != len(before.Dots) || s.Score != before.Score {
		t.Fatal("player state changed")
	}
	for i := range s.Ghosts {
		if s.Ghosts[i] != before.Ghosts[i] {
			t.Fatalf("ghost %d changed", i)
		}
	}
}
