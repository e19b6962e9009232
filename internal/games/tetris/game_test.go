package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

func runtimeConfig(t *testing.T) core.RuntimeConfig {
	t.Helper()
	t.Setenv(config.ConfigDirEnv, t.TempDir())
	t.Chdir(t.TempDir())
	config.Shared.Clear()
	return core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 30, TickRate: 60}
}

func TestDeterminism(t *testing.T) {
	cfg := runtimeConfig(t)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		input.Clear()
		switch {
		case i == 0:
			input.Set(core.ActionConfirm)
		case i%45 == 10:
			input.Set(core.ActionLeft)
		case i%70 == 20:
			input.Set(core.ActionRotate)
		case i%90 == 30:
			input.Set(core.ActionDrop)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGravityAndInput(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(t))

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.Snapshot().Status != StatusPlaying || g.Snapshot().Pos.Y != 0 {
		t.Fatalf("unexpected start: %+v", g.Snapshot())
	}

	idle := core.NewInputFrame()
	for i := 0; i < 61; i++ {
		g.Step(idle)
	}
	// 500ms gravity over just over one second.
	if y := g.Snapshot().Pos.Y; y != 2 {
		t.Errorf("row after 1s = %d, expected 2", y)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	x := g.Snapshot().Pos.X
	g.Step(left)
	if g.Snapshot().Pos.X != x-1 {
		t.Errorf("left input did not move the piece")
	}

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	g.Step(drop)
	if g.Snapshot().Pos.Y != 0 || !strings.Contains(g.Snapshot().Board, "#") {
		t.Errorf("drop did not lock the piece: %+v", g.Snapshot())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(t))

	s := core.NewScreen(80, 30)
	g.Render(s)
	if !strings.Contains(s.String(), "Press Enter to start") {
		t.Error("waiting overlay missing")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)

	g.Render(s)
	if !strings.Contains(s.String(), "Paused") || !strings.Contains(s.String(), "Score: 0") {
		t.Errorf("paused screen:\n%s", s.String())
	}
}
