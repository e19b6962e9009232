package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.ConfigDirEnv, t.TempDir())
	t.Chdir(t.TempDir())
	config.Shared.Clear()
}

func TestSimulateDeterministic(t *testing.T) {
	isolate(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 99}

	for _, id := range []string{"snake", "tetris", "pacman", "minesweeper"} {
		t.Run(id, func(t *testing.T) {
			a, err := registry.Create(id)
			if err != nil {
				t.Fatal(err)
			}
			b, _ := registry.Create(id)

			first := simulate(a, cfg, 240).String()
			second := simulate(b, cfg, 240).String()
			if first != second {
				t.Error("same seed produced different frames")
			}
			if strings.Contains(first, "Press Enter to start") {
				t.Error("game should have started")
			}
		})
	}
}

func TestShotCommandWritesPNG(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "tetris.png")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"shot", "tetris", "--seed", "3", "--steps", "60", "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("shot: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80*8 || b.Dy() != 30*16 {
		t.Errorf("image size = %dx%d", b.Dx(), b.Dy())
	}
	if !strings.Contains(stdout.String(), "seed 3") {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestShotCommandScale(t *testing.T) {
	tests := []struct {
		name  string
		scale string
		w, h  int
	}{
		{"double", "2", 80 * 8 * 2, 30 * 16 * 2},
		{"below one clamps", "0", 80 * 8, 30 * 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Cleanup(func() { flagShotScale = 1 })
			out := filepath.Join(t.TempDir(), "snake.png")

			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetArgs([]string{"shot", "snake", "--steps", "10", "--scale", tt.scale, "--out", out})
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("shot: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cfg, err := png.DecodeConfig(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if cfg.Width != tt.w || cfg.Height != tt.h {
				t.Errorf("image size = %dx%d, expected %dx%d", cfg.Width, cfg.Height, tt.w, tt.h)
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"list"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"Snake", "Tetris", "Pac-Man", "Minesweeper"} {
		if !strings.Contains(stdout.String(), title) {
			t.Errorf("list output missing %s", title)
		}
	}
}
