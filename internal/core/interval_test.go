package core

import (
	"testing"
	"time"
)

func TestIntervalAdvance(t *testing.T) {
	tests := []struct {
		name   string
		period time.Duration
		step   time.Duration
		steps  int
		fired  int
	}{
		{"snake at 100 steps/s for 1.5s", 150 * time.Millisecond, 10 * time.Millisecond, 150, 10},
		{"gravity at 50 steps/s for 2s", 500 * time.Millisecond, 20 * time.Millisecond, 100, 4},
		{"step longer than period", 100 * time.Millisecond, 250 * time.Millisecond, 4, 10},
		{"never reaches period", time.Second, 10 * time.Millisecond, 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iv := NewInterval(tc.period)
			total := 0
			for i := 0; i < tc.steps; i++ {
				total += iv.Advance(tc.step)
			}
			if total != tc.fired {
				t.Errorf("fired %d times, expected %d", total, tc.fired)
			}
		})
	}
}

func TestIntervalIndependentTimers(t *testing.T) {
	player := NewInterval(120 * time.Millisecond)
	ghosts := NewInterval(200 * time.Millisecond)

	var p, g int
	for i := 0; i < 60; i++ {
		p += player.Advance(10 * time.Millisecond)
		g += ghosts.Advance(10 * time.Millisecond)
	}

	if p != 5 {
		t.Errorf("player fired %d times in 600ms, expected 5", p)
	}
	if g != 3 {
		t.Errorf("ghosts fired %d times in 600ms, expected 3", g)
	}
}

func TestIntervalReset(t *testing.T) {
	iv := NewInterval(100 * time.Millisecond)
	iv.Advance(90 * time.Millisecond)
	iv.Reset()

	if fired := iv.Advance(20 * time.Millisecond); fired != 0 {
		t.Errorf("Reset should drop accumulated time, fired %d", fired)
	}
}

func TestIntervalNonPositivePeriod(t *testing.T) {
	iv := NewInterval(0)
	if iv.Period() != time.Millisecond {
		t.Errorf("Period() = %v, expected 1ms", iv.Period())
	}

	iv.SetPeriod(-5)
	if iv.Period() != time.Millisecond {
		t.Errorf("SetPeriod(-5) should clamp to 1ms, got %v", iv.Period())
	}
}

func TestStepDuration(t *testing.T) {
	if d := (RuntimeConfig{TickRate: 50}).StepDuration(); d != 20*time.Millisecond {
		t.Errorf("StepDuration() = %v, expected 20ms", d)
	}
	if d := (RuntimeConfig{}).StepDuration(); d != time.Second/60 {
		t.Errorf("zero tick rate should default to 60/s, got %v", d)
	}
}
