package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the adapter state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	Head      core.Point
	Food      core.Point
	Direction core.Point
	Status    Status
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.state.Score,
		Length:    len(g.state.Body),
		Head:      g.state.Head(),
		Food:      g.state.Food,
		Direction: g.state.Direction,
		Status:    g.state.Status,
		Paused:    g.paused,
	}
}
