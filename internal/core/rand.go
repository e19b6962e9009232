package core

import "math/rand"

// Rand is the random source consumed by game engines.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded Rand.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
