package model

import "math/rand/v2"

// RandomSource is the uniform integer source consumed while seeding a grid.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n)
	IntN(n int) int
}

// NewSeededSource returns a deterministic PCG-backed source for the given seed
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
