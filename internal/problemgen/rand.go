package problemgen

import "math/rand/v2"

// Rand is the randomness source a generator consumes. *rand.Rand from
// math/rand/v2 satisfies it; tests substitute scripted sequences.
type Rand interface {
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// systemRand draws from the shared, automatically seeded source in
// math/rand/v2, so every process run sees fresh entropy.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }
