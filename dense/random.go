// Package dense: deterministic random fill for harnesses and benchmarks.

package dense

import (
	"fmt"
	"math/rand"
)

// FillUniform overwrites every element of m with a pseudo-random value
// drawn uniformly from [lo, hi), seeded deterministically.
// The same seed always produces the same matrix for a given shape.
// Complexity: O(r*c).
func FillUniform(m *Dense, lo, hi float64, seed int64) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("FillUniform: %w", err)
	}
	if hi <= lo {
		return fmt.Errorf("FillUniform: %w", ErrBadInterval)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range m.data {
		m.data[i] = lo + (hi-lo)*rng.Float64()
	}

	return nil
}

// FillVectorUniform overwrites every element of x with a pseudo-random
// value drawn uniformly from [lo, hi), seeded deterministically.
// Complexity: O(n).
func FillVectorUniform(x []float64, lo, hi float64, seed int64) error {
	if x == nil {
		return fmt.Errorf("FillVectorUniform: %w", ErrNilMatrix)
	}
	if hi <= lo {
		return fmt.Errorf("FillVectorUniform: %w", ErrBadInterval)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range x {
		x[i] = lo + (hi-lo)*rng.Float64()
	}

	return nil
}
