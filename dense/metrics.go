// Package dense: verification collaborators.
// These functions are consumed by callers validating kernel output against
// tolerance thresholds (residuals, round-trip distances, finite checks).
// The kernels themselves never call into this file.

package dense

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MatVec computes y = m·x into a freshly allocated vector.
// Stage 1 (Validate): m non-nil, len(x) == Cols.
// Stage 2 (Execute): row-major dot products in fixed i→j order.
// Complexity: O(r*c) time, O(r) memory.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}

	y := make([]float64, m.r)
	var i, j int
	var sum float64
	for i = 0; i < m.r; i++ {
		sum = 0
		base := i * m.c
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// VectorDistance returns the Euclidean (2-norm) distance between x and y.
// Inputs must have equal length; neither is mutated.
// Complexity: O(n).
func VectorDistance(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, fmt.Errorf("VectorDistance: %w", ErrNilMatrix)
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("VectorDistance: %w", ErrDimensionMismatch)
	}

	return floats.Distance(x, y, 2), nil
}

// FrobeniusDistance returns the Frobenius distance between a and b:
// the 2-norm of the elementwise difference. Because both matrices are
// row-major over flat storage, this reduces to a vector distance over the
// backing slices. Neither operand is mutated.
// Complexity: O(r*c).
func FrobeniusDistance(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("FrobeniusDistance: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, fmt.Errorf("FrobeniusDistance: %w", err)
	}
	if a.r != b.r || a.c != b.c {
		return 0, fmt.Errorf("FrobeniusDistance: %w", ErrDimensionMismatch)
	}

	return floats.Distance(a.data, b.data, 2), nil
}

// IsFinite reports whether every element of m is finite (no NaN, no ±Inf).
// Used by the solve facades for their post-call scan.
// Complexity: O(r*c).
func IsFinite(m *Dense) bool {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// VectorIsFinite reports whether every element of x is finite.
// Complexity: O(n).
func VectorIsFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
