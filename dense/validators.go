// Package dense: canonical validation checks.
//
// Purpose:
//  - Provide a single, canonical source of truth for common guard checks.
//  - Keep the solve facades minimal by delegating nil/shape/length checks here.
//  - Return plain sentinel errors (no wrapping beyond the validator tag) so
//    call sites can wrap uniformly with their operation name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateSquare before any factorization; the kernels assume it.
//  - Use ValidateVecLen for right-hand sides and ValidatePermLen for P buffers.

package dense

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil (caller must ensure, typically via ValidateNotNil).
// Returns ErrNonSquare on violation.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Returns ErrNilMatrix for nil input, ErrDimensionMismatch for wrong length.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in in-place routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePermLen ensures the permutation buffer is non-nil and has length n.
// Only the length is checked here; bijectivity is a postcondition of the
// pivoted kernels, verified separately by solve.IsPermutation.
// Complexity: O(1).
func ValidatePermLen(p []int, n int) error {
	if p == nil {
		return validatorErrorf("ValidatePermLen", ErrNilMatrix)
	}
	if len(p) != n {
		return validatorErrorf("ValidatePermLen", ErrDimensionMismatch)
	}

	return nil
}
