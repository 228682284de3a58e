package solve

import "github.com/katalvlaran/gauss/dense"

// GaussInPlace — Gaussian elimination with back-substitution, no pivoting.
//
// Description:
//
//	Solves A·x = b for a square system, destroying both inputs:
//	on return b holds the solution x, and a holds the elimination
//	multipliers strictly below the diagonal with the reduced upper
//	triangular system on and above it.
//
// Algorithm Outline:
//  1. Forward elimination, pivots k = 0..n-1 in natural diagonal order:
//     for each row i > k
//     A[i][k] /= A[k][k]          (store multiplier; the eliminated
//     zero is structurally known)
//     A[i][j] -= A[i][k]·A[k][j]  for j > k (trailing-submatrix update)
//     b[i]    -= A[i][k]·b[k]
//  2. Back-substitution, i = n-1..0:
//     b[i] = (b[i] − Σ_{j>i} A[i][j]·b[j]) / A[i][i]
//
// Contract:
//   - a must be square with Rows() == len(b); no check is performed.
//   - Correctness requires every natural pivot A[k][k] to be nonzero.
//     A zero or near-zero pivot yields NaN/±Inf that propagates through
//     all later updates — no error is raised (see package doc). Callers
//     needing robustness should prefer PLUInPlace, which however does not
//     carry a right-hand side.
//   - No allocation beyond the O(n) row-view table.
//
// Complexity: O(n³) time.
func GaussInPlace(a *dense.Dense, b []float64) {
	n := a.Rows()
	rows := a.RowViews()
	var k, i, j int

	// Forward elimination: zero out column k below the pivot, folding the
	// same row operations into b.
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			rows[i][k] /= rows[k][k] // multiplier replaces the eliminated entry
			for j = k + 1; j < n; j++ {
				rows[i][j] -= rows[i][k] * rows[k][j]
			}
			b[i] -= rows[i][k] * b[k]
		}
	}

	// Back-substitution over the upper triangle, writing x into b.
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			b[i] -= rows[i][j] * b[j]
		}
		b[i] /= rows[i][i]
	}
}

// Solve is the checked facade over GaussInPlace.
// Stage 1 (Validate): a non-nil and square, len(b) == n.
// Stage 2 (Execute): run the raw kernel in place.
// Stage 3 (Verify): unless disabled, scan a and b for NaN/±Inf and report
// dense.ErrNonFinite — the post-call replacement for trapping the divide.
//
// On success b holds x; on ErrNonFinite both buffers hold the partially
// poisoned state, left for inspection.
//
// Errors: dense.ErrNilMatrix, dense.ErrNonSquare, dense.ErrDimensionMismatch,
// dense.ErrNonFinite (all errors.Is-matchable).
func Solve(a *dense.Dense, b []float64, opts ...Option) error {
	if err := dense.ValidateNotNil(a); err != nil {
		return solveErrorf(opSolve, err)
	}
	if err := dense.ValidateSquare(a); err != nil {
		return solveErrorf(opSolve, err)
	}
	if err := dense.ValidateVecLen(b, a.Rows()); err != nil {
		return solveErrorf(opSolve, err)
	}
	cfg := gatherOptions(opts...)

	GaussInPlace(a, b)

	if cfg.finiteCheck && (!dense.VectorIsFinite(b) || !dense.IsFinite(a)) {
		return solveErrorf(opSolve, dense.ErrNonFinite)
	}

	return nil
}
