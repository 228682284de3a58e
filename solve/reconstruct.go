package solve

import "github.com/katalvlaran/gauss/dense"

// LUReconstructInPlace — inverse of LUInPlace.
//
// Description:
//
//	Rebuilds the pre-factorization matrix from a packed L/U buffer by
//	replaying LUInPlace's updates in exactly reverse order: steps run
//	k = n-1..0, and within each step the L column is restored before the
//	U row (the mirror image of LUInPlace finalizing the U row first).
//	Running LUInPlace then LUReconstructInPlace on any square buffer is
//	an identity up to floating-point rounding.
//
// Algorithm Outline, for k = n-1..0:
//  1. Restore column k below the diagonal, rows i > k:
//     A[i][k] *= A[k][k]                    (undo the divide by U[k][k])
//     A[i][k] += Σ_{j<k} A[i][j]·A[j][k]    (add back cross terms)
//  2. Restore row k on/above the diagonal, columns i ≥ k:
//     A[k][i] += Σ_{j<k} A[k][j]·A[j][i]
//
// Contract:
//   - a must be square and hold LUInPlace's packing; no check is performed.
//   - Contains no division, so it cannot introduce non-finite values on
//     its own — garbage in (from a failed factorization) stays garbage out.
//
// Complexity: O(n³) time.
func LUReconstructInPlace(a *dense.Dense) {
	n := a.Rows()
	rows := a.RowViews()
	var k, i, j int

	for k = n - 1; k >= 0; k-- {
		// Undo step k's L column: multiply back by the pivot, then re-add
		// the Schur cross terms that LUInPlace subtracted.
		for i = k + 1; i < n; i++ {
			rows[i][k] *= rows[k][k]
			for j = 0; j < k; j++ {
				rows[i][k] += rows[i][j] * rows[j][k]
			}
		}
		// Undo step k's U row.
		for i = k; i < n; i++ {
			for j = 0; j < k; j++ {
				rows[k][i] += rows[k][j] * rows[j][i]
			}
		}
	}
}

// Reconstruct is the checked facade over LUReconstructInPlace.
// Stage 1 (Validate): a non-nil and square.
// Stage 2 (Execute): run the raw kernel in place.
// Stage 3 (Verify): unless disabled, report dense.ErrNonFinite when the
// input already carried NaN/±Inf from a failed factorization — the
// reconstruction itself never divides.
func Reconstruct(a *dense.Dense, opts ...Option) error {
	if err := dense.ValidateNotNil(a); err != nil {
		return solveErrorf(opReconstruct, err)
	}
	if err := dense.ValidateSquare(a); err != nil {
		return solveErrorf(opReconstruct, err)
	}
	cfg := gatherOptions(opts...)

	LUReconstructInPlace(a)

	if cfg.finiteCheck && !dense.IsFinite(a) {
		return solveErrorf(opReconstruct, dense.ErrNonFinite)
	}

	return nil
}
