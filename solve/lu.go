package solve

import "github.com/katalvlaran/gauss/dense"

// LUInPlace — packed LU factorization without pivoting.
//
// Description:
//
//	Factors A = L·U inside A's own storage: U lands on and above the
//	diagonal, L strictly below it with an implicit unit diagonal.
//	The update order is column-incremental (Crout/Doolittle style),
//	deliberately different from GaussInPlace's rank-1 trailing update:
//	each step finalizes one row of U and one column of L, and every
//	entry overwrites its source only after the source is no longer
//	needed. That discipline is what makes the factorization exactly
//	reversible by LUReconstructInPlace.
//
// Algorithm Outline, for k = 0..n-1:
//  1. Row k of U, columns i ≥ k:
//     A[k][i] -= Σ_{j<k} A[k][j]·A[j][i]   (L[k][j]·U[j][i])
//  2. Column k of L, rows i > k:
//     A[i][k] -= Σ_{j<k} A[i][j]·A[j][k]   (L[i][j]·U[j][k])
//     A[i][k] /= A[k][k]                    (divide by U[k][k])
//
// Contract:
//   - a must be square; no check is performed.
//   - A zero U[k][k] encountered by a later column division yields
//     NaN/±Inf with no error raised; no pivoting protects this path.
//
// Complexity: O(n³) time.
func LUInPlace(a *dense.Dense) {
	n := a.Rows()
	rows := a.RowViews()
	var k, i, j int

	for k = 0; k < n; k++ {
		// Finalize row k of U against the already-final rows of L above.
		for i = k; i < n; i++ {
			for j = 0; j < k; j++ {
				rows[k][i] -= rows[k][j] * rows[j][i]
			}
		}
		// Finalize column k of L against the already-final columns of U.
		for i = k + 1; i < n; i++ {
			for j = 0; j < k; j++ {
				rows[i][k] -= rows[i][j] * rows[j][k]
			}
			rows[i][k] /= rows[k][k]
		}
	}
}

// Factor is the checked facade over LUInPlace.
// Stage 1 (Validate): a non-nil and square.
// Stage 2 (Execute): run the raw kernel in place.
// Stage 3 (Verify): unless disabled, report dense.ErrNonFinite if the
// packed factor contains NaN/±Inf, or ErrSingular if it is finite but
// carries an exactly zero U diagonal entry (possible only when no row
// below needed to divide by it, e.g. a zero in the last pivot position).
func Factor(a *dense.Dense, opts ...Option) error {
	if err := dense.ValidateNotNil(a); err != nil {
		return solveErrorf(opFactor, err)
	}
	if err := dense.ValidateSquare(a); err != nil {
		return solveErrorf(opFactor, err)
	}
	cfg := gatherOptions(opts...)

	LUInPlace(a)

	if cfg.finiteCheck {
		if !dense.IsFinite(a) {
			return solveErrorf(opFactor, dense.ErrNonFinite)
		}
		if err := checkUDiagonal(a); err != nil {
			return solveErrorf(opFactor, err)
		}
	}

	return nil
}

// Unpack materializes explicit L and U matrices from a packed factor.
// L gets the strict lower triangle of a plus a unit diagonal; U gets the
// upper triangle including the diagonal; the packed buffer is not mutated.
// This is the safe alternative to reading the aliased regions directly.
//
// Errors: dense.ErrNilMatrix, dense.ErrNonSquare.
// Complexity: O(n²) time and memory.
func Unpack(a *dense.Dense) (l, u *dense.Dense, err error) {
	if err = dense.ValidateNotNil(a); err != nil {
		return nil, nil, solveErrorf(opUnpack, err)
	}
	if err = dense.ValidateSquare(a); err != nil {
		return nil, nil, solveErrorf(opUnpack, err)
	}

	n := a.Rows()
	// New cannot fail here: n ≥ 1 is guaranteed by construction of a.
	l, _ = dense.New(n, n)
	u, _ = dense.New(n, n)

	src := a.RowViews()
	lr := l.RowViews()
	ur := u.RowViews()
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			lr[i][j] = src[i][j]
		}
		lr[i][i] = 1 // the packed layout keeps L's unit diagonal implicit
		for j := i; j < n; j++ {
			ur[i][j] = src[i][j]
		}
	}

	return l, u, nil
}

// checkUDiagonal returns ErrSingular when the packed U diagonal holds an
// exact zero. Shared by the Factor and FactorPivoted post-checks.
func checkUDiagonal(a *dense.Dense) error {
	rows := a.RowViews()
	for i := range rows {
		if rows[i][i] == 0 {
			return ErrSingular
		}
	}

	return nil
}
