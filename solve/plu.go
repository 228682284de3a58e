package solve

import (
	"math"

	"github.com/katalvlaran/gauss/dense"
)

// PLUInPlace — packed LU factorization with partial pivoting.
//
// Description:
//
//	Factors P·A = L·U with the same packed layout as LUInPlace, while
//	recording the row permutation in the caller-owned buffer p:
//	after the call p[i] is the original row now occupying position i.
//	Electing the largest-magnitude candidate pivot per column keeps the
//	multipliers bounded by 1 in magnitude, which is what buys the
//	numerical stability the unpivoted kernels lack.
//
// Algorithm Outline:
//  1. p[i] = i for all i (identity permutation).
//  2. For each pivot column k = 0..n-1:
//     a. maxRow = argmax_{i≥k} |A[i][k]|   (partial pivoting)
//     b. if maxRow ≠ k: swap rows k and maxRow of A in full, and swap
//     p[k] with p[maxRow]
//     c. eliminate below the pivot exactly as GaussInPlace does:
//     A[i][k] /= A[k][k]; A[i][j] -= A[i][k]·A[k][j] for j > k
//
// Contract:
//   - a must be square with len(p) == Rows(); no check is performed.
//   - p is always left a bijection on {0..n-1}: only swaps touch it.
//   - There is no right-hand side on this path; it is a deliberate,
//     separate tool from GaussInPlace, not a drop-in stable replacement.
//   - If an entire trailing column is zero the elected pivot is zero and
//     the division yields NaN/±Inf, silently — detect by inspecting output.
//
// Complexity: O(n³) time, O(n²) row scans for pivot election.
func PLUInPlace(a *dense.Dense, p []int) {
	n := a.Rows()
	rows := a.RowViews()
	var k, i, j, maxRow int

	for i = 0; i < n; i++ {
		p[i] = i
	}

	for k = 0; k < n; k++ {
		// Elect the largest-magnitude candidate pivot in column k.
		maxRow = k
		for i = k + 1; i < n; i++ {
			if math.Abs(rows[i][k]) > math.Abs(rows[maxRow][k]) {
				maxRow = i
			}
		}

		// Swap full rows in the buffer and mirror the swap into p.
		if maxRow != k {
			rk, rm := rows[k], rows[maxRow]
			for j = 0; j < n; j++ {
				rk[j], rm[j] = rm[j], rk[j]
			}
			p[k], p[maxRow] = p[maxRow], p[k]
		}

		// Standard elimination restricted to this pivot.
		for i = k + 1; i < n; i++ {
			rows[i][k] /= rows[k][k]
			for j = k + 1; j < n; j++ {
				rows[i][j] -= rows[i][k] * rows[k][j]
			}
		}
	}
}

// FactorPivoted is the checked facade over PLUInPlace.
// Stage 1 (Validate): a non-nil and square.
// Stage 2 (Prepare): allocate the permutation buffer.
// Stage 3 (Execute): run the raw kernel in place.
// Stage 4 (Verify): unless disabled, report dense.ErrNonFinite for
// NaN/±Inf output, or ErrSingular for a finite factor with a zero U
// diagonal. The permutation is returned even alongside an error so the
// caller can inspect the partial state.
func FactorPivoted(a *dense.Dense, opts ...Option) ([]int, error) {
	if err := dense.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opPivoted, err)
	}
	if err := dense.ValidateSquare(a); err != nil {
		return nil, solveErrorf(opPivoted, err)
	}
	cfg := gatherOptions(opts...)

	p := make([]int, a.Rows())
	PLUInPlace(a, p)

	if cfg.finiteCheck {
		if !dense.IsFinite(a) {
			return p, solveErrorf(opPivoted, dense.ErrNonFinite)
		}
		if err := checkUDiagonal(a); err != nil {
			return p, solveErrorf(opPivoted, err)
		}
	}

	return p, nil
}

// IsPermutation reports whether p is a bijection on {0..len(p)-1}.
// This is the postcondition every pivoted factorization must uphold.
// Complexity: O(n) time and memory.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// PermuteRows builds P·A as a fresh matrix: row i of the result is row
// p[i] of a. Used to verify the P·A = L·U postcondition without mutating
// either operand.
//
// Errors: dense.ErrNilMatrix, dense.ErrDimensionMismatch (len(p) != rows,
// or p not a bijection).
// Complexity: O(n²) time and memory.
func PermuteRows(a *dense.Dense, p []int) (*dense.Dense, error) {
	if err := dense.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opPermute, err)
	}
	if err := dense.ValidatePermLen(p, a.Rows()); err != nil {
		return nil, solveErrorf(opPermute, err)
	}
	if !IsPermutation(p) {
		return nil, solveErrorf(opPermute, dense.ErrDimensionMismatch)
	}

	out, err := dense.New(a.Rows(), a.Cols())
	if err != nil {
		return nil, solveErrorf(opPermute, err)
	}
	src := a.RowViews()
	dst := out.RowViews()
	for i := range dst {
		copy(dst[i], src[p[i]])
	}

	return out, nil
}
