package solve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gauss/dense"
	"github.com/katalvlaran/gauss/solve"
)

// TestFactor_KnownPacking verifies the packed factor of the reference
// matrix against hand-computed L and U values.
func TestFactor_KnownPacking(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, 3, -1},
		{4, 1, 2},
		{-2, 7, 2},
	})
	require.NoError(t, solve.Factor(a))

	// L = [[1,0,0],[2,1,0],[-1,-2,1]], U = [[2,3,-1],[0,-5,4],[0,0,9]],
	// packed into one buffer with L's unit diagonal implicit.
	want := [][]float64{
		{2, 3, -1},
		{2, -5, 4},
		{-1, -2, 9},
	}
	for i, row := range a.RowViews() {
		for j, v := range row {
			assert.InDelta(t, want[i][j], v, 1e-12, "packed A[%d][%d]", i, j)
		}
	}
}

// TestFactor_ProductRestoresOriginal unpacks L and U and multiplies them
// back with an independent implementation (gonum mat).
func TestFactor_ProductRestoresOriginal(t *testing.T) {
	a0 := mustDense(t, [][]float64{
		{2, 3, -1},
		{4, 1, 2},
		{-2, 7, 2},
	})
	a := a0.Clone()
	require.NoError(t, solve.Factor(a))

	l, u, err := solve.Unpack(a)
	require.NoError(t, err)

	var lu mat.Dense
	lu.Mul(toGonum(t, l), toGonum(t, u))
	ref := toGonum(t, a0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, ref.At(i, j), lu.At(i, j), 1e-9, "L·U[%d][%d]", i, j)
		}
	}
}

// TestFactorReconstruct_RoundTrip is the central round-trip property:
// Factor then Reconstruct must reproduce the original buffer within
// Frobenius distance 1e-6 for every tested size.
func TestFactorReconstruct_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a0 := randSquare(t, n, int64(300+n))
			a := a0.Clone()

			require.NoError(t, solve.Factor(a))
			require.NoError(t, solve.Reconstruct(a))

			dist, err := dense.FrobeniusDistance(a0, a)
			require.NoError(t, err)
			assert.Less(t, dist, 1e-6, "round-trip Frobenius distance")
		})
	}
}

// TestRawRoundTrip_MatchesFacades runs the raw kernels directly; the
// facades must add nothing to the arithmetic.
func TestRawRoundTrip_MatchesFacades(t *testing.T) {
	a0 := randSquare(t, 6, 42)
	a := a0.Clone()

	solve.LUInPlace(a)
	solve.LUReconstructInPlace(a)

	dist, err := dense.FrobeniusDistance(a0, a)
	require.NoError(t, err)
	assert.Less(t, dist, 1e-6)
}

// TestFactor_ScalarMatrix covers n=1: the factorization is the identity
// on a single nonzero entry.
func TestFactor_ScalarMatrix(t *testing.T) {
	a := mustDense(t, [][]float64{{7}})
	require.NoError(t, solve.Factor(a))

	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "1×1 packed factor is U = [a]")

	require.NoError(t, solve.Reconstruct(a))
	v, err = a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestFactor_ZeroPivot covers both singular shapes: a zero pivot that a
// later column divides by (non-finite output), and a trailing zero pivot
// nothing divides by (finite output, flagged ErrSingular).
func TestFactor_ZeroPivot(t *testing.T) {
	// A[0][0]=0 with a row below ⇒ division blows up.
	blown := mustDense(t, [][]float64{
		{0, 1},
		{1, 0},
	})
	err := solve.Factor(blown)
	assert.ErrorIs(t, err, dense.ErrNonFinite)
	assert.False(t, dense.IsFinite(blown))

	// Zero lands in the last U diagonal slot ⇒ finite but singular.
	trailing := mustDense(t, [][]float64{
		{1, 0},
		{0, 0},
	})
	err = solve.Factor(trailing)
	assert.ErrorIs(t, err, solve.ErrSingular)
	assert.True(t, dense.IsFinite(trailing))

	// Disabling the scan silences both.
	quiet := mustDense(t, [][]float64{
		{0, 1},
		{1, 0},
	})
	assert.NoError(t, solve.Factor(quiet, solve.WithoutFiniteCheck()))
}

// TestUnpack_Triangles verifies region extraction from the packed layout.
func TestUnpack_Triangles(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, 3, -1},
		{2, -5, 4},
		{-1, -2, 9},
	})
	l, u, err := solve.Unpack(a)
	require.NoError(t, err)

	wantL := [][]float64{
		{1, 0, 0},
		{2, 1, 0},
		{-1, -2, 1},
	}
	wantU := [][]float64{
		{2, 3, -1},
		{0, -5, 4},
		{0, 0, 9},
	}
	for i := 0; i < 3; i++ {
		lrow, err := l.RowView(i)
		require.NoError(t, err)
		urow, err := u.RowView(i)
		require.NoError(t, err)
		for j := 0; j < 3; j++ {
			assert.Equal(t, wantL[i][j], lrow[j], "L[%d][%d]", i, j)
			assert.Equal(t, wantU[i][j], urow[j], "U[%d][%d]", i, j)
		}
	}

	// Unpack reads, never mutates.
	packed := mustDense(t, [][]float64{
		{2, 3, -1},
		{2, -5, 4},
		{-1, -2, 9},
	})
	dist, err := dense.FrobeniusDistance(a, packed)
	require.NoError(t, err)
	assert.Zero(t, dist)
}

// TestFacades_ValidationErrors covers guards shared by Factor/Reconstruct/Unpack.
func TestFacades_ValidationErrors(t *testing.T) {
	assert.ErrorIs(t, solve.Factor(nil), dense.ErrNilMatrix)
	assert.ErrorIs(t, solve.Reconstruct(nil), dense.ErrNilMatrix)
	_, _, err := solve.Unpack(nil)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)

	rect, err := dense.New(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, solve.Factor(rect), dense.ErrNonSquare)
	assert.ErrorIs(t, solve.Reconstruct(rect), dense.ErrNonSquare)
	_, _, err = solve.Unpack(rect)
	assert.ErrorIs(t, err, dense.ErrNonSquare)
}
