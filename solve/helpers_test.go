// Package solve_test: shared fixtures for the kernel test suites.
package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gauss/dense"
)

// mustDense builds a Dense from explicit rows, failing the test on error.
func mustDense(t *testing.T, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randSquare returns a seeded random n×n matrix with a boosted diagonal,
// so the natural pivots of the unpivoted kernels stay well away from zero.
func randSquare(t *testing.T, n int, seed int64) *dense.Dense {
	t.Helper()
	m, err := dense.New(n, n)
	require.NoError(t, err)
	require.NoError(t, dense.FillUniform(m, -1, 1, seed))

	rows := m.RowViews()
	for i := 0; i < n; i++ {
		rows[i][i] += float64(n) + 1 // diagonal dominance
	}

	return m
}

// toGonum converts a Dense into a gonum mat.Dense so reference products
// come from an independent implementation, not the code under test.
func toGonum(t *testing.T, d *dense.Dense) *mat.Dense {
	t.Helper()
	r, c := d.Rows(), d.Cols()
	flat := make([]float64, 0, r*c)
	for _, row := range d.RowViews() {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}
