// Package solve: sentinel error set and uniform facade wrapping.
// Raw kernels never return errors; everything here is facade surface.
// Shape/nil violations reuse the dense package sentinels (dense.ErrNilMatrix,
// dense.ErrNonSquare, dense.ErrDimensionMismatch, dense.ErrNonFinite) so a
// caller matches one sentinel regardless of which layer caught it.

package solve

import (
	"errors"
	"fmt"
)

// ErrSingular signals an exactly zero diagonal entry in the packed U factor
// after a factorization completed with finite values. This is the one
// singular case partial pivoting cannot repair into a usable solve: the
// factor exists but U is not invertible.
var ErrSingular = errors.New("solve: factorization has a zero pivot on the U diagonal")

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve       = "Solve"
	opFactor      = "Factor"
	opReconstruct = "Reconstruct"
	opPivoted     = "FactorPivoted"
	opUnpack      = "Unpack"
	opPermute     = "PermuteRows"
)

// solveErrorf wraps err with an operation tag, preserving the original
// error via %w. Keeps a stable "Op: underlying" shape for uniform
// reporting; use only when err != nil.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
