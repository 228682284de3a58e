// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package and re-wrapped by the solve facades. All functions MUST return
// these sentinels and tests MUST check them via errors.Is. No function
// panics on user-triggered error conditions.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Size-zero buffers are unrepresentable on purpose.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range. Public indexers (At/Set/RowView) MUST return this,
	// not panic.
	ErrIndexOutOfBounds = errors.New("dense: index out of bounds")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) or a
	// nil vector was used where a real buffer is required.
	ErrNilMatrix = errors.New("dense: nil matrix or vector")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MatVec where len(x) != Cols, or a distance between
	// different shapes.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. The solve kernels only accept square systems.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrNonFinite signals that a NaN or ±Inf value was detected where the
	// caller asked for finite output. The solve facades wrap this after
	// their post-call scan.
	ErrNonFinite = errors.New("dense: NaN or Inf encountered")

	// ErrBadInterval indicates a random-fill interval with hi <= lo.
	ErrBadInterval = errors.New("dense: interval upper bound must exceed lower bound")
)
