// Package dense provides the caller-owned buffer types that the solve
// kernels operate on: a runtime-dimensioned, row-major Dense matrix plus
// plain []float64 vectors and []int permutations.
//
// The package covers:
//
//   - Dense with error-returning At/Set indexers and RowView/RowViews
//     accessors that alias the backing storage for in-place mutation.
//   - Centralized validators (ValidateNotNil, ValidateSquare,
//     ValidateVecLen, ValidatePermLen) used by the solve facades.
//   - Verification collaborators: MatVec, VectorDistance,
//     FrobeniusDistance, IsFinite / VectorIsFinite.
//   - Deterministic random fill for benchmark and demo harnesses.
//
// Ownership model: buffers are created and freed by the caller; nothing in
// this package (or in solve) retains a reference across calls, and no
// function resizes or reallocates a buffer handed to it. Mutating access
// goes through RowView slices so the flat index arithmetic never leaks
// out of the type.
//
// See the examples in solve and in the repository's examples/ directory
// for usage patterns.
package dense
