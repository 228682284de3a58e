// Package solve implements in-place dense linear-system kernels over
// caller-owned dense.Dense buffers: Gaussian elimination with
// back-substitution, packed LU factorization, its exact inverse
// (reconstruction), and LU with partial pivoting.
//
// Two API levels
//
//	Raw kernels   — GaussInPlace, LUInPlace, LUReconstructInPlace,
//	                PLUInPlace. No validation, no allocation, no error
//	                returns. A zero pivot produces IEEE NaN/±Inf which
//	                propagates silently through every dependent update.
//	Checked facades — Solve, Factor, Reconstruct, FactorPivoted. They
//	                validate shapes up front, run the matching raw kernel,
//	                then scan the output and surface non-finite results as
//	                ErrNonFinite sentinels (disable with
//	                WithoutFiniteCheck for benchmark-grade calls).
//
// Packed L/U convention
//
// All factorizations share one aliased layout inside the input buffer:
//
//	    ⎡ u u u ⎤   on/above the diagonal: U (upper triangular)
//	    ⎢ l u u ⎥   strictly below:        L (unit diagonal implicit)
//	    ⎣ l l u ⎦
//
// During GaussInPlace/PLUInPlace, entries below the diagonal at columns
// already eliminated hold multipliers (the structurally-zero value is not
// stored); entries at and right of the current pivot still hold partially
// eliminated coefficients. During LUInPlace, row k above the diagonal and
// column k below it are finalized together at step k and never touched
// again. Unpack materializes explicit L and U matrices when the aliased
// view is too easy to get wrong.
//
// Ownership & concurrency
//
// Kernels are synchronous and single-threaded, never retain buffers, never
// call each other, and are not safe for concurrent use on the same buffer.
//
// Failure policy
//
// No kernel raises an error for singular input. Exact or near-zero pivots
// yield non-finite values that the caller detects either via the facades'
// post-call scan or by computing a residual with the dense package's
// distance helpers. PLUInPlace reduces the risk by always electing the
// largest-magnitude candidate pivot, but a structurally singular matrix
// (a zero trailing column) still produces non-finite output.
package solve
