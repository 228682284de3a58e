// Package gauss is a compact toolkit for in-place dense linear-system
// kernels — Gaussian elimination, LU and pivoted LU factorization over
// caller-owned buffers.
//
// 🚀 What is gauss?
//
//	A small, deterministic library that brings together:
//		• Dense buffers: square-friendly row-major storage with safe accessors
//		• Solving: Gaussian elimination with back-substitution (A·x = b)
//		• Factorization: packed LU (Doolittle order) and its exact inverse
//		• Stability: LU with partial pivoting and a tracked row permutation
//		• Verification: MatVec, vector / Frobenius distances, finite checks
//
// ✨ Why choose gauss?
//
//   - Caller-owned memory – kernels mutate in place, never allocate or resize
//   - Two API levels – silent raw kernels, or checked facades with sentinel errors
//   - Deterministic – fixed loop orders, no global state, seeded randomness only
//   - Pure Go – no cgo, no assembly
//
// Under the hood, everything is organized under two subpackages:
//
//	dense/ — Dense matrix type, validators, metrics, random fill
//	solve/ — GaussInPlace, LUInPlace, LUReconstructInPlace, PLUInPlace
//	         and their checked facades Solve, Factor, Reconstruct, FactorPivoted
//
// Quick packed-LU picture for one 3×3 buffer after Factor:
//
//	    ⎡ u u u ⎤   upper triangle incl. diagonal = U
//	    ⎢ l u u ⎥   strict lower triangle         = L (unit diagonal implicit)
//	    ⎣ l l u ⎦
//
// Dive into the examples/ directory and each package's doc.go for the
// packing convention, failure semantics and worked demos.
//
//	go get github.com/katalvlaran/gauss
package gauss
