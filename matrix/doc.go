// SPDX-License-Identifier: MIT

// Package matrix provides a small dense-matrix algebra engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with bounds-checked access,
//     in-place mutators (AddInPlace, ScaleInPlace, RowMult, RowAdd, ...)
//     and block helpers (GetSubMatrix, Copy, Concatenate, Minor).
//   - Free-function operators combining matrices and scalars (Add, Sub,
//     Mul, Div, AddScalar, ScalarSub, ScalarDiv, ...).
//   - Gauss–Jordan inversion (Inverse) and cofactor-expansion determinants
//     (Determinant).
//   - Factories (Identity, Zeros, Diag, Random) and gonum interop
//     (ToGonum, FromGonum).
//
// Eigen and singular value decompositions live in matrix/solver.
//
// Equality is approximate: Equal compares elementwise within
// DefaultTolerance because elimination and power iteration accumulate
// rounding error. Every failure is a wrapped sentinel from errors.go;
// match it with errors.Is.
//
// Determinant is O(n!) and only meant for small matrices.
//
// See the examples in this package for usage patterns.
package matrix
