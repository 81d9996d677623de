// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (optionally wrapped with an
// operation tag) and tests match them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Do not %w wrap these sentinels twice; wrap once at the detection site with
// matrixErrorf/denseErrorf and let callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> numeric (zero divisor,
// singular pivot, domain).

var (
	// ErrInvalidDimensions is returned when a requested shape is not positive,
	// or a literal has no rows/columns at all.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidShape signals that the operand's shape does not satisfy the
	// operation (square required, 1×1 scalar coercion, vector expected).
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrSizeMismatch indicates incompatible shapes between two operands,
	// e.g. Add of different shapes or Mul where a.Cols != b.Rows.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDivideByZero is returned by scalar division when the divisor is exactly zero.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrSingular is returned when elimination cannot find a usable pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidAxis is returned by Concatenate for an axis other than AxisRow/AxisCol.
	ErrInvalidAxis = errors.New("matrix: invalid axis")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDomain signals an elementwise function evaluated outside its domain
	// (e.g. Sqrt of a negative entry).
	ErrDomain = errors.New("matrix: argument outside function domain")
)
