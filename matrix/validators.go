// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape/nil checks.
//   - Keep kernels minimal by delegating guard logic here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap once more with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrSizeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrSizeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrInvalidShape.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrInvalidShape)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrSizeMismatch)
	}

	return nil
}

// ValidateVector ensures m is a row (1×n) or column (n×1) vector.
//
// Errors: ErrNilMatrix, ErrInvalidShape.
// Complexity: O(1).
func ValidateVector(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateVector", ErrNilMatrix)
	}
	if m.r != 1 && m.c != 1 {
		return validatorErrorf("ValidateVector", ErrInvalidShape)
	}

	return nil
}

// ValidateColumnVector ensures m is an n×1 column vector of the given length.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(1).
func ValidateColumnVector(m *Dense, n int) error {
	if m == nil {
		return validatorErrorf("ValidateColumnVector", ErrNilMatrix)
	}
	if m.c != 1 || m.r != n {
		return validatorErrorf("ValidateColumnVector", ErrSizeMismatch)
	}

	return nil
}

// ValidateFinite ensures m is non-nil and holds no NaN or ±Inf entry.
// The returned error names the first offending cell in row-major order.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	for idx, v := range m.data {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("[%d,%d]=%g: %w", idx/m.c, idx%m.c, v, ErrNaNInf))
		}
	}

	return nil
}
