// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const opCosine = "CosineSimilarity"

// CosineSimilarity returns ⟨a, b⟩ / (‖a‖·‖b‖) for two vectors of equal length.
// Row and column vectors may be mixed; only the element count must match.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (an operand is not a vector),
//     ErrSizeMismatch (lengths differ), ErrDivideByZero (a zero vector).
func CosineSimilarity(a, b *Dense) (float64, error) {
	if err := ValidateVector(a); err != nil {
		return 0, matrixErrorf(opCosine, err)
	}
	if err := ValidateVector(b); err != nil {
		return 0, matrixErrorf(opCosine, err)
	}
	if len(a.data) != len(b.data) {
		return 0, matrixErrorf(opCosine, fmt.Errorf("len %d vs %d: %w", len(a.data), len(b.data), ErrSizeMismatch))
	}
	na, nb := floats.Norm(a.data, 2), floats.Norm(b.data, 2)
	if na == 0 || nb == 0 {
		return 0, matrixErrorf(opCosine, ErrDivideByZero)
	}

	return floats.Dot(a.data, b.data) / (na * nb), nil
}

// Dot returns the inner product of two vectors of equal length.
// Row and column vectors may be mixed.
// Errors: ErrNilMatrix, ErrInvalidShape, ErrSizeMismatch.
func Dot(a, b *Dense) (float64, error) {
	if err := ValidateVector(a); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	if err := ValidateVector(b); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	if len(a.data) != len(b.data) {
		return 0, matrixErrorf("Dot", fmt.Errorf("len %d vs %d: %w", len(a.data), len(b.data), ErrSizeMismatch))
	}

	return floats.Dot(a.data, b.data), nil
}
