// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Aggregate queries over a Dense: Sum, Prod, Mean, MinCoeff, MaxCoeff,
//     Trace, Diagonal and the Euclidean (Frobenius) norm.
//
// Determinism & Performance:
//   - Single flat pass 0..n-1 over the row-major buffer; no allocations
//     except the Diagonal result.
//
// Conventions:
//   - Trace is defined only for square matrices (ErrInvalidShape otherwise).
//   - Diagonal returns the min(rows, cols) leading diagonal entries for any shape.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const opTrace = "Trace"

// Sum returns Σ m[i,j]. Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	return floats.Sum(m.data)
}

// Prod returns Π m[i,j]. Complexity: O(r*c).
func (m *Dense) Prod() float64 {
	return floats.Prod(m.data)
}

// Mean returns Sum()/(r*c).
func (m *Dense) Mean() float64 {
	return m.Sum() / float64(len(m.data))
}

// MinCoeff returns the smallest element.
func (m *Dense) MinCoeff() float64 {
	return floats.Min(m.data)
}

// MaxCoeff returns the largest element.
func (m *Dense) MaxCoeff() float64 {
	return floats.Max(m.data)
}

// Trace returns Σ m[i,i] of a square matrix.
//
// Errors:
//   - ErrInvalidShape when m is not square.
func (m *Dense) Trace() (float64, error) {
	if m.r != m.c {
		return 0, matrixErrorf(opTrace, fmt.Errorf("shape %dx%d: %w", m.r, m.c, ErrInvalidShape))
	}
	var t float64
	for i := 0; i < m.r; i++ {
		t += m.data[i*m.c+i]
	}

	return t, nil
}

// Diagonal returns the leading diagonal as a k×1 column vector, k = min(rows, cols).
func (m *Dense) Diagonal() *Dense {
	k := min(m.r, m.c)
	out := &Dense{r: k, c: 1, data: make([]float64, k)}
	for i := 0; i < k; i++ {
		out.data[i] = m.data[i*m.c+i]
	}

	return out
}

// Norm2 returns the Euclidean norm of all elements (the Frobenius norm for a
// matrix, the L2 norm for a vector).
func (m *Dense) Norm2() float64 {
	return floats.Norm(m.data, 2)
}

// Norm2 is the free-function form of (*Dense).Norm2; a nil matrix has norm 0.
func Norm2(m *Dense) float64 {
	if m == nil {
		return 0
	}

	return m.Norm2()
}

// Distance returns the Euclidean distance ‖a − b‖₂ between equally shaped matrices.
// Errors: ErrNilMatrix, ErrSizeMismatch.
func Distance(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return math.NaN(), matrixErrorf("Distance", err)
	}

	return floats.Distance(a.data, b.data, 2), nil
}
