// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum.org/v1/gonum/mat so callers can hand results to
//     LAPACK-backed routines (and tests can use them as a reference).
//   - Both directions copy; no buffer is ever shared across the boundary.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.Data())
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions when src has a zero dimension.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %dx%d: %w", r, c, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
