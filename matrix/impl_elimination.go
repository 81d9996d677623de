// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Inverse via Gauss–Jordan elimination on the augmented matrix [A | I].
//   - Determinant via recursive cofactor (Laplace) expansion along row 0.
//
// Both are built on the Dense primitives (Concatenate, SwapRows, RowMult,
// GetRow, RowAdd, GetSubMatrix) rather than on raw buffer arithmetic.
//
// Cost:
//   - Inverse is O(n³).
//   - Determinant is O(n!) and meant for small matrices only; there is no
//     LU-based determinant in this package.

package matrix

import (
	"fmt"
	"math"
)

const (
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
)

// Inverse computes m⁻¹ by Gauss–Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate square; build aug = [m | I] via Concatenate(AxisCol).
//   - Stage 2 (Gauss, top→bottom): for column i pick the row k ≥ i with the
//     largest |aug[k,i]|, swap it up, normalize it (RowMult), and eliminate the
//     entries below it (RowAdd of the scaled pivot row).
//   - Stage 3 (Jordan, bottom→top): eliminate the entries above every pivot.
//   - Stage 4: the right half of aug is m⁻¹ (GetSubMatrix(0, n)).
//
// Behavior highlights:
//   - The receiver is never modified; elimination runs on the augmented copy.
//   - A best pivot with |p| <= tol·max|m| makes the matrix singular, where tol
//     is DefaultPivotTolerance or WithPivotTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square), ErrNaNInf (non-finite entry),
//     ErrSingular (wrapped with the failing pivot column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Dense) Inverse(opts ...InverseOption) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherInverseOptions(opts...)
	n := m.r

	scale := m.Abs().MaxCoeff()
	if scale == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	threshold := o.pivotTol * scale

	eye, _ := Identity(n) // n > 0 for every reachable Dense
	aug, err := Concatenate(m, eye, AxisCol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var i, j, k, p int
	var best, v, f float64
	var pivotRow, scaled *Dense

	// Gauss elimination: normalize each pivot row, clear entries below it.
	for i = 0; i < n; i++ {
		p, best = i, -1
		for k = i; k < n; k++ {
			v, _ = aug.At(k, i)
			if math.Abs(v) > best {
				p, best = k, math.Abs(v)
			}
		}
		if best <= threshold {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot column %d (|p|=%g): %w", i, best, ErrSingular))
		}
		_ = aug.SwapRows(i, p)
		v, _ = aug.At(i, i)
		_ = aug.RowMult(i, 1/v)

		pivotRow, _ = aug.GetRow(i)
		for j = i + 1; j < n; j++ {
			f, _ = aug.At(j, i)
			if f == 0 {
				continue
			}
			scaled = pivotRow.Clone()
			scaled.ScaleInPlace(-f)
			_ = aug.RowAdd(j, scaled)
		}
	}

	// Jordan elimination: clear entries above each (already unit) pivot.
	for i = n - 1; i > 0; i-- {
		pivotRow, _ = aug.GetRow(i)
		for j = i - 1; j >= 0; j-- {
			f, _ = aug.At(j, i)
			if f == 0 {
				continue
			}
			scaled = pivotRow.Clone()
			scaled.ScaleInPlace(-f)
			_ = aug.RowAdd(j, scaled)
		}
	}

	inv, err := aug.GetSubMatrix(0, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Determinant computes det(m) by cofactor expansion along the first row:
//
//	det(m) = Σ_c (−1)^c · m[0,c] · det(minor(0,c))
//
// with base cases 1×1 → m[0,0] and 2×2 → a·d − b·c.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Do not use on large matrices.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(m), nil
}

// Det is the method form of Determinant.
func (m *Dense) Det() (float64, error) { return Determinant(m) }

// cofactorDet assumes a square, non-nil m.
func cofactorDet(m *Dense) float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	}

	var det float64
	sign := 1.0
	for c := 0; c < m.c; c++ {
		a := m.data[c]
		if a != 0 {
			minor, _ := m.Minor(0, c) // indices valid, m.r >= 3
			det += sign * a * cofactorDet(minor)
		}
		sign = -sign
	}

	return det
}
