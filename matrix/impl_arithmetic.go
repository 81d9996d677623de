// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place primitive mutators (AddInPlace, SubInPlace, ScaleInPlace,
//     DivInPlace) that the free-function operators and the elimination
//     kernels are built on.
//   - Value-returning elementwise transforms (Neg, Abs, Sqrt) that leave the
//     operand untouched.
//   - Approximate equality and 1×1 scalar coercion.
//
// Failure model:
//   - A failing in-place call returns before touching the receiver.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for in-place mutators.
const (
	opAddInPlace   = "AddInPlace"
	opSubInPlace   = "SubInPlace"
	opDivInPlace   = "DivInPlace"
	opSqrt         = "Sqrt"
	opScalar       = "Scalar"
	opApplyVisitor = "Apply"
)

// AddInPlace performs m += other elementwise.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch (shapes differ). m is unchanged on error.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddInPlace(other *Dense) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] += other.data[idx]
	}

	return nil
}

// SubInPlace performs m -= other elementwise.
// Errors: ErrNilMatrix, ErrSizeMismatch. m is unchanged on error.
func (m *Dense) SubInPlace(other *Dense) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] -= other.data[idx]
	}

	return nil
}

// ScaleInPlace multiplies every element by s.
func (m *Dense) ScaleInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// DivInPlace divides every element by s.
//
// Errors:
//   - ErrDivideByZero when s is exactly zero; m is unchanged.
func (m *Dense) DivInPlace(s float64) error {
	if s == 0 {
		return matrixErrorf(opDivInPlace, ErrDivideByZero)
	}
	m.ScaleInPlace(1 / s)

	return nil
}

// Neg returns a new matrix equal to -m. The receiver is not modified.
func (m *Dense) Neg() *Dense {
	out := m.Clone()
	out.ScaleInPlace(-1)

	return out
}

// Abs returns a new matrix of absolute values.
func (m *Dense) Abs() *Dense {
	out := m.Clone()
	for idx, v := range out.data {
		out.data[idx] = math.Abs(v)
	}

	return out
}

// Sqrt returns a new matrix of elementwise square roots.
//
// Errors:
//   - ErrDomain when any element is negative (wrapped with its coordinates).
func (m *Dense) Sqrt() (*Dense, error) {
	out := m.Clone()
	err := out.Apply(func(i, j int, v float64) (float64, error) {
		if v < 0 {
			return 0, denseErrorf(opSqrt, i, j, ErrDomain)
		}
		return math.Sqrt(v), nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics apply to a Clone and keep it on success.
func (m *Dense) Apply(f func(i, j int, v float64) (float64, error)) error {
	var i, j, base int
	var nv float64
	var err error
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv, err = f(i, j, m.data[base+j])
			if err != nil {
				return matrixErrorf(opApplyVisitor, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding elements differs by at most DefaultTolerance.
func (m *Dense) Equal(other *Dense) bool {
	return m.EqualTol(other, DefaultTolerance)
}

// EqualTol is Equal with an explicit absolute tolerance.
// A nil operand is never equal to anything, including another nil, and a
// NaN element never equals anything.
func (m *Dense) EqualTol(other *Dense, tol float64) bool {
	if m == nil || other == nil || !m.IsSameSize(other) {
		return false
	}
	for idx, v := range m.data {
		if !(math.Abs(v-other.data[idx]) <= tol) { // NaN never compares equal
			return false
		}
	}

	return true
}

// Scalar reads a 1×1 matrix as a plain float64.
//
// Errors:
//   - ErrInvalidShape for any other shape.
func (m *Dense) Scalar() (float64, error) {
	if m.r != 1 || m.c != 1 {
		return 0, matrixErrorf(opScalar, fmt.Errorf("shape %dx%d: %w", m.r, m.c, ErrInvalidShape))
	}

	return m.data[0], nil
}
