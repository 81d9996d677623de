// SPDX-License-Identifier: MIT
// Package matrix provides free-function arithmetic over Dense values:
// matrix⊙matrix and symmetric scalar/matrix forms of + − × ÷, plus transpose.
// All functions validate first and return a freshly allocated result; operands
// are never mutated.
//
// Purpose:
//   - Give every operator of the engine a named, error-returning Go function.
//   - Build scalar broadcasting and matrix division atop the Dense primitives
//     (AddInPlace, ScaleInPlace, Inverse) so there is one arithmetic core.
//
// Notes:
//   - Scalar ± matrix broadcasts the scalar into a same-shape matrix first.
//   - Matrix ÷ matrix is lhs × rhs⁻¹; scalar ÷ matrix is scalar × matrix⁻¹.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScalarSub = "ScalarSub"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opScalarDiv = "ScalarDiv"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrSizeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	_ = res.AddInPlace(b) // shapes validated above

	return res, nil
}

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrSizeMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	_ = res.SubInPlace(b)

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B,
// C[r,c] = Σ_k A[r,k]·B[k,c].
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loops over the row-major buffers so B is read by rows.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", rowsOf(a), colsOf(a), rowsOf(b), colsOf(b), err))
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// rowsOf/colsOf tolerate nil so error messages never dereference nil.
func rowsOf(m *Dense) int {
	if m == nil {
		return 0
	}
	return m.r
}

func colsOf(m *Dense) int {
	if m == nil {
		return 0
	}
	return m.c
}

// Div computes lhs × rhs⁻¹.
//
// Errors:
//   - Everything Inverse returns for rhs (ErrInvalidShape, ErrSingular),
//     then ErrSizeMismatch from the product.
func Div(lhs, rhs *Dense) (*Dense, error) {
	if lhs == nil || rhs == nil {
		return nil, matrixErrorf(opDiv, ErrNilMatrix)
	}
	inv, err := rhs.Inverse()
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res, err := Mul(lhs, inv)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return res, nil
}

// AddScalar computes m + s (equivalently s + m) by broadcasting s into a
// same-shape matrix and adding it.
// Errors: ErrNilMatrix.
func AddScalar(m *Dense, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}
	res, _ := NewFilled(m.r, m.c, s) // m has a valid shape
	_ = res.AddInPlace(m)

	return res, nil
}

// SubScalar computes m − s as (−s) + m.
// Errors: ErrNilMatrix.
func SubScalar(m *Dense, s float64) (*Dense, error) {
	res, err := AddScalar(m, -s)
	if err != nil {
		return nil, matrixErrorf(opSubScalar, err)
	}

	return res, nil
}

// ScalarSub computes s − m by broadcasting s and subtracting m.
// Errors: ErrNilMatrix.
func ScalarSub(s float64, m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarSub, err)
	}
	res, _ := NewFilled(m.r, m.c, s)
	_ = res.SubInPlace(m)

	return res, nil
}

// Scale returns s·m (equivalently m·s).
// Errors: ErrNilMatrix.
func Scale(m *Dense, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	res.ScaleInPlace(s)

	return res, nil
}

// DivScalar returns m / s.
// Errors: ErrNilMatrix, ErrDivideByZero (s == 0).
func DivScalar(m *Dense, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	res := m.Clone()
	if err := res.DivInPlace(s); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}

	return res, nil
}

// ScalarDiv returns s · m⁻¹.
// Errors: ErrNilMatrix, plus everything Inverse returns.
func ScalarDiv(s float64, m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}
	res, err := m.Inverse()
	if err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}
	res.ScaleInPlace(s)

	return res, nil
}

// Transpose returns a new Cols×Rows matrix with out[j,i] = m[i,j].
// Pure; the receiver is not modified. Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res
}

// Transpose is the free-function form of (*Dense).Transpose.
// Errors: ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// MulChain multiplies the operands left to right: ms[0] × ms[1] × … .
// Errors: ErrInvalidDimensions (no operands), plus everything Mul returns.
func MulChain(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := ms[0].Clone()
	var err error
	for _, next := range ms[1:] {
		if acc, err = Mul(acc, next); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
