// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row/column manipulation primitives used by elimination (RowMult, RowAdd,
//     SwapRows) and by the solvers (GetCol, SetRow, SetCol).
//   - Block extraction and assembly: GetSubMatrix, Copy, Concatenate, Minor.
//
// Determinism:
//   - Fixed i→j traversal everywhere; no hidden aliasing (results are fresh).

package matrix

import "fmt"

// Axis selects the direction of Concatenate.
type Axis int

const (
	// AxisRow stacks rows: the result has lhs.Rows+rhs.Rows rows.
	AxisRow Axis = 0
	// AxisCol stacks columns: the result has lhs.Cols+rhs.Cols columns.
	AxisCol Axis = 1
)

// Operation tags for row/column primitives.
const (
	opRowMult     = "RowMult"
	opRowAdd      = "RowAdd"
	opSwapRows    = "SwapRows"
	opGetRow      = "GetRow"
	opGetCol      = "GetCol"
	opSetRow      = "SetRow"
	opSetCol      = "SetCol"
	opSubMatrix   = "GetSubMatrix"
	opCopy        = "Copy"
	opConcatenate = "Concatenate"
	opMinor       = "Minor"
)

// Index error formats.
const (
	indexFmtRow    = "row %d of %d: %w"
	indexFmtCol    = "col %d of %d: %w"
	indexFmtOffset = "offset (%d,%d) block %dx%d into %dx%d: %w"
)

// RowMult scales row idx by s in place.
// Errors: ErrOutOfRange when idx >= Rows().
func (m *Dense) RowMult(idx int, s float64) error {
	if idx < 0 || idx >= m.r {
		return matrixErrorf(opRowMult, fmt.Errorf(indexFmtRow, idx, m.r, ErrOutOfRange))
	}
	row := m.data[idx*m.c : (idx+1)*m.c]
	for j := range row {
		row[j] *= s
	}

	return nil
}

// RowAdd adds a 1×Cols row vector to row idx in place.
//
// Errors:
//   - ErrNilMatrix (row nil), ErrSizeMismatch (row is not 1×Cols),
//     ErrOutOfRange (idx >= Rows()). m is unchanged on error.
func (m *Dense) RowAdd(idx int, row *Dense) error {
	if row == nil {
		return matrixErrorf(opRowAdd, ErrNilMatrix)
	}
	if row.r != 1 || row.c != m.c {
		return matrixErrorf(opRowAdd, fmt.Errorf("row %dx%d into %d cols: %w", row.r, row.c, m.c, ErrSizeMismatch))
	}
	if idx < 0 || idx >= m.r {
		return matrixErrorf(opRowAdd, fmt.Errorf(indexFmtRow, idx, m.r, ErrOutOfRange))
	}
	dst := m.data[idx*m.c : (idx+1)*m.c]
	for j, v := range row.data {
		dst[j] += v
	}

	return nil
}

// SwapRows exchanges rows i and k in place (no-op when i == k).
// Errors: ErrOutOfRange.
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(opSwapRows, fmt.Errorf(indexFmtRow, i, m.r, ErrOutOfRange))
	}
	if k < 0 || k >= m.r {
		return matrixErrorf(opSwapRows, fmt.Errorf(indexFmtRow, k, m.r, ErrOutOfRange))
	}
	if i == k {
		return nil
	}
	a := m.data[i*m.c : (i+1)*m.c]
	b := m.data[k*m.c : (k+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// GetRow returns a 1×Cols copy of row idx.
// Errors: ErrOutOfRange.
func (m *Dense) GetRow(idx int) (*Dense, error) {
	if idx < 0 || idx >= m.r {
		return nil, matrixErrorf(opGetRow, fmt.Errorf(indexFmtRow, idx, m.r, ErrOutOfRange))
	}

	return &Dense{r: 1, c: m.c, data: m.RawRow(idx)}, nil
}

// GetCol returns a Rows×1 copy of column idx.
// Errors: ErrOutOfRange.
func (m *Dense) GetCol(idx int) (*Dense, error) {
	if idx < 0 || idx >= m.c {
		return nil, matrixErrorf(opGetCol, fmt.Errorf(indexFmtCol, idx, m.c, ErrOutOfRange))
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+idx]
	}

	return &Dense{r: m.r, c: 1, data: out}, nil
}

// SetRow replaces row idx with the values of a column vector, laid out as a row.
//
// Inputs:
//   - src: an n×1 column vector with n == Cols() (the length of one row).
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch (src not a column vector of that length),
//     ErrOutOfRange (idx >= Rows()).
//
// Notes:
//   - Solvers pack eigenvectors with SetRow, so Eigen.Vectors() holds them as rows.
func (m *Dense) SetRow(idx int, src *Dense) error {
	if err := ValidateColumnVector(src, m.c); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	if idx < 0 || idx >= m.r {
		return matrixErrorf(opSetRow, fmt.Errorf(indexFmtRow, idx, m.r, ErrOutOfRange))
	}
	copy(m.data[idx*m.c:(idx+1)*m.c], src.data)

	return nil
}

// SetCol replaces column idx with the values of a Rows×1 column vector.
// Errors: ErrNilMatrix, ErrSizeMismatch, ErrOutOfRange.
func (m *Dense) SetCol(idx int, src *Dense) error {
	if err := ValidateColumnVector(src, m.r); err != nil {
		return matrixErrorf(opSetCol, err)
	}
	if idx < 0 || idx >= m.c {
		return matrixErrorf(opSetCol, fmt.Errorf(indexFmtCol, idx, m.c, ErrOutOfRange))
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+idx] = src.data[i]
	}

	return nil
}

// GetSubMatrix returns the bottom-right block starting at (startRow, startCol),
// i.e. rows startRow..Rows-1 and columns startCol..Cols-1.
//
// Errors:
//   - ErrOutOfRange when the start lies outside the matrix (an empty block
//     is not representable).
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Dense) GetSubMatrix(startRow, startCol int) (*Dense, error) {
	if startRow < 0 || startRow >= m.r {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf(indexFmtRow, startRow, m.r, ErrOutOfRange))
	}
	if startCol < 0 || startCol >= m.c {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf(indexFmtCol, startCol, m.c, ErrOutOfRange))
	}
	rows, cols := m.r-startRow, m.c-startCol
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		src := (startRow+i)*m.c + startCol
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out, nil
}

// Copy writes other into m with its top-left corner at (startRow, startCol),
// overwriting in place.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange when the block does not fit. m is unchanged on error.
func (m *Dense) Copy(startRow, startCol int, other *Dense) error {
	if other == nil {
		return matrixErrorf(opCopy, ErrNilMatrix)
	}
	if startRow < 0 || startCol < 0 || startRow+other.r > m.r || startCol+other.c > m.c {
		return matrixErrorf(opCopy, fmt.Errorf(indexFmtOffset,
			startRow, startCol, other.r, other.c, m.r, m.c, ErrOutOfRange))
	}
	for i := 0; i < other.r; i++ {
		dst := (startRow+i)*m.c + startCol
		copy(m.data[dst:dst+other.c], other.data[i*other.c:(i+1)*other.c])
	}

	return nil
}

// Concatenate stacks lhs and rhs along axis into a new matrix.
//
// Implementation:
//   - Stage 1: validate operands and the non-concatenation dimension.
//   - Stage 2: allocate the result and Copy both blocks into it.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidAxis,
//   - ErrSizeMismatch (AxisRow with different column counts, AxisCol with
//     different row counts).
//
// Complexity:
//   - Time O(r*c) of the result, Space O(r*c).
func Concatenate(lhs, rhs *Dense, axis Axis) (*Dense, error) {
	if lhs == nil || rhs == nil {
		return nil, matrixErrorf(opConcatenate, ErrNilMatrix)
	}
	var out *Dense
	switch axis {
	case AxisRow:
		if lhs.c != rhs.c {
			return nil, matrixErrorf(opConcatenate, fmt.Errorf("cols %d vs %d: %w", lhs.c, rhs.c, ErrSizeMismatch))
		}
		out = &Dense{r: lhs.r + rhs.r, c: lhs.c, data: make([]float64, (lhs.r+rhs.r)*lhs.c)}
		_ = out.Copy(0, 0, lhs)     // fits by construction
		_ = out.Copy(lhs.r, 0, rhs) // fits by construction
	case AxisCol:
		if lhs.r != rhs.r {
			return nil, matrixErrorf(opConcatenate, fmt.Errorf("rows %d vs %d: %w", lhs.r, rhs.r, ErrSizeMismatch))
		}
		out = &Dense{r: lhs.r, c: lhs.c + rhs.c, data: make([]float64, lhs.r*(lhs.c+rhs.c))}
		_ = out.Copy(0, 0, lhs)
		_ = out.Copy(0, lhs.c, rhs)
	default:
		return nil, matrixErrorf(opConcatenate, fmt.Errorf("axis %d: %w", axis, ErrInvalidAxis))
	}

	return out, nil
}

// Minor returns a copy of m with row `row` and column `col` removed.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrInvalidShape when m has a single row or column (the minor would be empty).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if row < 0 || row >= m.r {
		return nil, matrixErrorf(opMinor, fmt.Errorf(indexFmtRow, row, m.r, ErrOutOfRange))
	}
	if col < 0 || col >= m.c {
		return nil, matrixErrorf(opMinor, fmt.Errorf(indexFmtCol, col, m.c, ErrOutOfRange))
	}
	if m.r == 1 || m.c == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidShape)
	}
	out := &Dense{r: m.r - 1, c: m.c - 1, data: make([]float64, 0, (m.r-1)*(m.c-1))}
	var i, j int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j != col {
				out.data = append(out.data, m.data[i*m.c+j])
			}
		}
	}

	return out, nil
}
