// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Value semantics: a Dense exclusively owns its buffer; Clone is deep.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxFromRow = "FromRows" // ctor tag for literal construction
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "[\n"
	_fmtClose    = "]"
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both > 0 for every reachable value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Invariant: len(data) == r*c at all times. Every operation producing a new
// shape allocates a fresh buffer before populating it.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Errors: ErrInvalidDimensions.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFromData builds an r×c matrix from a row-major flat slice.
// The slice is copied; the caller keeps ownership of data.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//   - ErrSizeMismatch when len(data) != rows*cols.
func NewFromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData: len %d for %dx%d: %w", len(data), rows, cols, ErrSizeMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from a nested literal of row values.
//
// Implementation:
//   - Stage 1: validate at least one row with at least one column.
//   - Stage 2: validate every row has the length of the first one.
//   - Stage 3: append rows into a single flat buffer.
//
// Behavior highlights:
//   - Ragged input is rejected rather than padded or truncated.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or an empty first row).
//   - ErrSizeMismatch (ragged rows), wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRow, i, len(row), c, ErrSizeMismatch)
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// MustFromRows is like FromRows but panics on error.
// Intended for package-level literals and examples.
func MustFromRows(rows [][]float64) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSameSize reports whether m and other have identical (rows, cols).
func (m *Dense) IsSameSize(other *Dense) bool {
	return other != nil && m.r == other.r && m.c == other.c
}

// CanMultiply reports whether m×other is defined (m.Cols == other.Rows).
func (m *Dense) CanMultiply(other *Dense) bool {
	return other != nil && m.c == other.r
}

// indexOf bounds-checks (row,col) and computes the flat offset.
// Returns the bare sentinel; public methods wrap it with context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when row >= Rows() or col >= Cols() (or negative).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; mutations of the copy never reach m.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawRow returns a copy of row i as a plain slice (nil when i is out of range).
func (m *Dense) RawRow(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders bracketed rows with fixed-point values (DefaultPrecision digits):
//
//	[
//	[1.0000 2.0000]
//	[3.0000 4.0000]
//	]
//
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'f', DefaultPrecision, 64))
		}
		b.WriteString(_fmtRowClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
