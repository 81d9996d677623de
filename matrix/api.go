// SPDX-License-Identifier: MIT
// Package: matrix (static factories)
//
// Purpose:
//   - Provide thin, intention-revealing constructors for common shapes:
//     Identity, Zeros, ZerosLike, IdentityLike, Diag and Random.
//   - Each factory delegates to NewDense for shape validation; none of them
//     changes the numeric policy of the kernels.
//
// Determinism:
//   - Every factory except Random is fully deterministic. Random is as
//     deterministic as the NormalSource it is given.

package matrix

// NormalSource yields independent samples of N(mean, std²).
// *random.Random satisfies it; tests may pass any deterministic stub.
type NormalSource interface {
	Gaussian(mean, std float64) float64
}

// Identity returns I_n (n×n, ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Zeros returns a rows×cols zero matrix. It is NewDense under an
// intention-revealing name.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrNilMatrix.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns the identity with the dimension of a square m.
// Errors: ErrNilMatrix, ErrInvalidShape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}

// Diag builds the n×n diagonal matrix whose diagonal is the vector v.
//
// Inputs:
//   - v: a row (1×n) or column (n×1) vector.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (v is not a vector).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Diag(v *Dense) (*Dense, error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf("Diag", err)
	}
	n := len(v.data)
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i, x := range v.data {
		out.data[i*n+i] = x
	}

	return out, nil
}

// Random returns a rows×cols matrix whose entries are independent standard
// normal draws from src, filled in row-major order.
//
// Errors: ErrInvalidDimensions for a non-positive shape. src must be non-nil.
func Random(rows, cols int, src NormalSource) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = src.Gaussian(0, 1)
	}

	return m, nil
}
