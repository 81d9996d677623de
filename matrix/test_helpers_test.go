// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/random"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from row-major values.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromData(r, c, vals)
	if err != nil {
		tb.Fatalf("NewFromData(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	I, err := matrix.Identity(n)
	if err != nil {
		tb.Fatalf("Identity(%d): %v", n, err)
	}

	return I
}

// MustMul RETURNS a×b or fails the test.
func MustMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		tb.Fatalf("Mul: %v", err)
	}

	return p
}

// RequireMatrixInDelta ASSERTS equal shapes and |got-want| <= delta per element.
// The message names the first offending coordinate.
func RequireMatrixInDelta(tb testing.TB, want, got *matrix.Dense, delta float64) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			require.InDelta(tb, MustAt(tb, want, i, j), MustAt(tb, got, i, j), delta, "at (%d,%d)", i, j)
		}
	}
}

// RandomDense RETURNS an r×c matrix of N(0,1) draws from a seeded source.
func RandomDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Random(r, c, random.New(seed))
	if err != nil {
		tb.Fatalf("Random(%d,%d): %v", r, c, err)
	}

	return m
}

// WellConditioned RETURNS MᵀM + n·I for a random M, which is symmetric
// positive definite with eigenvalues >= n.
func WellConditioned(tb testing.TB, n int, seed uint64) *matrix.Dense {
	tb.Helper()
	m := RandomDense(tb, n, n, seed)
	a := MustMul(tb, m.Transpose(), m)
	shift := MustIdentity(tb, n)
	shift.ScaleInPlace(float64(n))
	require.NoError(tb, a.AddInPlace(shift))

	return a
}

// GonumOf COPIES m into a gonum *mat.Dense for reference comparisons.
func GonumOf(m *matrix.Dense) *mat.Dense { return m.ToGonum() }
