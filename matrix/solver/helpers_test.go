// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// mustRows builds a matrix from a literal or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustMul returns a×b or fails the test.
func mustMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(tb, err)

	return p
}

// symmetrize returns A + Aᵀ.
func symmetrize(tb testing.TB, a *matrix.Dense) *matrix.Dense {
	tb.Helper()
	s, err := matrix.Add(a, a.Transpose())
	require.NoError(tb, err)

	return s
}

// reconstruct returns Σ_k λ_k·v_k·v_kᵀ where v_k is row k of vectors.
func reconstruct(tb testing.TB, values, vectors *matrix.Dense) *matrix.Dense {
	tb.Helper()
	n := vectors.Rows()
	acc, err := matrix.Zeros(n, n)
	require.NoError(tb, err)
	for k := 0; k < n; k++ {
		row, err := vectors.GetRow(k)
		require.NoError(tb, err)
		lambda, err := values.At(k, 0)
		require.NoError(tb, err)
		outer := mustMul(tb, row.Transpose(), row)
		outer.ScaleInPlace(lambda)
		require.NoError(tb, acc.AddInPlace(outer))
	}

	return acc
}

// requireOrthonormal checks QᵀQ ≈ I for a square Q.
func requireOrthonormal(tb testing.TB, q *matrix.Dense, delta float64) {
	tb.Helper()
	I, err := matrix.Identity(q.Cols())
	require.NoError(tb, err)
	require.True(tb, mustMul(tb, q.Transpose(), q).EqualTol(I, delta), "QᵀQ != I:\n%v", q)
}
