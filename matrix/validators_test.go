// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrSizeMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrSizeMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrInvalidShape)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 1, 1)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrSizeMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
}

func TestValidateVectors(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVector(MustDense(t, 1, 4)))
	require.NoError(t, matrix.ValidateVector(MustDense(t, 4, 1)))
	require.ErrorIs(t, matrix.ValidateVector(MustDense(t, 2, 2)), matrix.ErrInvalidShape)
	require.ErrorIs(t, matrix.ValidateVector(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateColumnVector(MustDense(t, 3, 1), 3))
	require.ErrorIs(t, matrix.ValidateColumnVector(MustDense(t, 1, 3), 3), matrix.ErrSizeMismatch)
	require.ErrorIs(t, matrix.ValidateColumnVector(MustDense(t, 2, 1), 3), matrix.ErrSizeMismatch)
	require.ErrorIs(t, matrix.ValidateColumnVector(nil, 3), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite(MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, math.Inf(-1)))
	err := matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "[1,2]")
}
