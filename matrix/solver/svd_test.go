// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/solver"
	"github.com/katalvlaran/lvmat/random"
)

// assemble returns U·S·Vᵀ.
func assemble(tb testing.TB, d *solver.SVD) *matrix.Dense {
	tb.Helper()
	out, err := matrix.MulChain(d.U(), d.S(), d.V().Transpose())
	require.NoError(tb, err)

	return out
}

// gonumSingularValues returns the decreasing singular values of m.
func gonumSingularValues(tb testing.TB, m *matrix.Dense) []float64 {
	tb.Helper()
	var g mat.SVD
	require.True(tb, g.Factorize(m.ToGonum(), mat.SVDNone))

	return g.Values(nil)
}

func TestSVD_Nil(t *testing.T) {
	t.Parallel()

	_, err := solver.NewSVD(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSVD_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{"tall 3x2", [][]float64{{1, 1}, {2, 2}, {2, 0}}, []float64{3.51926, 1.27076}},
		{"wide 2x3", [][]float64{{3, 1, 1}, {-1, 3, 1}}, []float64{3.46410, 3.16228}},
		{"square 1x1", [][]float64{{-2}}, []float64{2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRows(t, tc.rows)
			r, c := a.Shape()
			d, err := solver.NewSVD(a, solver.WithEpsilon(1e-10), solver.WithSource(random.New(2024)))
			require.NoError(t, err)
			require.True(t, d.Converged())

			ur, uc := d.U().Shape()
			sr, sc := d.S().Shape()
			vr, vc := d.V().Shape()
			require.Equal(t, []int{r, r, r, c, c, c}, []int{ur, uc, sr, sc, vr, vc})

			require.InDeltaSlice(t, tc.want, d.Values().Data(), 1e-5)
			require.True(t, assemble(t, d).Equal(a), "U·S·Vᵀ:\n%v", assemble(t, d))
			requireOrthonormal(t, d.U(), 1e-6)
			requireOrthonormal(t, d.V(), 1e-6)
		})
	}
}

// S carries σ on its diagonal and zero elsewhere.
func TestSVD_DiagonalS(t *testing.T) {
	t.Parallel()

	d, err := solver.NewSVD(mustRows(t, [][]float64{{1, 1}, {2, 2}, {2, 0}}),
		solver.WithSource(random.New(8)))
	require.NoError(t, err)
	s, vals := d.S(), d.Values().Data()
	s.Do(func(i, j int, v float64) bool {
		if i == j {
			require.Equal(t, vals[i], v)
		} else {
			require.Zero(t, v)
		}

		return true
	})
}

func TestSVD_RankDeficient(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	d, err := solver.NewSVD(a, solver.WithSource(random.New(13)))
	require.NoError(t, err)

	require.InDeltaSlice(t, []float64{5, 0}, d.Values().Data(), 1e-6)
	require.True(t, assemble(t, d).Equal(a))
	requireOrthonormal(t, d.U(), 1e-6)
	requireOrthonormal(t, d.V(), 1e-6)
}

func TestSVD_MatchesGonum(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 0}, {0, 1, 3}, {2, 0, 1}, {1, 1, 1}})
	d, err := solver.NewSVD(a, solver.WithEpsilon(1e-10), solver.WithSource(random.New(77)))
	require.NoError(t, err)

	require.InDeltaSlice(t, gonumSingularValues(t, a), d.Values().Data(), 1e-8)
	require.True(t, assemble(t, d).EqualTol(a, 1e-9))
	requireOrthonormal(t, d.U(), 1e-8)
}

// The decomposition of Aᵀ is the decomposition of A with U and V swapped.
func TestSVD_TransposeSymmetry(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{3, 1, 1}, {-1, 3, 1}})
	d, err := solver.NewSVD(a, solver.WithSource(random.New(4)))
	require.NoError(t, err)
	dt, err := solver.NewSVD(a.Transpose(), solver.WithSource(random.New(4)))
	require.NoError(t, err)

	require.InDeltaSlice(t, d.Values().Data(), dt.Values().Data(), 1e-6)
	require.True(t, assemble(t, dt).Equal(a.Transpose()))
}

func TestSVD_StrictPropagates(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 0}, {0, 1, 3}, {2, 0, 1}})
	_, err := solver.NewSVD(a,
		solver.WithEpsilon(0),
		solver.WithMaxIterations(1),
		solver.WithStrictConvergence(),
		solver.WithSource(random.New(1)))
	require.ErrorIs(t, err, solver.ErrNotConverged)
}
