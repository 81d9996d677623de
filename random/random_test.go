// SPDX-License-Identifier: MIT

package random_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/random"
)

func TestNew_SameSeedSameStream(t *testing.T) {
	a, b := random.New(42), random.New(42)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Gaussian(0, 1), b.Gaussian(0, 1), "draw %d", i)
		require.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1), "draw %d", i)
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a, b := random.New(1), random.New(2)
	same := 0
	for i := 0; i < 16; i++ {
		if a.Gaussian(0, 1) == b.Gaussian(0, 1) {
			same++
		}
	}
	require.Less(t, same, 16)
}

func TestUniform_Range(t *testing.T) {
	r := random.New(7)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(2, 5)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
	}
	require.Equal(t, 3.0, r.Uniform(3, 3))
}

func TestGaussian_Moments(t *testing.T) {
	const n = 20000
	r := random.New(2024)
	var sum, sq float64
	for i := 0; i < n; i++ {
		v := r.Gaussian(1.5, 2)
		sum += v
		sq += v * v
	}
	mean := sum / n
	std := math.Sqrt(sq/n - mean*mean)
	require.InDelta(t, 1.5, mean, 0.1)
	require.InDelta(t, 2.0, std, 0.1)
	require.Equal(t, 4.0, r.Gaussian(4, 0))
}

func TestPanics_OnNonsensicalParameters(t *testing.T) {
	r := random.New(0)
	require.Panics(t, func() { r.Uniform(1, 0) })
	require.Panics(t, func() { r.Gaussian(0, -1) })
}

func TestDefault_Singleton(t *testing.T) {
	require.Same(t, random.Default(), random.Default())
	require.False(t, math.IsNaN(random.Default().Gaussian(0, 1)))
}
