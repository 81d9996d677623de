// SPDX-License-Identifier: MIT
// Package: random
//
// Purpose:
//   - Explicitly constructible random source (New / NewFromEntropy) so that
//     callers and tests control seeding.
//   - A process-wide Default, created once on first use.
//
// Concurrency:
//   - A Random serializes its draws with a mutex; sharing one across
//     goroutines is safe but the draw order then depends on scheduling.

package random

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

// Panic messages for nonsensical parameters (programmer error).
const (
	panicUniformRange = "random: Uniform: min must be <= max"
	panicGaussianStd  = "random: Gaussian: std must be >= 0"
)

// Source is the sampling contract the solvers depend on.
type Source interface {
	// Uniform returns a sample of U[min, max).
	Uniform(min, max float64) float64
	// Gaussian returns a sample of N(mean, std²).
	Gaussian(mean, std float64) float64
}

// Random is a seeded PCG generator exposed through distuv distributions.
type Random struct {
	mu  sync.Mutex
	src rand.Source
}

// Compile-time assertion for Source conformance.
var _ Source = (*Random)(nil)

// New returns a Random whose PCG stream is fully determined by seed.
func New(seed uint64) *Random {
	return &Random{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// NewFromEntropy returns a Random seeded from the runtime's entropy-seeded
// global generator.
func NewFromEntropy() *Random {
	return &Random{src: rand.NewPCG(rand.Uint64(), rand.Uint64())}
}

// Uniform returns a sample of U[min, max). Panics when min > max.
func (r *Random) Uniform(min, max float64) float64 {
	if min > max {
		panic(panicUniformRange)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return distuv.Uniform{Min: min, Max: max, Src: r.src}.Rand()
}

// Gaussian returns a sample of N(mean, std²). Panics when std < 0.
func (r *Random) Gaussian(mean, std float64) float64 {
	if std < 0 {
		panic(panicGaussianStd)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return distuv.Normal{Mu: mean, Sigma: std, Src: r.src}.Rand()
}

var (
	defaultOnce sync.Once
	defaultRand *Random
)

// Default returns the process-wide Random, creating it with NewFromEntropy
// on first use. Every call returns the same instance.
func Default() *Random {
	defaultOnce.Do(func() {
		defaultRand = NewFromEntropy()
	})

	return defaultRand
}
