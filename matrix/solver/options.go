// SPDX-License-Identifier: MIT
// Package: solver
//
// Purpose:
//   - Functional options shared by NewEigen and NewSVD.
//   - Default* constants are the single source of truth for every knob.
//   - WithX constructors panic only on nonsensical values (programmer error).

package solver

import (
	"math"

	"github.com/katalvlaran/lvmat/random"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the convergence threshold on the Euclidean distance
	// between two consecutive normalized iterates.
	DefaultEpsilon = 1e-5

	// DefaultMaxIterations caps power iteration per eigenpair.
	DefaultMaxIterations = 10000

	// DefaultStrictConvergence makes a capped run an error instead of a
	// best-effort result.
	DefaultStrictConvergence = false
)

// nullRatio marks the residual spectrum as exhausted: once ‖A²·v‖ falls to
// nullRatio·‖A₀²‖_F, v already lies in the null space of the deflated matrix.
const nullRatio = 1e-12

// residualRatio bounds ‖A·v − λ·v‖ relative to ‖A·v‖ for a settled iterate
// to count as an eigenvector, and for the halves of a split ±μ pair.
const residualRatio = 1e-3

// rankRatio is the relative size below which a singular value is treated as
// zero when deriving singular vectors from the other side, and the relative residual
// below which a settled eigen iterate is never examined for a ±μ split.
const rankRatio = 1e-10

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "solver: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "solver: WithMaxIterations: n must be >= 1"
	panicSourceInvalid  = "solver: WithSource: src must be non-nil"
)

// Option mutates solver options.
type Option func(*Options)

// Options is the resolved configuration; fields stay unexported and are
// filled by gatherOptions.
type Options struct {
	eps     float64       // >= 0; DefaultEpsilon
	maxIter int           // >= 1; DefaultMaxIterations
	src     random.Source // nil means random.Default()
	strict  bool          // DefaultStrictConvergence
}

// WithEpsilon sets the convergence threshold of power iteration.
// A zero eps only stops on an exact fixed point or the iteration cap.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps power iteration per eigenpair. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSource injects the Gaussian source used for starting vectors.
// Panics on nil.
func WithSource(src random.Source) Option {
	if src == nil {
		panic(panicSourceInvalid)
	}

	return func(o *Options) { o.src = src }
}

// WithStrictConvergence makes NewEigen and NewSVD fail with ErrNotConverged
// when any eigenpair hits the iteration cap.
func WithStrictConvergence() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies user setters over the defaults (last-writer-wins)
// and resolves the default random source lazily.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
		strict:  DefaultStrictConvergence,
	}
	for _, set := range user {
		set(&o)
	}
	if o.src == nil {
		o.src = random.Default()
	}

	return o
}
