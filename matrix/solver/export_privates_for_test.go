// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/lvmat/matrix"

// Test-Bridge (White-Box) for the Gram–Schmidt helpers and resolved options.
// The file name ends in _test.go, so none of this reaches production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicMaxIterInvalid_TestOnly = panicMaxIterInvalid
	PanicSourceInvalid_TestOnly  = panicSourceInvalid
)

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps       float64
	MaxIter   int
	Strict    bool
	HasSource bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, MaxIter: o.maxIter, Strict: o.strict, HasSource: o.src != nil}
}

// Orthogonalize_TestOnly forwards to orthogonalize.
func Orthogonalize_TestOnly(v *matrix.Dense, basis []*matrix.Dense) float64 {
	return orthogonalize(v, basis)
}

// CompleteBasis_TestOnly forwards to completeBasis.
func CompleteBasis_TestOnly(basis, candidates []*matrix.Dense, dim int) []*matrix.Dense {
	return completeBasis(basis, candidates, dim)
}
