// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults shared by Dense and the elimination
// kernels. Solver-level configuration (epsilon, iteration caps, random source)
// lives in package solver and follows the same functional-option pattern.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute per-element tolerance used by Equal.
	// Elimination and power iteration accumulate rounding error, so equality
	// is approximate, never bitwise.
	DefaultTolerance = 1e-4

	// DefaultPivotTolerance is the largest pivot magnitude still treated as
	// zero by Inverse. A best pivot at or below it makes the matrix singular.
	DefaultPivotTolerance = 1e-12

	// DefaultPrecision is the number of decimal digits used by String.
	DefaultPrecision = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// InverseOption tunes Inverse. Constructors panic only on nonsensical values.
type InverseOption func(*inverseOptions)

// inverseOptions holds the resolved Inverse configuration.
type inverseOptions struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance overrides DefaultPivotTolerance for a single Inverse call.
// A zero tolerance reproduces the strict "exact zero pivot" rule.
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) InverseOption {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *inverseOptions) { o.pivotTol = tol }
}

// gatherInverseOptions applies setters on top of the defaults (last-writer-wins).
func gatherInverseOptions(user ...InverseOption) inverseOptions {
	o := inverseOptions{pivotTol: DefaultPivotTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
