// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and resolved options.
//
// Purpose:
//   - Expose UNEXPORTED helpers and the resolved Inverse options to
//     matrix_test ONLY (the file name ends in _test.go, so none of this
//     reaches production builds).
//
// Risks & Maintenance:
//   - Keep InverseOptionsSnapshot in sync with inverseOptions.

var (
	// CofactorDet_TestOnly exposes the unchecked recursive kernel behind Determinant.
	CofactorDet_TestOnly = cofactorDet
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicToleranceInvalid_TestOnly = panicToleranceInvalid
)

// InverseOptionsSnapshot is a read-only copy of the resolved inverseOptions.
type InverseOptionsSnapshot struct {
	PivotTol float64
}

// GatherInverseOptions_TestOnly resolves opts over the defaults and
// returns a snapshot (last writer wins).
func GatherInverseOptions_TestOnly(opts ...InverseOption) InverseOptionsSnapshot {
	o := gatherInverseOptions(opts...)

	return InverseOptionsSnapshot{PivotTol: o.pivotTol}
}
