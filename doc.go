// Package lvmat is a small dense linear-algebra engine written in pure Go.
//
// What is inside:
//
//	matrix/        - row-major Dense matrices, arithmetic operators with
//	                 scalar broadcasting, row operations, aggregates,
//	                 Gauss–Jordan inverse and cofactor determinant,
//	                 gonum interop
//	matrix/solver/ - eigenpairs by power iteration on A² with deflation,
//	                 and SVD assembled from the two Gram matrices
//	random/        - seedable Uniform / Gaussian source for starting vectors
//	cmd/lvmat/     - command-line front end for quick decompositions
//
// Every fallible operation returns an error wrapping a package sentinel
// (matrix.ErrSizeMismatch, matrix.ErrSingular, solver.ErrNotConverged, ...);
// match them with errors.Is.
//
// Quick example:
//
//	a := matrix.MustFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := a.Inverse()
//	fmt.Println(inv)
//	// [
//	// [0.6000 -0.7000]
//	// [-0.2000 0.4000]
//	// ]
//
//	go get github.com/katalvlaran/lvmat
package lvmat
