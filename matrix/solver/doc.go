// SPDX-License-Identifier: MIT

// Package solver computes eigen and singular value decompositions of
// matrix.Dense values.
//
// Eigen runs power iteration on A² with Rayleigh-quotient eigenvalues and
// Hotelling deflation (A ← A − λ·v·vᵀ). Each iterate is kept orthogonal to
// the eigenvectors already found, so the returned eigenvectors are
// orthonormal. SVD is assembled from the eigendecompositions of the two Gram
// matrices A·Aᵀ and Aᵀ·A.
//
// Both solvers assume a real spectrum: Eigen is meant for symmetric input,
// and Gram matrices are symmetric by construction. Power iteration on A²
// cannot tell λ from −λ, so an iterate that settles on such a pair is split
// into its two halves A·v ± μ·v, which are stored as separate eigenpairs.
//
// Randomness only enters through the starting vectors. Pass WithSource with
// a seeded random.Random for reproducible output; the default is the
// process-wide random.Default().
package solver
