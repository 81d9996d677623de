// SPDX-License-Identifier: MIT
// Package: solver
//
// Purpose:
//   - Modified Gram–Schmidt helpers on n×1 column vectors: orthogonalize an
//     iterate against the eigenvectors found so far, and complete a partial
//     orthonormal basis from a list of candidates.

package solver

import "github.com/katalvlaran/lvmat/matrix"

// orthogonalize removes from v (in place) its components along every vector
// of basis, which must be orthonormal n×1 columns. It returns ‖v‖₂ afterwards.
func orthogonalize(v *matrix.Dense, basis []*matrix.Dense) float64 {
	for _, b := range basis {
		d, _ := matrix.Dot(v, b) // same length by construction
		if d == 0 {
			continue
		}
		p := b.Clone()
		p.ScaleInPlace(d)
		_ = v.SubInPlace(p)
	}

	return v.Norm2()
}

// normalize scales v to unit length and reports false for a zero vector.
func normalize(v *matrix.Dense) bool {
	n := v.Norm2()
	if n == 0 {
		return false
	}
	_ = v.DivInPlace(n)

	return true
}

// completeBasis extends the orthonormal set basis to size dim using the
// candidate columns, falling back to the standard basis e₀..e_{dim-1}.
// Each step takes the candidate with the largest component outside the
// current span, so ill-conditioned candidates are never picked before
// well-conditioned ones.
func completeBasis(basis []*matrix.Dense, candidates []*matrix.Dense, dim int) []*matrix.Dense {
	pool := make([]*matrix.Dense, 0, len(candidates)+dim)
	pool = append(pool, candidates...)
	for i := 0; i < dim; i++ {
		e, _ := matrix.NewDense(dim, 1)
		_ = e.Set(i, 0, 1)
		pool = append(pool, e)
	}

	var best *matrix.Dense
	var bestNorm, n float64
	var w *matrix.Dense
	for len(basis) < dim {
		best, bestNorm = nil, 0
		for _, c := range pool {
			w = c.Clone()
			if n = orthogonalize(w, basis); n > bestNorm {
				best, bestNorm = w, n
			}
		}
		if best == nil {
			break // unreachable for dim ≥ 1: the standard basis spans the space
		}
		orthogonalize(best, basis) // second pass restores orthogonality lost to rounding
		normalize(best)
		basis = append(basis, best)
	}

	return basis
}
