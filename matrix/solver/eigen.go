// SPDX-License-Identifier: MIT
// Package: solver
//
// Purpose:
//   - Eigendecomposition of a square (symmetric) matrix by power iteration
//     on A² with Rayleigh-quotient eigenvalues and deflation.
//
// Determinism:
//   - Output is a pure function of the input and of the Gaussian draws taken
//     from the configured source; a seeded source gives reproducible results.

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
)

const opEigen = "NewEigen"

// Eigen holds the result of NewEigen.
type Eigen struct {
	values     *matrix.Dense // n×1
	vectors    *matrix.Dense // n×n, eigenvector k stored as row k
	converged  bool
	iterations int
}

// NewEigen computes the n eigenpairs of a square matrix m.
//
// Implementation:
//   - Stage 1: validate square; A ← clone(m).
//   - Stage 2: for each missing pair:
//     draw v ~ N(0, I) from the source, orthogonalize against the vectors
//     found so far and normalize it;
//     iterate v ← (A·A)·v / ‖(A·A)·v‖ until ‖v − v_prev‖₂ <= eps, the
//     iteration cap is reached, or ‖(A·A)·v‖ vanishes (residual spectrum
//     exhausted, v already spans the null space);
//     λ = (vᵀ·A·v)/(vᵀ·v); store (λ, v); deflate A ← A − λ·v·vᵀ.
//   - Stage 3: a settled v whose residual ‖A·v − λ·v‖ exceeds eps·μ may mix
//     the eigenvectors of +μ and −μ (μ = ‖A·v‖), which share μ² in A·A. It
//     is split into w± = A·v ± μ·v, each half refined by power iteration,
//     and both pairs are stored and deflated.
//
// Behavior highlights:
//   - Squaring A makes every eigenvalue drive the iteration positively, so a
//     negative λ does not make the iterate oscillate in sign.
//   - Eigenpairs come out in decreasing |λ| order, +μ before −μ.
//   - Capped pairs, and settled pairs that neither satisfy A·v = λ·v nor
//     split, are kept as best estimates and Converged() reports false,
//     unless WithStrictConvergence turns that into ErrNotConverged.
//   - The null-space cutoff is relative to ‖A₀²‖_F of the input, not of the
//     deflated matrix: once one eigenvalue dominates, pairs with
//     |λ|² below 1e-12·‖A₀²‖_F are accepted from the starting vector and may
//     come back as mixtures of those tiny eigenvectors.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidShape (non-square),
//     ErrNotConverged (strict mode only).
//
// Complexity:
//   - Time O(n⁴ + n³·iterations), Space O(n²).
func NewEigen(m *matrix.Dense, opts ...Option) (*Eigen, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, solverErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	a := m.Clone()
	a2, _ := matrix.Mul(a, a)
	scale := a2.Norm2()
	floor := math.Sqrt(nullRatio * scale) // ‖A·v‖ below this is null spectrum

	e := &Eigen{converged: true}
	e.values, _ = matrix.NewDense(n, 1)
	e.vectors, _ = matrix.NewDense(n, n)

	found := make([]*matrix.Dense, 0, n)
	var v, av, pos, neg, outer *matrix.Dense
	var lambda, mu, res float64
	var its int
	var ok, split bool
	for k := 0; k < n; {
		if k > 0 {
			a2, _ = matrix.Mul(a, a)
		}
		v, its, ok = powerIterate(a2, found, startVector(n, found, o), scale, o)
		e.iterations += its

		pairs := []*matrix.Dense{v}
		if ok {
			av, _ = matrix.Mul(a, v)
			mu = av.Norm2()
			res = residual(a, v, rayleigh(a, v))
			if mu > floor && res > max(o.eps, rankRatio)*mu {
				split = false
				if k+1 < n {
					pos, neg, its, split = splitSignPair(a, a2, v, av, mu, found, scale, o)
					e.iterations += its
				}
				if split {
					pairs = []*matrix.Dense{pos, neg}
				} else {
					ok = res <= residualRatio*mu
				}
			}
		}
		e.converged = e.converged && ok

		for _, v = range pairs {
			lambda = rayleigh(a, v)
			_ = e.values.Set(k, 0, lambda)
			_ = e.vectors.SetRow(k, v)
			found = append(found, v)
			k++

			outer, _ = matrix.Mul(v, v.Transpose())
			outer.ScaleInPlace(lambda)
			_ = a.SubInPlace(outer)
		}
	}

	if !e.converged && o.strict {
		return nil, solverErrorf(opEigen, fmt.Errorf("%d iterations, cap %d per pair: %w",
			e.iterations, o.maxIter, ErrNotConverged))
	}

	return e, nil
}

// rayleigh returns (vᵀ·A·v)/(vᵀ·v).
func rayleigh(a, v *matrix.Dense) float64 {
	av, _ := matrix.Mul(a, v)
	vav, _ := matrix.Dot(v, av)
	vv, _ := matrix.Dot(v, v)

	return vav / vv
}

// residual returns ‖A·v − λ·v‖₂.
func residual(a, v *matrix.Dense, lambda float64) float64 {
	av, _ := matrix.Mul(a, v)
	lv := v.Clone()
	lv.ScaleInPlace(lambda)
	_ = av.SubInPlace(lv)

	return av.Norm2()
}

// splitSignPair separates a unit iterate v that mixes the eigenvectors of
// +μ and −μ. The halves A·v + μ·v and A·v − μ·v lie in the two eigenspaces;
// each is made orthonormal to found (and neg to pos), refined by power
// iteration on a2, and accepted only when ‖A·w ∓ μ·w‖ <= residualRatio·μ.
// It returns the two unit vectors, the refinement steps and whether the
// split holds.
func splitSignPair(a, a2, v, av *matrix.Dense, mu float64, found []*matrix.Dense, scale float64, o Options) (pos, neg *matrix.Dense, its int, ok bool) {
	mv := v.Clone()
	mv.ScaleInPlace(mu)
	pos, neg = av.Clone(), av.Clone()
	_ = pos.AddInPlace(mv)
	_ = neg.SubInPlace(mv)

	orthogonalize(pos, found)
	if !normalize(pos) {
		return nil, nil, 0, false
	}
	pos, its, _ = powerIterate(a2, found, pos, scale, o)

	withPos := append(found[:len(found):len(found)], pos)
	orthogonalize(neg, withPos)
	if !normalize(neg) {
		return nil, nil, its, false
	}
	var more int
	neg, more, _ = powerIterate(a2, withPos, neg, scale, o)
	its += more

	tol := residualRatio * mu
	if residual(a, pos, mu) > tol || residual(a, neg, -mu) > tol {
		return nil, nil, its, false
	}

	return pos, neg, its, true
}

// powerIterate runs normalized power iteration of a2 from the unit vector v
// inside the orthogonal complement of found. It returns the unit iterate,
// the number of steps taken and whether it settled before the cap.
func powerIterate(a2 *matrix.Dense, found []*matrix.Dense, v *matrix.Dense, scale float64, o Options) (*matrix.Dense, int, bool) {
	var w *matrix.Dense
	var nw, d float64
	for it := 1; it <= o.maxIter; it++ {
		w, _ = matrix.Mul(a2, v)
		nw = orthogonalize(w, found)
		if nw <= nullRatio*scale {
			return v, it, true
		}
		_ = w.DivInPlace(nw)
		d, _ = matrix.Distance(w, v)
		v = w
		if d <= o.eps {
			return v, it, true
		}
	}

	return v, o.maxIter, false
}

// startVector draws a Gaussian n×1 vector, orthogonal to found and of unit
// length. A draw that vanishes after projection is redrawn; after maxDraws
// failures the complement is taken from the standard basis instead.
func startVector(n int, found []*matrix.Dense, o Options) *matrix.Dense {
	const maxDraws = 8
	for draw := 0; draw < maxDraws; draw++ {
		v, _ := matrix.Random(n, 1, o.src)
		if orthogonalize(v, found) > 0 && normalize(v) {
			return v
		}
	}
	basis := completeBasis(append([]*matrix.Dense(nil), found...), nil, n)

	return basis[len(found)]
}

// Values returns the eigenvalues as an n×1 column, in discovery order.
func (e *Eigen) Values() *matrix.Dense { return e.values.Clone() }

// Vectors returns the n×n matrix whose row k is the unit eigenvector of
// Values()[k]. Transpose it for column eigenvectors.
func (e *Eigen) Vectors() *matrix.Dense { return e.vectors.Clone() }

// Converged reports whether every eigenpair settled before the iteration cap.
func (e *Eigen) Converged() bool { return e.converged }

// Iterations returns the total number of power steps over all eigenpairs.
func (e *Eigen) Iterations() int { return e.iterations }
