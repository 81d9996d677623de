// SPDX-License-Identifier: MIT
// Package: solver
//
// Purpose:
//   - Singular value decomposition A = U·S·Vᵀ assembled from the
//     eigendecompositions of the Gram matrices A·Aᵀ and Aᵀ·A.
//
// Sign and order reconciliation:
//   - Eigenvectors of the two Gram matrices are computed independently, so
//     their signs and the order of equal eigenvalues do not agree. The
//     smaller Gram matrix is therefore taken as primary: its eigenvectors
//     give one side, sorted by decreasing singular value, and every
//     singular vector of the other side with σ > 0 is derived from it
//     (u = A·v/σ, or v = Aᵀ·u/σ). Only the null-space directions come from
//     the larger Gram matrix, completed to an orthonormal basis.

package solver

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/lvmat/matrix"
)

const opSVD = "NewSVD"

// SVD holds the result of NewSVD for an r×c input.
type SVD struct {
	u         *matrix.Dense // r×r, left singular vectors as columns
	s         *matrix.Dense // r×c, singular values on the diagonal
	v         *matrix.Dense // c×c, right singular vectors as columns
	values    *matrix.Dense // min(r,c)×1, decreasing
	converged bool
}

// NewSVD decomposes m as U·S·Vᵀ.
//
// Implementation:
//   - Stage 1: L = m·mᵀ (r×r) and R = mᵀ·m (c×c); NewEigen on both.
//   - Stage 2: primary = R when r >= c, else L. σᵢ = √max(λᵢ, 0) over the
//     primary eigenvalues, sorted decreasing with their eigenvectors.
//   - Stage 3: derive the other side's vectors for σᵢ > 0, then complete
//     that side's basis from the other Gram's eigenvectors.
//   - Stage 4: place σ on the diagonal of the r×c matrix S.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrNotConverged under WithStrictConvergence.
//
// Complexity:
//   - Dominated by the two NewEigen calls: O(r⁴ + c⁴) plus iterations.
func NewSVD(m *matrix.Dense, opts ...Option) (*SVD, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, solverErrorf(opSVD, err)
	}
	r, c := m.Shape()
	mt := m.Transpose()
	left, _ := matrix.Mul(m, mt)
	right, _ := matrix.Mul(mt, m)

	le, err := NewEigen(left, opts...)
	if err != nil {
		return nil, solverErrorf(opSVD, err)
	}
	re, err := NewEigen(right, opts...)
	if err != nil {
		return nil, solverErrorf(opSVD, err)
	}

	prim, other, toOther := re, le, m // r >= c: Aᵀ·A is the smaller Gram
	if r < c {
		prim, other, toOther = le, re, mt
	}
	p, q := prim.vectors.Rows(), other.vectors.Rows()

	// Stage 2: singular values and primary vectors, decreasing σ.
	order := make([]int, p)
	for i := range order {
		order[i] = i
	}
	lambda := prim.values.Data()
	slices.SortStableFunc(order, func(i, j int) int { return cmp.Compare(lambda[j], lambda[i]) })

	sigma := make([]float64, p)
	primVecs := make([]*matrix.Dense, p)
	for i, idx := range order {
		sigma[i] = math.Sqrt(max(lambda[idx], 0))
		row, _ := prim.vectors.GetRow(idx)
		primVecs[i] = row.Transpose()
	}

	// Stage 3: derived vectors for non-zero σ, then the null-space completion.
	derived := make([]*matrix.Dense, 0, q)
	var x *matrix.Dense
	var nx float64
	for i := 0; i < p; i++ {
		x, _ = matrix.Mul(toOther, primVecs[i])
		nx = x.Norm2()
		if nx == 0 || nx <= rankRatio*sigma[0] {
			break
		}
		_ = x.DivInPlace(nx)
		derived = append(derived, x)
	}
	candidates := make([]*matrix.Dense, q)
	for i := range candidates {
		row, _ := other.vectors.GetRow(i)
		candidates[i] = row.Transpose()
	}
	derived = completeBasis(derived, candidates, q)

	// Stage 4: assemble.
	primMat := columns(primVecs)
	otherMat := columns(derived)
	out := &SVD{converged: le.converged && re.converged}
	if r >= c {
		out.v, out.u = primMat, otherMat
	} else {
		out.u, out.v = primMat, otherMat
	}
	out.s, _ = matrix.NewDense(r, c)
	out.values, _ = matrix.NewFromData(p, 1, sigma)
	for i, s := range sigma {
		_ = out.s.Set(i, i, s)
	}

	return out, nil
}

// columns packs n×1 vectors side by side into an n×len(vs) matrix.
func columns(vs []*matrix.Dense) *matrix.Dense {
	out, _ := matrix.NewDense(vs[0].Rows(), len(vs))
	for j, v := range vs {
		_ = out.SetCol(j, v)
	}

	return out
}

// U returns the r×r matrix of left singular vectors (as columns).
func (s *SVD) U() *matrix.Dense { return s.u.Clone() }

// S returns the r×c matrix with the singular values on its diagonal.
func (s *SVD) S() *matrix.Dense { return s.s.Clone() }

// V returns the c×c matrix of right singular vectors (as columns).
func (s *SVD) V() *matrix.Dense { return s.v.Clone() }

// Values returns the min(r,c) singular values as a column, largest first.
func (s *SVD) Values() *matrix.Dense { return s.values.Clone() }

// Converged reports whether both underlying eigendecompositions converged.
func (s *SVD) Converged() bool { return s.converged }
