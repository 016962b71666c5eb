// SPDX-License-Identifier: MIT
// Package matrix - singular value decomposition on top of the Jacobi Eigen kernel.
//
// Purpose:
//   - SVD(A) via the symmetric eigenproblem AᵀA = V Λ Vᵀ, σ_i = √max(λ_i, 0).
//   - LowRank(A, k) = A·V_k·V_kᵀ, the best rank-k approximation in Frobenius norm.
//
// Determinism:
//   - Jacobi pivot order is fixed; singular values are sorted with a stable
//     sort, so equal σ keep their eigen-index order.
//
// Notes:
//   - Squaring the condition number is acceptable for the small, well-scaled
//     matrices this package serves (order ≤ ~20).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opSVD     = "SVD"
	opLowRank = "LowRank"
)

const (
	// svdRelTol scales the Jacobi off-diagonal tolerance by ‖AᵀA‖_F.
	svdRelTol = 1e-12

	// svdSweeps bounds the rotation budget at svdSweeps·n² + n.
	svdSweeps = 30

	// svdRankEps marks σ_i ≤ svdRankEps·σ_max as numerically zero.
	svdRankEps = 1e-12
)

// SVDResult holds a thin decomposition A = U·diag(Sigma)·Vᵀ.
//   - Sigma is sorted descending.
//   - U is r×c; columns for numerically-zero σ are left zero.
//   - V is c×c with orthonormal columns.
type SVDResult struct {
	Sigma []float64
	U     *Dense
	V     *Dense
}

// SVD computes the thin singular value decomposition of m.
// Implementation:
//   - Stage 1: G = mᵀm (exactly symmetric: both triangles use the same products).
//   - Stage 2: Eigen(G) with a tolerance relative to ‖G‖_F.
//   - Stage 3: order eigenpairs by λ descending; σ = √max(λ,0); u_i = m·v_i/σ_i.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite entries), ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(c³ + sweeps·c³), Space O(r·c + c²).
func SVD(m Matrix) (*SVDResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	g, err := Mul(mt, m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	gNorm, err := FrobeniusNorm(g)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	if math.IsNaN(gNorm) || math.IsInf(gNorm, 0) {
		return nil, matrixErrorf(opSVD, ErrNaNInf)
	}

	c := m.Cols()
	tol := svdRelTol * math.Max(1, gNorm)
	lambda, q, err := Eigen(g, tol, svdSweeps*c*c+c)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	qd := q.(*Dense)

	// Stable descending order over eigen indices.
	order := make([]int, c)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return lambda[order[x]] > lambda[order[y]] })

	res := &SVDResult{Sigma: make([]float64, c)}
	if res.V, err = NewDense(c, c); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	for k, src := range order {
		res.Sigma[k] = math.Sqrt(math.Max(lambda[src], 0))
		for i := 0; i < c; i++ {
			res.V.data[i*c+k] = qd.data[i*c+src]
		}
	}

	// U columns: m·v_k / σ_k for numerically non-zero σ.
	r := m.Rows()
	if res.U, err = NewDense(r, c); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	cutoff := svdRankEps * res.Sigma[0]
	vk := make([]float64, c)
	for k := 0; k < c; k++ {
		if res.Sigma[k] <= cutoff || res.Sigma[k] == 0 {
			continue
		}
		for i := 0; i < c; i++ {
			vk[i] = res.V.data[i*c+k]
		}
		uk, mvErr := MatVec(m, vk)
		if mvErr != nil {
			return nil, matrixErrorf(opSVD, mvErr)
		}
		for i := 0; i < r; i++ {
			res.U.data[i*c+k] = uk[i] / res.Sigma[k]
		}
	}

	return res, nil
}

// LowRank returns the rank-k reconstruction A·V_k·V_kᵀ (same shape as m).
// Equivalent to Σ_{i<k} σ_i u_i v_iᵀ without dividing by σ.
//
// Errors:
//   - ErrInvalidDimensions (k ≤ 0), ErrRankTooLarge (k > Cols), plus SVD errors.
//
// Complexity:
//   - SVD cost + O(r·c·k).
func LowRank(m Matrix, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLowRank, err)
	}
	if k <= 0 {
		return nil, matrixErrorf(opLowRank, ErrInvalidDimensions)
	}
	if k > m.Cols() || k > m.Rows() {
		return nil, matrixErrorf(opLowRank, fmt.Errorf("k=%d: %w", k, ErrRankTooLarge))
	}

	dec, err := SVD(m)
	if err != nil {
		return nil, matrixErrorf(opLowRank, err)
	}
	c := m.Cols()
	vk, err := dec.V.Induced(seq(c), seq(k)) // c×k
	if err != nil {
		return nil, matrixErrorf(opLowRank, err)
	}
	vkt, err := Transpose(vk)
	if err != nil {
		return nil, matrixErrorf(opLowRank, err)
	}
	proj, err := Mul(vk, vkt) // c×c projector onto the top-k right singular space
	if err != nil {
		return nil, matrixErrorf(opLowRank, err)
	}
	out, err := Mul(m, proj)
	if err != nil {
		return nil, matrixErrorf(opLowRank, err)
	}

	return out.(*Dense), nil
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}
