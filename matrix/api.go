// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin entry points over the canonical kernels (constructors, line sums, norms).
//   - Each facade delegates; loops live in the kernels or the ew* micro-kernels.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of underlying kernels.
//   - Line statistics accumulate in index order, so repeated calls agree bit for bit.
//
// AI-Hints:
//   - Pass *Dense to unlock the flat-slice fast paths.
//   - DiagSum/AntiDiagSum require a square matrix; RowSums/ColSums do not.

package matrix

import (
	"fmt"
	"math"
)

const (
	opRowSums     = "RowSums"
	opColSums     = "ColSums"
	opDiagSum     = "DiagSum"
	opAntiDiagSum = "AntiDiagSum"
	opTotal       = "Total"
	opFrobenius   = "FrobeniusNorm"
)

// ---------- Constructors ----------

// NewIdentity returns I_n.
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ---------- Line statistics ----------

// RowSums returns r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns c[j] = Σ_i m[i,j].
// Implementation: Transpose then MatVec with ones(rows).
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	ones := make([]float64, mt.Cols())
	for i := range ones {
		ones[i] = 1.0
	}

	return MatVec(mt, ones)
}

// DiagSum returns the trace Σ_i m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func DiagSum(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDiagSum, err)
	}
	n := m.Rows()
	acc := ZeroSum
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opDiagSum, err)
		}
		acc += v
	}

	return acc, nil
}

// AntiDiagSum returns Σ_i m[i, n-1-i] (top-right to bottom-left).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AntiDiagSum(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opAntiDiagSum, err)
	}
	n := m.Rows()
	acc := ZeroSum
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, n-1-i); err != nil {
			return 0, matrixErrorf(opAntiDiagSum, err)
		}
		acc += v
	}

	return acc, nil
}

// Total returns the sum of every entry, accumulated row by row.
// Errors: ErrNilMatrix.
func Total(m Matrix) (float64, error) {
	rs, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	acc := ZeroSum
	for _, v := range rs {
		acc += v
	}

	return acc, nil
}

// FrobeniusNorm returns ‖m‖_F = √(Σ m[i,j]²).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	acc := NormZero
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			acc += v * v
		}

		return math.Sqrt(acc), nil
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobenius, err)
			}
			acc += v * v
		}
	}

	return math.Sqrt(acc), nil
}

// ---------- Scaling & comparison (thin wrappers over ew*) ----------

// ScaleRows returns out[i,j] = m[i,j]*scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows), ErrNaNInf.
func ScaleRows(m Matrix, scale []float64) (*Dense, error) { return ewScaleRows(m, scale) }

// ScaleCols returns out[i,j] = m[i,j]*scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols), ErrNaNInf.
func ScaleCols(m Matrix, scale []float64) (*Dense, error) { return ewScaleCols(m, scale) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Negative tolerances are normalized to their absolute value.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Pearson returns the Pearson correlation of the flattened entries of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrDegenerate (zero variance).
func Pearson(a, b Matrix) (float64, error) { return pearson(a, b) }

// MustAt is At without the error, for shapes already validated by the caller.
// Panics on out-of-range access.
func MustAt(m Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("matrix.MustAt: %v", err))
	}

	return v
}
