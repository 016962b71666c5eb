// SPDX-License-Identifier: MIT
// Package matrix - canonical linear-algebra kernels.
//
// Purpose:
//   - Mul/Transpose/Scale/MatVec and the Jacobi Eigen solver.
//   - Every kernel validates through validators.go and wraps failures as "<Op>: <sentinel>".
//
// Determinism:
//   - Fixed loop orders; *Dense operands take a flat-slice fast path,
//     other Matrix implementations go through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial value for accumulators.
const ZeroSum = 0.0

// Operation tags for uniform error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a×b.
// Implementation:
//   - Stage 1: ValidateMulCompatible; allocate Dense(aRows, bCols).
//   - Stage 2: *Dense fast path in i-k-j order (row-major friendly, skips zero a[i,k]);
//     otherwise an i-j-k loop through At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av, bv, acc float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns alpha*m as a new Dense. alpha = 0 yields an explicit zero matrix.
// Errors: ErrNilMatrix; ErrNaNInf when alpha is non-finite.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for k, v := range dm.data {
			res.data[k] = alpha * v
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix (m or x nil), ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m into a working Dense A, Q = I.
//   - Stage 2: repeatedly pick the (p,q) with the largest |A[p,q]| (i→j scan) and
//     rotate it to zero, accumulating the rotation into Q.
//   - Stage 3: fail with ErrMatrixEigenFailed if max off-diagonal ≥ tol after maxIter.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated A), unsorted.
//   - Matrix   : Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (tol), ErrMatrixEigenFailed.
//
// Determinism:
//   - Fixed pivot scan and update order.
//
// Complexity:
//   - Time O(maxIter * n), Space O(n²). One iteration is one rotation.
//
// AI-Hints:
//   - A full sweep needs ~n²/2 rotations; budget maxIter ≈ 10·n² for small n.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	n := m.Rows()

	// Working copy as *Dense regardless of the input implementation.
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
			a.data[i*n+j] = v
		}
	}
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter          int
		p, r          int     // pivot indices (p < r)
		maxOff, off   float64 // largest |A[p,r]|
		app, arr, apr float64
		aip, air      float64
		qip, qir      float64
		theta, t      float64
		c, s          float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot search.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		// J.2: convergence.
		if maxOff < tol || maxOff == NormZero {
			break
		}

		// J.3: rotation parameters.
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate A (symmetric update of rows/cols p and r).
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > NormZero && maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
