// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel returns one of these sentinels, usually wrapped with an
// operation tag ("Mul: matrix: dimension mismatch"). Callers match with
// errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> dimension mismatch -> numeric failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned for ragged row input or an invalid window request.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions
	// (Add of different shapes, Mul with a.Cols != b.Rows, non-square input).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix argument was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not, within tol.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tol")

	// ErrMatrixEigenFailed indicates that the Jacobi sweep did not converge
	// under the given tolerance and iteration budget.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrDegenerate is returned by statistics that divide by a variance or
	// norm that turned out to be zero.
	ErrDegenerate = errors.New("matrix: degenerate input")

	// ErrRankTooLarge is returned when a requested rank exceeds the matrix order.
	ErrRankTooLarge = errors.New("matrix: requested rank exceeds order")
)
