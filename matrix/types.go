// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept any Matrix and take a flat-slice fast path when the
// operand is a *Dense.
package matrix

// Matrix is a two-dimensional mutable array of float64 values.
//
// Complexity: all methods are O(1) except Clone (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j). Returns ErrOutOfRange on invalid indices and
	// ErrNaNInf when the implementation enforces finite values.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
