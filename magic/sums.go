// SPDX-License-Identifier: MIT

package magic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// LineSums collects the 2N+2 line sums of a square matrix.
type LineSums struct {
	Rows     []float64
	Cols     []float64
	Diag     float64 // top-left to bottom-right
	AntiDiag float64 // top-right to bottom-left
}

// Sums computes every row, column and diagonal sum of m.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
//
// Complexity: O(N²).
func Sums(m matrix.Matrix) (LineSums, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return LineSums{}, fmt.Errorf("magic.Sums: %w", err)
	}

	var (
		ls  LineSums
		err error
	)
	if ls.Rows, err = matrix.RowSums(m); err != nil {
		return LineSums{}, fmt.Errorf("magic.Sums: %w", err)
	}
	if ls.Cols, err = matrix.ColSums(m); err != nil {
		return LineSums{}, fmt.Errorf("magic.Sums: %w", err)
	}
	if ls.Diag, err = matrix.DiagSum(m); err != nil {
		return LineSums{}, fmt.Errorf("magic.Sums: %w", err)
	}
	if ls.AntiDiag, err = matrix.AntiDiagSum(m); err != nil {
		return LineSums{}, fmt.Errorf("magic.Sums: %w", err)
	}

	return ls, nil
}

// Order returns N.
func (ls LineSums) Order() int { return len(ls.Rows) }

// Within reports whether every line sum lies within tol of target.
// Rows and columns are checked pairwise (row i, then column i), then both
// diagonals. A NaN sum never passes.
func (ls LineSums) Within(target, tol float64) bool {
	for i := range ls.Rows {
		if !near(ls.Rows[i], target, tol) || !near(ls.Cols[i], target, tol) {
			return false
		}
	}

	return near(ls.Diag, target, tol) && near(ls.AntiDiag, target, tol)
}

// Deviation returns Σ|s - target| over all 2N+2 line sums.
func (ls LineSums) Deviation(target float64) float64 {
	dev := 0.0
	for i := range ls.Rows {
		dev += math.Abs(ls.Rows[i] - target)
		dev += math.Abs(ls.Cols[i] - target)
	}
	dev += math.Abs(ls.Diag - target)
	dev += math.Abs(ls.AntiDiag - target)

	return dev
}

func near(s, target, tol float64) bool {
	return math.Abs(s-target) <= tol
}
