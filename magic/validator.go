// SPDX-License-Identifier: MIT

package magic

import (
	"math"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// IsMagic reports whether every row, column and main-diagonal sum of m lies
// within tolerance of the first row's sum.
// MAIN DESCRIPTION:
//   - The reference constant is the sum of row 0, not the theoretical
//     N(N²+1)/2, so scaled or shifted squares still qualify.
//   - tolerance = 0 demands exact float equality of all 2N+2 sums.
//
// Returns false for nil, non-square or empty input, and for a negative or
// NaN tolerance.
//
// Complexity: O(N²).
func IsMagic(m matrix.Matrix, tolerance float64) bool {
	ls, ok := validSums(m, tolerance)
	if !ok {
		return false
	}

	return ls.Within(ls.Rows[0], tolerance)
}

// IsMagicWithConstant is IsMagic against a caller-supplied line sum.
func IsMagicWithConstant(m matrix.Matrix, constant, tolerance float64) bool {
	if math.IsNaN(constant) {
		return false
	}
	ls, ok := validSums(m, tolerance)
	if !ok {
		return false
	}

	return ls.Within(constant, tolerance)
}

func validSums(m matrix.Matrix, tolerance float64) (LineSums, bool) {
	if math.IsNaN(tolerance) || tolerance < 0 {
		return LineSums{}, false
	}
	ls, err := Sums(m)
	if err != nil || ls.Order() == 0 {
		return LineSums{}, false
	}

	return ls, true
}
