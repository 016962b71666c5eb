// SPDX-License-Identifier: MIT

package magic

import (
	"math"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// TheoreticalConstant returns N(N²+1)/2, the line sum of an order-N square
// filled with 1..N². Zero for n <= 0.
func TheoreticalConstant(n int) float64 {
	if n <= 0 {
		return 0
	}
	nf := float64(n)

	return nf * (nf*nf + 1) / 2
}

// MagicConstant returns total/N for a square matrix, and NaN for nil or
// non-square input.
func MagicConstant(m matrix.Matrix) float64 {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return math.NaN()
	}
	total, err := matrix.Total(m)
	if err != nil {
		return math.NaN()
	}

	return total / float64(m.Rows())
}

// Imbalance sums the absolute deviations of all rows, columns and both
// diagonals from TheoreticalConstant(N).
// It measures distance from an idealized 1..N² square of that order, not
// self-consistency: a perfectly balanced square scaled by 2 is not balanced here.
//
// Returns 0 for nil input and +Inf for a non-square matrix.
//
// Complexity: O(N²).
func Imbalance(m matrix.Matrix) float64 {
	ls, ok := sumsOrSentinel(m)
	if !ok {
		return sentinelImbalance(m)
	}

	return ls.Deviation(TheoreticalConstant(ls.Order()))
}

// SelfImbalance is Imbalance measured against MagicConstant(m) instead of the
// theoretical constant. Zero for any perfectly balanced square regardless of scale.
func SelfImbalance(m matrix.Matrix) float64 {
	ls, ok := sumsOrSentinel(m)
	if !ok {
		return sentinelImbalance(m)
	}
	total := 0.0
	for _, r := range ls.Rows {
		total += r
	}

	return ls.Deviation(total / float64(ls.Order()))
}

func sumsOrSentinel(m matrix.Matrix) (LineSums, bool) {
	ls, err := Sums(m)
	if err != nil {
		return LineSums{}, false
	}

	return ls, true
}

// sentinelImbalance maps an unusable input to its documented value.
func sentinelImbalance(m matrix.Matrix) float64 {
	if matrix.ValidateNotNil(m) != nil {
		return 0
	}

	return math.Inf(1)
}
