// SPDX-License-Identifier: MIT

package magic

import (
	"math"

	"github.com/katalvlaran/magiccoupling/matrix"
)

const (
	oddParityBase  = 0.8
	evenParityBase = 0.5
	parityGrowth   = 0.2
	parityPenalty  = 1000.0
)

// ParityStabilityScore is a standalone heuristic favouring odd orders.
//
//	base    = 0.8 + 0.2(1-1/N)   for odd N
//	base    = 0.5 + 0.2(1-1/N)   for even N
//	score   = max(0, base - Imbalance(m)/(N·1000))
//
// Returns 0 for nil or non-square input.
func ParityStabilityScore(m matrix.Matrix) float64 {
	if matrix.ValidateSquareNonNil(m) != nil {
		return 0
	}
	n := float64(m.Rows())
	base := evenParityBase
	if m.Rows()%2 == 1 {
		base = oddParityBase
	}
	base += parityGrowth * (1 - 1/n)

	return math.Max(0, base-Imbalance(m)/(n*parityPenalty))
}
