// SPDX-License-Identifier: MIT

package magic

import "github.com/katalvlaran/magiccoupling/matrix"

// canonical is the reference catalog of precomputed magic squares.
var canonical = map[int][][]float64{
	3: {
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	},
	5: {
		{17, 24, 1, 8, 15},
		{23, 5, 7, 14, 16},
		{4, 6, 13, 20, 22},
		{10, 12, 19, 21, 3},
		{11, 18, 25, 2, 9},
	},
}

// Canonical returns a fresh copy of the precomputed magic square of the given
// order, or (nil, false) when the catalog has none.
func Canonical(order int) (*matrix.Dense, bool) {
	rows, ok := canonical[order]
	if !ok {
		return nil, false
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, false
	}

	return m, true
}

// CanonicalOrders lists the catalog orders in ascending order.
func CanonicalOrders() []int { return []int{3, 5} }
