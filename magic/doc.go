// SPDX-License-Identifier: MIT

// Package magic holds the magic-square predicates and measures used by the
// coupling engine: the equal-sum validator, the imbalance scorers, the
// canonical squares of the reference catalog and the parity heuristic.
//
// A magic square of order N has every row, every column and both main
// diagonals summing to the same value. The functions here never mutate their
// arguments and accept any matrix.Matrix; *matrix.Dense takes the fast path.
//
// Two constants appear throughout:
//
//   - TheoreticalConstant(N) = N(N²+1)/2, the line sum of a square filled
//     with 1..N². Imbalance measures deviation from it.
//   - MagicConstant(m) = total/N, the square's own line sum if it were
//     perfectly balanced. SelfImbalance measures deviation from it.
package magic
