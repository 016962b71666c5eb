// Package matrix provides the dense linear-algebra layer used by the magic
// square coupling engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only guard on writes.
//   - Central validators (nil, square, same-shape, symmetric) shared by every kernel.
//   - Kernels: Mul, Transpose, Scale, MatVec, Eigen (Jacobi) and SVD.
//   - Line statistics used by magic-square checks: RowSums, ColSums, DiagSum,
//     AntiDiagSum, Total, FrobeniusNorm, Pearson.
//
// Kernels never mutate their inputs and always allocate a fresh result.
// Loop orders are fixed, so identical inputs produce bit-identical outputs.
//
// The matrices handled by the coupling engine are small (order ≤ ~20), so
// every routine favours clarity and determinism over blocking or pivoting tricks.
package matrix
