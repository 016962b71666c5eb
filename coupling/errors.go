// SPDX-License-Identifier: MIT
// Package: coupling
//
// errors.go - sentinel errors for the coupling engine.
//
// Error policy:
//   - Only sentinels are exported; callers branch with errors.Is.
//   - Context is attached with %w at the call site ("coupling.Compose: ...").
//   - ErrInvalidInput and ErrInvalidPolicy are boundary violations and reach
//     the caller. ErrInvalidOrder and ErrNumericFailure are produced by the
//     candidate builder and absorbed by the searcher.

package coupling

import "errors"

// ErrInvalidInput indicates a nil, empty or non-square input matrix.
// The underlying matrix sentinel stays in the chain.
var ErrInvalidInput = errors.New("coupling: invalid input matrix")

// ErrInvalidPolicy indicates a coupling strength outside [0,1] or NaN.
var ErrInvalidPolicy = errors.New("coupling: invalid policy")

// ErrInvalidOrder indicates a requested candidate order below 3, or a
// projection order larger than the source.
var ErrInvalidOrder = errors.New("coupling: invalid candidate order")

// ErrNumericFailure indicates a decomposition that did not converge or a
// zero row/column sum during normalization.
var ErrNumericFailure = errors.New("coupling: numeric failure")

// ErrNeedRand indicates a stochastic step was invoked without a *rand.Rand.
var ErrNeedRand = errors.New("coupling: rng is required")
