// SPDX-License-Identifier: MIT

// Package coupling implements the magic-square coupling engine.
//
// Two square matrices are merged into a block-diagonal composite with a
// small Gaussian perturbation (Composer). The Searcher then walks the
// caller's preferred orders below the composite order, asks the Builder for
// a candidate of each (canonical square, normalized approximation, or a
// low-rank projection of the composite), drops those that are not magic
// within tolerance and keeps the best by Scorer. The Engine packages the
// outcome as a Result.
//
// Randomness never comes from a global source. Use WithSeed for reproducible
// runs (each call restarts the same stream) or WithRand to supply one stream
// explicitly.
//
//	eng := coupling.New(coupling.WithSeed(42))
//	res, err := eng.Couple(a, b, coupling.Policy{PreferredOrders: []int{3, 5}, Strength: 1})
//
// Numeric trouble inside the search (an SVD that does not converge, a zero
// line sum) only skips a candidate; Couple fails only on malformed input.
package coupling
