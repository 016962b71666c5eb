// SPDX-License-Identifier: MIT

// Package entity is the collaborator layer that feeds the coupling engine.
//
// An entity is plain data: a Record with an identifier, an order, a map of
// named attributes and a stability factor. Intrinsic derives the entity's
// square matrix from the record; Entity pairs the two and satisfies
// coupling.MatrixSource. Forces maps force names to coupling policies and
// satisfies coupling.PolicyProvider.
//
// Derivation rules:
//   - elementary records start from the canonical square of their order, or
//     from the approximate square when the catalog has none;
//   - bound records (non-empty Constituents) use the approximate square as is;
//   - elementary matrices are scaled by (1 + 0.05·|charge|), cos(π·spin) and
//     the stability factor, each only when the attribute is present.
//
// The default catalog holds the leptons, light quarks, gauge bosons and the
// proton. BindingEnergy turns a coupling result into score·ln(order+1).
package entity
