// Package magiccoupling couples square matrices into block-diagonal composites
// and searches them for smaller, near-magic stable states.
//
// 🚀 What is in the box?
//
//	• matrix/  : dense row-major storage, validators, Jacobi eigen, SVD and low-rank projection
//	• magic/   : magic-square validation, imbalance, canonical squares, parity heuristic
//	• coupling/: composer, candidate builder, scorer, searcher, engine and batch runner
//	• entity/  : entity records, intrinsic matrices, force policies, binding energy
//	• config/  : YAML + MAGIC_* environment configuration
//	• cmd/magiccouple: the command-line front end
//
// ✨ The coupling in one picture:
//
//	A (3×3) ─┐                      ┌─ order 3 ─ canonical ─┐
//	         ├─ [A 0; 0 B] + noise ─┼─ order 5 ─ canonical ─┼─ best score > 0.3 → stable
//	B (3×3) ─┘      composite 6×6   └─ order 4 ─ approx/SVD ┘
//
// Every random draw comes from an explicit *rand.Rand; with coupling.WithSeed
// two runs on the same inputs are identical.
//
//	go run ./cmd/magiccouple couple up_quark down_quark --force strong --seed 1
package magiccoupling
