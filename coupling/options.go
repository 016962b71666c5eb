// SPDX-License-Identifier: MIT
// Package: coupling
//
// options.go - functional options shared by every component constructor.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs; the
//     algorithms themselves never panic.
//   - Options apply in order; later overrides earlier.
//   - Randomness is explicit: WithSeed (fresh stream per call, reproducible)
//     or WithRand (one shared stream, not goroutine-safe). Without either,
//     each call seeds from the clock.
//
// Defaults:
//   - tolerance        = 0.8   (IsMagic bar a candidate must pass)
//   - coarseTolerance  = 1.0   (bar under which a built candidate is replaced by a projection)
//   - acceptance       = 0.3   (best score must exceed it)
//   - perturbation     = 0.05  (stdev of composite noise)
//   - variant          = MatchEnergy, weights from the variant

package coupling

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// Library defaults, exported for configuration layers.
const (
	DefaultTolerance       = 0.8
	DefaultCoarseTolerance = 1.0
	DefaultAcceptance      = 0.3
	DefaultPerturbation    = 0.05
)

// weightSumEps bounds |Σw - 1| for custom weight triples.
const weightSumEps = 1e-9

// Option customizes a component by mutating its config before construction.
type Option func(*config)

type config struct {
	tolerance       float64
	coarseTolerance float64
	acceptance      float64
	sigma           float64
	variant         Variant
	weights         Weights
	weightsSet      bool
	seed            int64
	seeded          bool
	rng             *rand.Rand
	logger          *slog.Logger
	metrics         *Metrics
}

func newConfig(opts ...Option) config {
	cfg := config{
		tolerance:       DefaultTolerance,
		coarseTolerance: DefaultCoarseTolerance,
		acceptance:      DefaultAcceptance,
		sigma:           DefaultPerturbation,
		variant:         MatchEnergy,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.weightsSet {
		cfg.weights = cfg.variant.DefaultWeights()
	}

	return cfg
}

func mustFiniteNonNeg(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(fmt.Sprintf("coupling: %s(%v) must be finite and >= 0", name, v))
	}
}

// WithTolerance sets the IsMagic tolerance a candidate must pass. Panics on
// a negative or non-finite value.
func WithTolerance(tol float64) Option {
	mustFiniteNonNeg("WithTolerance", tol)

	return func(c *config) { c.tolerance = tol }
}

// WithCoarseTolerance sets the tolerance below which a built candidate is
// kept; above it the searcher falls back to a projection of the composite.
func WithCoarseTolerance(tol float64) Option {
	mustFiniteNonNeg("WithCoarseTolerance", tol)

	return func(c *config) { c.coarseTolerance = tol }
}

// WithAcceptance sets the score a best candidate must strictly exceed.
// Panics outside [0,1].
func WithAcceptance(threshold float64) Option {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		panic(fmt.Sprintf("coupling: WithAcceptance(%v) must be in [0,1]", threshold))
	}

	return func(c *config) { c.acceptance = threshold }
}

// WithPerturbation sets the stdev of the Gaussian noise laid over the
// composite. Zero disables it.
func WithPerturbation(sigma float64) Option {
	mustFiniteNonNeg("WithPerturbation", sigma)

	return func(c *config) { c.sigma = sigma }
}

// WithVariant selects the match-term formulation. Unless WithWeights is also
// given, the variant's default weights apply.
func WithVariant(v Variant) Option {
	if !v.valid() {
		panic(fmt.Sprintf("coupling: WithVariant(%d) unknown", int(v)))
	}

	return func(c *config) { c.variant = v }
}

// WithWeights overrides the (quality, match, parity) weights. Panics unless
// every weight is finite, non-negative and they sum to 1.
func WithWeights(w Weights) Option {
	if err := w.Validate(); err != nil {
		panic(fmt.Sprintf("coupling: WithWeights: %v", err))
	}

	return func(c *config) {
		c.weights = w
		c.weightsSet = true
	}
}

// WithSeed makes every call draw from a fresh rand.New(rand.NewSource(seed)),
// so identical inputs give bit-identical results. Clears WithRand.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
		c.rng = nil
	}
}

// WithRand shares one RNG stream across calls. The engine is then not safe
// for concurrent use. Panics on nil. Clears WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("coupling: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
		c.seeded = false
	}
}

// WithLogger routes Debug/Warn records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("coupling: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithMetrics records outcomes into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("coupling: WithMetrics(nil)")
	}

	return func(c *config) { c.metrics = m }
}
