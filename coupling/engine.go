// SPDX-License-Identifier: MIT

package coupling

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/magiccoupling/matrix"
)

const opCouple = "coupling.Couple"

// Engine orchestrates compose → search → result.
// It holds no per-call state; with WithSeed or the default clock seeding it
// is safe for concurrent use. With WithRand it is not.
type Engine struct {
	cfg      config
	composer *Composer
	searcher *Searcher
	logger   *slog.Logger
	metrics  *Metrics
}

// New builds an Engine from the shared option set.
func New(opts ...Option) *Engine {
	cfg := newConfig(opts...)

	return &Engine{
		cfg:      cfg,
		composer: &Composer{sigma: cfg.sigma},
		searcher: newSearcher(cfg),
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}
}

// Couple runs one coupling with the engine's RNG policy.
//
// Errors:
//   - ErrInvalidInput (nil, empty or non-square a or b), ErrInvalidPolicy.
//
// A missing stable state is not an error: Result.Success is false.
func (e *Engine) Couple(a, b matrix.Matrix, policy Policy) (Result, error) {
	return e.CoupleWithRand(a, b, policy, e.rngForCall())
}

// CoupleWithRand runs one coupling drawing every random number from rng.
// A nil rng fails with ErrNeedRand.
func (e *Engine) CoupleWithRand(a, b matrix.Matrix, policy Policy, rng *rand.Rand) (Result, error) {
	if rng == nil {
		e.metrics.observeError()
		return Result{}, fmt.Errorf("%s: %w", opCouple, ErrNeedRand)
	}
	if err := policy.Validate(); err != nil {
		e.metrics.observeError()
		return Result{}, fmt.Errorf("%s: %w", opCouple, err)
	}

	composite, err := e.composer.Compose(a, b, policy.Strength, rng)
	if err != nil {
		e.metrics.observeError()
		return Result{}, fmt.Errorf("%s: %w", opCouple, err)
	}

	res := Result{Composite: composite}
	if cand, ok := e.searcher.Search(composite, policy, rng); ok {
		res.Stable = cand.Matrix
		res.StableOrder = cand.Order
		res.StabilityScore = cand.Score
		res.Path = cand.Path
		res.Success = cand.Score > e.cfg.acceptance
	}

	e.metrics.observeCoupling(res)
	e.logger.Debug("coupled",
		"composite_order", composite.Rows(),
		"stable_order", res.StableOrder,
		"score", res.StabilityScore,
		"path", res.Path.String(),
		"success", res.Success)

	return res, nil
}

// CoupleSources couples two MatrixSource values after checking that each
// reported order matches its matrix.
func (e *Engine) CoupleSources(a, b MatrixSource, policy Policy) (Result, error) {
	ma, err := sourceMatrix(a)
	if err != nil {
		return Result{}, fmt.Errorf("%s: a: %w", opCouple, err)
	}
	mb, err := sourceMatrix(b)
	if err != nil {
		return Result{}, fmt.Errorf("%s: b: %w", opCouple, err)
	}

	return e.Couple(ma, mb, policy)
}

func sourceMatrix(s MatrixSource) (matrix.Matrix, error) {
	if s == nil {
		return nil, fmt.Errorf("nil source: %w", ErrInvalidInput)
	}
	m := s.Matrix()
	if err := validateSquare(m); err != nil {
		return nil, err
	}
	if m.Rows() != s.Order() {
		return nil, fmt.Errorf("order %d, matrix %d: %w", s.Order(), m.Rows(), ErrInvalidInput)
	}

	return m, nil
}

// Searcher exposes the engine's searcher, sharing its configuration.
func (e *Engine) Searcher() *Searcher { return e.searcher }

// Scorer exposes the engine's scorer.
func (e *Engine) Scorer() *Scorer { return e.searcher.scorer }

// rngForCall resolves the RNG for one call: the shared stream, a fresh
// seeded stream, or a clock-seeded one.
func (e *Engine) rngForCall() *rand.Rand {
	switch {
	case e.cfg.rng != nil:
		return e.cfg.rng
	case e.cfg.seeded:
		return rand.New(rand.NewSource(e.cfg.seed))
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}
