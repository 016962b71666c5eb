// SPDX-License-Identifier: MIT

package coupling

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
)

// Searcher looks for the best-scoring magic candidate below a composite's order.
type Searcher struct {
	builder         *Builder
	scorer          *Scorer
	tolerance       float64
	coarseTolerance float64
	acceptance      float64
	logger          *slog.Logger
	metrics         *Metrics
}

// NewSearcher wires a Builder and a Scorer under the given options.
func NewSearcher(opts ...Option) *Searcher {
	cfg := newConfig(opts...)

	return newSearcher(cfg)
}

func newSearcher(cfg config) *Searcher {
	return &Searcher{
		builder:         NewBuilder(),
		scorer:          &Scorer{variant: cfg.variant, weights: cfg.weights},
		tolerance:       cfg.tolerance,
		coarseTolerance: cfg.coarseTolerance,
		acceptance:      cfg.acceptance,
		logger:          cfg.logger,
		metrics:         cfg.metrics,
	}
}

// Search returns the best candidate for composite under policy, or false
// when none scores above the acceptance threshold.
// Implementation:
//   - Stage 1: keep preferred orders o with 3 ≤ o < N, in policy order.
//   - Stage 2: per order, Build; if that fails or the result is not magic at
//     the coarse tolerance, replace it with Project(composite, o).
//   - Stage 3: discard the candidate unless IsMagic at the configured tolerance.
//   - Stage 4: score; a strictly greater score replaces the best, so ties
//     keep the earlier order.
//
// Numeric failures only skip the order. Every returned candidate passes
// IsMagic at the configured tolerance.
//
// A nil rng disables the approximation path: orders without a canonical
// square go straight to projection.
//
// Complexity: one SVD per projected order.
func (s *Searcher) Search(composite matrix.Matrix, policy Policy, rng *rand.Rand) (Candidate, bool) {
	if matrix.ValidateSquareNonNil(composite) != nil {
		return Candidate{}, false
	}
	n := composite.Rows()

	best := Candidate{Score: -1}
	found := false
	for _, order := range policy.PreferredOrders {
		if order < minOrder || order >= n {
			continue
		}
		cand, path, ok := s.candidate(composite, order, rng)
		if !ok {
			continue
		}
		if !magic.IsMagic(cand, s.tolerance) {
			s.metrics.observeCandidate(path, verdictInvalid)
			s.logger.Debug("candidate rejected", "order", order, "path", path.String(),
				"imbalance", magic.Imbalance(cand))
			continue
		}
		score := s.scorer.Score(composite, cand)
		s.metrics.observeCandidate(path, verdictValid)
		s.logger.Debug("candidate scored", "order", order, "path", path.String(), "score", score)
		if score > best.Score {
			best = Candidate{Matrix: cand, Order: order, Score: score, Path: path}
			found = true
		}
	}

	if !found || !(best.Score > s.acceptance) {
		return Candidate{}, false
	}

	return best, true
}

// candidate builds or projects one candidate of the given order.
func (s *Searcher) candidate(composite matrix.Matrix, order int, rng *rand.Rand) (*matrix.Dense, Path, bool) {
	cand, path, err := s.builder.Build(order, rng)
	switch {
	case rng == nil && errors.Is(err, ErrNeedRand):
		s.logger.Debug("no rng, projecting", "order", order)
	case err != nil:
		s.metrics.observeCandidate(path, verdictFailed)
		s.logger.Debug("build failed, projecting", "order", order, "path", path.String(), "err", err)
	case magic.IsMagic(cand, s.coarseTolerance):
		return cand, path, true
	default:
		s.metrics.observeCandidate(path, verdictInvalid)
	}

	proj, err := s.builder.Project(composite, order)
	if err != nil {
		s.metrics.observeCandidate(PathProjection, verdictFailed)
		if errors.Is(err, ErrNumericFailure) {
			s.logger.Warn("projection failed", "order", order, "err", err)
		}
		return nil, PathNone, false
	}

	return proj, PathProjection, true
}
