// SPDX-License-Identifier: MIT

package coupling

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome and verdict label values.
const (
	outcomeSuccess  = "success"
	outcomeNoStable = "no_stable"
	outcomeError    = "error"

	verdictValid   = "valid"
	verdictInvalid = "invalid"
	verdictFailed  = "failed"
)

// Metrics holds the Prometheus collectors fed by the engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	couplings  *prometheus.CounterVec
	candidates *prometheus.CounterVec
	score      prometheus.Histogram
}

// NewMetrics registers the coupling collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		couplings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "magic_coupling_total",
			Help: "Coupling calls by outcome",
		}, []string{"outcome"}),
		candidates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "magic_coupling_candidates_total",
			Help: "Candidates examined by construction path and verdict",
		}, []string{"path", "verdict"}),
		score: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "magic_coupling_stability_score",
			Help:    "Stability score of accepted couplings",
			Buckets: prometheus.LinearBuckets(0.3, 0.1, 8),
		}),
	}
}

func (m *Metrics) observeCoupling(res Result) {
	if m == nil {
		return
	}
	if !res.Success {
		m.couplings.WithLabelValues(outcomeNoStable).Inc()
		return
	}
	m.couplings.WithLabelValues(outcomeSuccess).Inc()
	m.score.Observe(res.StabilityScore)
}

func (m *Metrics) observeError() {
	if m == nil {
		return
	}
	m.couplings.WithLabelValues(outcomeError).Inc()
}

func (m *Metrics) observeCandidate(p Path, verdict string) {
	if m == nil {
		return
	}
	m.candidates.WithLabelValues(p.String(), verdict).Inc()
}
