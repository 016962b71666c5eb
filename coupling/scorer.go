// SPDX-License-Identifier: MIT

package coupling

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
)

// Variant names the formulation of the match term.
type Variant int

const (
	// MatchEnergy uses max(0, tanh(‖C‖_F - ‖S‖_F)) when the composite is
	// strictly larger than the candidate, 0.5 otherwise. Weights 0.4/0.4/0.2.
	MatchEnergy Variant = iota

	// MatchCorrelation uses max(0, (ρ+1)/2) with ρ the Pearson correlation of
	// the overlapping leading blocks; 0.5 when ρ is undefined. Weights 0.4/0.3/0.3.
	MatchCorrelation
)

const (
	neutralMatch = 0.5
	oddParity    = 1.0
	evenParity   = 0.3
)

// ErrUnknownVariant is returned by ParseVariant.
var ErrUnknownVariant = errors.New("coupling: unknown scoring variant")

func (v Variant) valid() bool { return v == MatchEnergy || v == MatchCorrelation }

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case MatchEnergy:
		return "energy"
	case MatchCorrelation:
		return "correlation"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts "energy" or "correlation" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "energy", "":
		return MatchEnergy, nil
	case "correlation":
		return MatchCorrelation, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}
}

// DefaultWeights returns the weight triple paired with the variant.
func (v Variant) DefaultWeights() Weights {
	if v == MatchCorrelation {
		return Weights{Quality: 0.4, Match: 0.3, Parity: 0.3}
	}

	return Weights{Quality: 0.4, Match: 0.4, Parity: 0.2}
}

// Weights are the coefficients of the three score terms.
type Weights struct {
	Quality float64 `yaml:"quality" json:"quality"`
	Match   float64 `yaml:"match" json:"match"`
	Parity  float64 `yaml:"parity" json:"parity"`
}

// Validate requires finite, non-negative weights summing to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Quality, w.Match, w.Parity} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("weights %+v: %w", w, ErrInvalidPolicy)
		}
	}
	if math.Abs(w.Quality+w.Match+w.Parity-1) > weightSumEps {
		return fmt.Errorf("weights %+v do not sum to 1: %w", w, ErrInvalidPolicy)
	}

	return nil
}

// Terms are the unweighted score components, each in [0,1].
type Terms struct {
	Quality float64
	Match   float64
	Parity  float64
}

// Scorer rates how plausible a candidate is as the stable state of a composite.
type Scorer struct {
	variant Variant
	weights Weights
}

// NewScorer returns a Scorer using the variant and weight options.
func NewScorer(opts ...Option) *Scorer {
	cfg := newConfig(opts...)

	return &Scorer{variant: cfg.variant, weights: cfg.weights}
}

// Variant reports the configured match formulation.
func (s *Scorer) Variant() Variant { return s.variant }

// Weights reports the configured weight triple.
func (s *Scorer) Weights() Weights { return s.weights }

// Score returns wq·Quality + wm·Match + wp·Parity clamped to [0,1].
// A nil candidate scores 0.
func (s *Scorer) Score(composite, candidate matrix.Matrix) float64 {
	if matrix.ValidateNotNil(candidate) != nil {
		return 0
	}
	t := s.Terms(composite, candidate)
	score := s.weights.Quality*t.Quality + s.weights.Match*t.Match + s.weights.Parity*t.Parity
	if math.IsNaN(score) {
		return 0
	}

	return math.Max(0, math.Min(1, score))
}

// Terms computes the three components without weighting.
//   - Quality = 1/(1+Imbalance(candidate)).
//   - Match per the variant.
//   - Parity = 1.0 for odd candidate order, 0.3 for even.
func (s *Scorer) Terms(composite, candidate matrix.Matrix) Terms {
	t := Terms{
		Quality: 1 / (1 + magic.Imbalance(candidate)),
		Parity:  evenParity,
	}
	if candidate.Rows()%2 == 1 {
		t.Parity = oddParity
	}
	if s.variant == MatchCorrelation {
		t.Match = correlationMatch(composite, candidate)
	} else {
		t.Match = energyMatch(composite, candidate)
	}

	return t
}

func energyMatch(composite, candidate matrix.Matrix) float64 {
	if matrix.ValidateNotNil(composite) != nil || composite.Rows() <= candidate.Rows() {
		return neutralMatch
	}
	nc, errC := matrix.FrobeniusNorm(composite)
	ns, errS := matrix.FrobeniusNorm(candidate)
	if errC != nil || errS != nil {
		return neutralMatch
	}

	return math.Max(0, math.Tanh(nc-ns))
}

func correlationMatch(composite, candidate matrix.Matrix) float64 {
	if matrix.ValidateNotNil(composite) != nil {
		return neutralMatch
	}
	k := min(composite.Rows(), composite.Cols(), candidate.Rows(), candidate.Cols())
	if k < 2 {
		return neutralMatch
	}
	a, errA := leadingBlock(composite, k)
	b, errB := leadingBlock(candidate, k)
	if errA != nil || errB != nil {
		return neutralMatch
	}
	rho, err := matrix.Pearson(a, b)
	if err != nil {
		return neutralMatch
	}

	return math.Max(0, (rho+1)/2)
}

// leadingBlock copies the top-left k×k block of any Matrix.
func leadingBlock(m matrix.Matrix, k int) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Leading(k)
	}
	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
