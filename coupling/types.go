// SPDX-License-Identifier: MIT

package coupling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// Policy is the caller-supplied coupling context: the preferred stable
// orders, tried in sequence, and the blend strength in [0,1].
type Policy struct {
	PreferredOrders []int   `yaml:"preferred_orders" json:"preferred_orders"`
	Strength        float64 `yaml:"strength" json:"strength"`
}

// Validate rejects a NaN strength or one outside [0,1]. Preferred orders are
// not validated here; the searcher skips orders it cannot use.
func (p Policy) Validate() error {
	if math.IsNaN(p.Strength) || p.Strength < 0 || p.Strength > 1 {
		return fmt.Errorf("strength %v: %w", p.Strength, ErrInvalidPolicy)
	}

	return nil
}

// MatrixSource is anything that exposes a square intrinsic matrix and its order.
type MatrixSource interface {
	Matrix() matrix.Matrix
	Order() int
}

// PolicyProvider maps a coupling-context identifier to a Policy.
type PolicyProvider interface {
	Policy(id string) (Policy, error)
}

// Path records how a candidate was constructed.
type Path int

const (
	// PathNone marks the absence of a candidate.
	PathNone Path = iota
	// PathCanonical is a precomputed square from the reference catalog.
	PathCanonical
	// PathApproximate is a normalized noisy uniform square.
	PathApproximate
	// PathProjection is the leading block of a low-rank reconstruction of the composite.
	PathProjection
)

// String implements fmt.Stringer.
func (p Path) String() string {
	switch p {
	case PathCanonical:
		return "canonical"
	case PathApproximate:
		return "approximate"
	case PathProjection:
		return "projection"
	default:
		return "none"
	}
}

// Candidate is a scored stable-state candidate.
type Candidate struct {
	Matrix *matrix.Dense
	Order  int
	Score  float64
	Path   Path
}

// Result is the outcome of one coupling call.
//   - Composite has order a.Rows()+b.Rows().
//   - Stable is nil when no candidate cleared the acceptance threshold; then
//     StableOrder is 0, StabilityScore is 0 and Path is PathNone.
type Result struct {
	Composite      *matrix.Dense
	Stable         *matrix.Dense
	StableOrder    int
	StabilityScore float64
	Success        bool
	Path           Path
}
