// SPDX-License-Identifier: MIT
package coupling_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
	"github.com/stretchr/testify/require"
)

// source is a MatrixSource whose reported order may disagree with its matrix.
type source struct {
	m     matrix.Matrix
	order int
}

func (s source) Matrix() matrix.Matrix { return s.m }
func (s source) Order() int            { return s.order }

func TestCouple_LoShuPair(t *testing.T) {
	l := MustCanonical(t, 3)
	e := coupling.New(coupling.WithSeed(42))

	res, err := e.Couple(l, l, coupling.Policy{PreferredOrders: []int{3}, Strength: 1})
	require.NoError(t, err)
	require.Equal(t, 6, res.Composite.Rows())
	require.True(t, res.Success)
	require.Equal(t, 3, res.StableOrder)
	require.Equal(t, coupling.PathCanonical, res.Path)
	require.Greater(t, res.StabilityScore, 0.3)
	require.LessOrEqual(t, res.StabilityScore, 1.0)
	require.True(t, magic.IsMagic(res.Stable, 0.8))
}

func TestCouple_NoPreferredOrders(t *testing.T) {
	l := MustCanonical(t, 3)
	e := coupling.New(coupling.WithSeed(1))

	for _, p := range []coupling.Policy{{Strength: 1}, {PreferredOrders: []int{2, 6, 10}, Strength: 1}} {
		res, err := e.Couple(l, l, p)
		require.NoError(t, err)
		require.NotNil(t, res.Composite)
		require.Nil(t, res.Stable)
		require.False(t, res.Success)
		require.Zero(t, res.StableOrder)
		require.Zero(t, res.StabilityScore)
		require.Equal(t, coupling.PathNone, res.Path)
	}
}

func TestCouple_SeedIsIdempotent(t *testing.T) {
	a := RandSquare(t, 4, 11)
	b := RandSquare(t, 3, 12)
	p := coupling.Policy{PreferredOrders: []int{4, 3, 5}, Strength: 0.7}
	e := coupling.New(coupling.WithSeed(7))

	first, err := e.Couple(a, b, p)
	require.NoError(t, err)
	second, err := e.Couple(a, b, p)
	require.NoError(t, err)
	require.Equal(t, first, second)

	third, err := coupling.New(coupling.WithSeed(7)).Couple(a, b, p)
	require.NoError(t, err)
	require.Equal(t, first, third)
}

func TestCouple_SharedRandAdvances(t *testing.T) {
	l := MustCanonical(t, 3)
	e := coupling.New(coupling.WithRand(rand.New(rand.NewSource(5))))
	p := coupling.Policy{PreferredOrders: []int{3}, Strength: 1}

	first, err := e.Couple(l, l, p)
	require.NoError(t, err)
	second, err := e.Couple(l, l, p)
	require.NoError(t, err)
	require.NotEqual(t, first.Composite, second.Composite)
}

func TestCoupleWithRand_MatchesSeed(t *testing.T) {
	l := MustCanonical(t, 3)
	p := coupling.Policy{PreferredOrders: []int{3, 4}, Strength: 0.5}

	want, err := coupling.New(coupling.WithSeed(9)).Couple(l, l, p)
	require.NoError(t, err)
	got, err := coupling.New().CoupleWithRand(l, l, p, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCouple_Errors(t *testing.T) {
	t.Parallel()

	l := MustCanonical(t, 3)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	var typedNil *matrix.Dense
	ok := coupling.Policy{PreferredOrders: []int{3}, Strength: 1}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		policy  coupling.Policy
		wantErr error
	}{
		{"nil a", nil, l, ok, coupling.ErrInvalidInput},
		{"typed nil b", l, typedNil, ok, coupling.ErrInvalidInput},
		{"non-square", rect, l, ok, coupling.ErrInvalidInput},
		{"strength above 1", l, l, coupling.Policy{Strength: 1.5}, coupling.ErrInvalidPolicy},
		{"negative strength", l, l, coupling.Policy{Strength: -0.1}, coupling.ErrInvalidPolicy},
		{"NaN strength", l, l, coupling.Policy{Strength: math.NaN()}, coupling.ErrInvalidPolicy},
	}
	e := coupling.New(coupling.WithSeed(1))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Couple(tc.a, tc.b, tc.policy)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err = e.CoupleWithRand(l, l, ok, nil)
	require.ErrorIs(t, err, coupling.ErrNeedRand)
}

func TestCouple_InputsUntouched(t *testing.T) {
	a := RandSquare(t, 4, 3)
	b := MustCanonical(t, 3)
	aCopy, bCopy := a.Clone(), b.Clone()

	_, err := coupling.New(coupling.WithSeed(3)).Couple(a, b, coupling.Policy{PreferredOrders: []int{3, 5}, Strength: 0.4})
	require.NoError(t, err)
	require.Equal(t, aCopy, a)
	require.Equal(t, bCopy, b)
}

func TestCoupleSources(t *testing.T) {
	l := MustCanonical(t, 3)
	e := coupling.New(coupling.WithSeed(2))
	p := coupling.Policy{PreferredOrders: []int{3}, Strength: 1}

	res, err := e.CoupleSources(source{l, 3}, source{l, 3}, p)
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = e.CoupleSources(source{l, 4}, source{l, 3}, p)
	require.ErrorIs(t, err, coupling.ErrInvalidInput)
	_, err = e.CoupleSources(source{l, 3}, nil, p)
	require.ErrorIs(t, err, coupling.ErrInvalidInput)
	_, err = e.CoupleSources(source{nil, 0}, source{l, 3}, p)
	require.ErrorIs(t, err, coupling.ErrInvalidInput)
}

func TestCouple_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := MustCanonical(t, 3)

	_, err := coupling.New(coupling.WithSeed(1), coupling.WithLogger(logger)).
		Couple(l, l, coupling.Policy{PreferredOrders: []int{3}, Strength: 1})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "candidate scored")
	require.Contains(t, buf.String(), "msg=coupled")
	require.Contains(t, buf.String(), "path=canonical")
}

func TestEngine_SharesConfiguration(t *testing.T) {
	e := coupling.New(coupling.WithVariant(coupling.MatchCorrelation))
	require.Equal(t, coupling.MatchCorrelation, e.Scorer().Variant())
	require.Equal(t, coupling.MatchCorrelation.DefaultWeights(), e.Scorer().Weights())
	require.NotNil(t, e.Searcher())

	w := coupling.Weights{Quality: 0.5, Match: 0.5}
	e = coupling.New(coupling.WithWeights(w), coupling.WithVariant(coupling.MatchCorrelation))
	require.Equal(t, w, e.Scorer().Weights())
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"negative tolerance":    func() { coupling.WithTolerance(-1) },
		"infinite coarse":       func() { coupling.WithCoarseTolerance(math.Inf(1)) },
		"acceptance above 1":    func() { coupling.WithAcceptance(1.5) },
		"NaN perturbation":      func() { coupling.WithPerturbation(math.NaN()) },
		"unknown variant":       func() { coupling.WithVariant(coupling.Variant(9)) },
		"weights not summing 1": func() { coupling.WithWeights(coupling.Weights{Quality: 0.5, Match: 0.5, Parity: 0.5}) },
		"negative weight":       func() { coupling.WithWeights(coupling.Weights{Quality: 1.2, Match: -0.2}) },
		"nil rand":              func() { coupling.WithRand(nil) },
		"nil logger":            func() { coupling.WithLogger(nil) },
		"nil metrics":           func() { coupling.WithMetrics(nil) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, fn)
		})
	}
	require.NotPanics(t, func() { coupling.WithPerturbation(0) })
	require.NotPanics(t, func() { coupling.WithAcceptance(0) })
}
