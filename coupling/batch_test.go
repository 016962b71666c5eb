// SPDX-License-Identifier: MIT
package coupling_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/stretchr/testify/require"
)

func batchJobs(t *testing.T) []coupling.Job {
	t.Helper()
	l := MustCanonical(t, 3)

	return []coupling.Job{
		{ID: "lo-shu", A: l, B: l, Policy: coupling.Policy{PreferredOrders: []int{3}, Strength: 1}},
		{A: RandSquare(t, 4, 1), B: l, Policy: coupling.Policy{PreferredOrders: []int{3, 4, 5}, Strength: 0.5}},
		{A: l, B: MustCanonical(t, 5), Policy: coupling.Policy{PreferredOrders: []int{5, 7, 3}, Strength: 0.8}},
		{A: RandSquare(t, 3, 2), B: RandSquare(t, 3, 3), Policy: coupling.Policy{Strength: 0.2}},
	}
}

func TestCoupleAll_MatchesSequential(t *testing.T) {
	t.Parallel()

	const seed = 100
	jobs := batchJobs(t)
	got, err := coupling.New(coupling.WithSeed(seed)).CoupleAll(context.Background(), jobs, 3)
	require.NoError(t, err)
	require.Len(t, got, len(jobs))

	for i, job := range jobs {
		want, err := coupling.New(coupling.WithSeed(seed+int64(i))).Couple(job.A, job.B, job.Policy)
		require.NoError(t, err)
		require.Equalf(t, want, got[i].Result, "job %d", i)
	}
}

func TestCoupleAll_IDs(t *testing.T) {
	jobs := batchJobs(t)
	got, err := coupling.New(coupling.WithSeed(1)).CoupleAll(context.Background(), jobs, 0)
	require.NoError(t, err)

	require.Equal(t, "lo-shu", got[0].ID)
	seen := map[string]bool{}
	for _, r := range got[1:] {
		_, err := uuid.Parse(r.ID)
		require.NoError(t, err)
		require.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}

func TestCoupleAll_SharedRand(t *testing.T) {
	jobs := batchJobs(t)
	got, err := coupling.New(coupling.WithRand(rand.New(rand.NewSource(4)))).CoupleAll(context.Background(), jobs, 8)
	require.NoError(t, err)
	require.Len(t, got, len(jobs))
	require.True(t, got[0].Result.Success)
}

func TestCoupleAll_Empty(t *testing.T) {
	got, err := coupling.New().CoupleAll(context.Background(), nil, 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCoupleAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coupling.New(coupling.WithSeed(1)).CoupleAll(ctx, batchJobs(t), 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCoupleAll_JobError(t *testing.T) {
	jobs := batchJobs(t)
	jobs = append(jobs, coupling.Job{ID: "broken", A: nil, B: MustCanonical(t, 3)})

	_, err := coupling.New(coupling.WithSeed(1)).CoupleAll(context.Background(), jobs, 1)
	require.ErrorIs(t, err, coupling.ErrInvalidInput)
	require.ErrorContains(t, err, "job broken")
}
