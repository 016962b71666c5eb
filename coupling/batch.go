// SPDX-License-Identifier: MIT

package coupling

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// Job is one coupling request in a batch.
type Job struct {
	ID     string
	A, B   matrix.Matrix
	Policy Policy
}

// JobResult pairs a job ID with its result.
type JobResult struct {
	ID     string
	Result Result
}

// CoupleAll runs jobs on a bounded worker pool and returns index-aligned results.
// MAIN DESCRIPTION:
//   - Job i draws from rand.NewSource(seed+i) under WithSeed, so the batch
//     matches sequential calls on engines seeded seed+i.
//   - Under WithRand the shared stream forces a single worker, in job order.
//   - Empty job IDs are replaced by a random UUID.
//   - workers <= 0 means GOMAXPROCS.
//
// Errors:
//   - the first boundary error (wrapped with the job ID) cancels the rest;
//   - ctx cancellation stops scheduling and returns ctx.Err().
func (e *Engine) CoupleAll(ctx context.Context, jobs []Job, workers int) ([]JobResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if e.cfg.rng != nil {
		workers = 1
	}

	base := e.cfg.seed
	if !e.cfg.seeded {
		base = time.Now().UnixNano()
	}

	out := make([]JobResult, len(jobs))
	for i := range jobs {
		out[i].ID = jobs[i].ID
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := e.cfg.rng
			if rng == nil {
				rng = rand.New(rand.NewSource(base + int64(i)))
			}
			res, err := e.CoupleWithRand(jobs[i].A, jobs[i].B, jobs[i].Policy, rng)
			if err != nil {
				return fmt.Errorf("job %s: %w", out[i].ID, err)
			}
			out[i].Result = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
