/*****************************************************************************************************************/

//	@package	optics/internal/batch

/*****************************************************************************************************************/

// Package batch runs a set of independent optics jobs concurrently, bounded by
// a caller-supplied concurrency limit, each job getting its own private
// *fft.Engine so no job contends with another over cache growth — the only
// place in this module concurrency is allowed to cross into the numeric core,
// per the core's single-threaded-per-instance contract.
package batch

/*****************************************************************************************************************/

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/claude-module/optics/pkg/fft"
	"github.com/oklog/ulid"
	"golang.org/x/sync/errgroup"
)

/*****************************************************************************************************************/

// Job is a single unit of batch work. Run receives a private *fft.Engine it may
// freely cache against for the duration of the call.
type Job struct {
	Name string
	Run  func(ctx context.Context, e *fft.Engine) (any, error)
}

/*****************************************************************************************************************/

// Result is the outcome of a single Job, tagged with a ULID unique to this batch
// run so results from different RunAll calls never collide when persisted.
type Result struct {
	RunID ulid.ULID
	Name  string
	Value any
	Err   error
}

/*****************************************************************************************************************/

// RunAll executes jobs concurrently, at most concurrency at a time, each with
// its own *fft.Engine. It returns one Result per job, in the same order as
// jobs, regardless of completion order. A job's error is captured on its own
// Result rather than aborting the group, so one failing job never prevents the
// others from finishing. The run is cancelled and RunAll returns early only if
// ctx itself is cancelled.
func RunAll(ctx context.Context, jobs []Job, concurrency int) ([]Result, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	runID := newRunID()
	results := make([]Result, len(jobs))

	group, groupCtx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)

	for i, job := range jobs {
		i, job := i, job

		group.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
			defer func() { <-sem }()

			e := fft.NewEngine()
			value, err := job.Run(groupCtx, e)

			results[i] = Result{RunID: runID, Name: job.Name, Value: value, Err: err}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

/*****************************************************************************************************************/

func newRunID() ulid.ULID {
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return ulid.ULID{}
	}
	return id
}

/*****************************************************************************************************************/
