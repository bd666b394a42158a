/*****************************************************************************************************************/

//	@package	optics/internal/batch

/*****************************************************************************************************************/

package batch

/*****************************************************************************************************************/

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/claude-module/optics/pkg/fft"
)

/*****************************************************************************************************************/

func TestRunAllPreservesOrderAndResults(t *testing.T) {
	jobs := []Job{
		{Name: "a", Run: func(ctx context.Context, e *fft.Engine) (any, error) { return 1, nil }},
		{Name: "b", Run: func(ctx context.Context, e *fft.Engine) (any, error) { return 2, nil }},
		{Name: "c", Run: func(ctx context.Context, e *fft.Engine) (any, error) { return 3, nil }},
	}

	results, err := RunAll(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("len(results) = %d; want 3", len(results))
	}

	for i, want := range []int{1, 2, 3} {
		if results[i].Name != jobs[i].Name {
			t.Errorf("results[%d].Name = %q; want %q", i, results[i].Name, jobs[i].Name)
		}
		if results[i].Value != want {
			t.Errorf("results[%d].Value = %v; want %v", i, results[i].Value, want)
		}
		if results[i].Err != nil {
			t.Errorf("results[%d].Err = %v; want nil", i, results[i].Err)
		}
	}

	if results[0].RunID != results[1].RunID {
		t.Error("expected every job in a RunAll call to share the same RunID")
	}
}

/*****************************************************************************************************************/

func TestRunAllCapturesPerJobError(t *testing.T) {
	boom := errors.New("boom")

	jobs := []Job{
		{Name: "ok", Run: func(ctx context.Context, e *fft.Engine) (any, error) { return "fine", nil }},
		{Name: "bad", Run: func(ctx context.Context, e *fft.Engine) (any, error) { return nil, boom }},
	}

	results, err := RunAll(context.Background(), jobs, 4)
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}

	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v; want nil", results[0].Err)
	}
	if results[1].Err != boom {
		t.Errorf("results[1].Err = %v; want %v", results[1].Err, boom)
	}
}

/*****************************************************************************************************************/

func TestRunAllRespectsConcurrencyLimit(t *testing.T) {
	var active, maxActive int32

	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = Job{
			Name: "j",
			Run: func(ctx context.Context, e *fft.Engine) (any, error) {
				n := atomic.AddInt32(&active, 1)
				for {
					old := atomic.LoadInt32(&maxActive)
					if n <= old || atomic.CompareAndSwapInt32(&maxActive, old, n) {
						break
					}
				}
				atomic.AddInt32(&active, -1)
				return nil, nil
			},
		}
	}

	if _, err := RunAll(context.Background(), jobs, 2); err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}

	if maxActive > 2 {
		t.Errorf("observed %d concurrently active jobs; want <= 2", maxActive)
	}
}

/*****************************************************************************************************************/

func TestRunAllEachJobGetsItsOwnEngine(t *testing.T) {
	engines := make(chan *fft.Engine, 2)

	jobs := []Job{
		{Name: "a", Run: func(ctx context.Context, e *fft.Engine) (any, error) { engines <- e; return nil, nil }},
		{Name: "b", Run: func(ctx context.Context, e *fft.Engine) (any, error) { engines <- e; return nil, nil }},
	}

	if _, err := RunAll(context.Background(), jobs, 2); err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	close(engines)

	first := <-engines
	second := <-engines

	if first == second {
		t.Error("expected each job to receive a distinct *fft.Engine")
	}
}

/*****************************************************************************************************************/
