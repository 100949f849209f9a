package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/station-farmer/internal/logger"
	"golang.org/x/sync/errgroup"
)

// PassReport summarises one pass.
type PassReport struct {
	// Shards is the number of workers started.
	Shards int
	// Accounts is the number of accounts handed to the workers.
	Accounts  int
	Succeeded int
	// Failed counts every unsuccessful worker, including timed out ones.
	Failed   int
	TimedOut int
	Duration time.Duration
}

// Workers runs a set of workers in parallel, each bounded by timeout.
type Workers struct {
	workers []Worker
	timeout time.Duration

	logger *logger.Logger
}

// NewWorkers returns a [Workers] aggregate. A non-positive timeout leaves the
// workers unbounded.
func NewWorkers(timeout time.Duration, logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, timeout: timeout, logger: logger}
}

// Run starts every worker in its own goroutine and waits for all of them to
// finish or time out. A failing worker never affects its siblings; failures
// are logged with the one-based shard number and counted in the report.
func (w *Workers) Run(ctx context.Context) PassReport {
	started := time.Now()
	report := PassReport{Shards: len(w.workers)}
	log := logger.FromContextOr(ctx, w.logger)

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	for i, worker := range w.workers {
		g.Go(func() error {
			err := w.runBounded(ctx, worker)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				report.Succeeded++
			case errors.Is(err, ErrShardTimeout):
				report.TimedOut++
				report.Failed++
			default:
				report.Failed++
			}

			if err != nil {
				log.Error().Err(err).Int(logger.ShardField, i+1).Msg("shard failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(started)
	return report
}

// runBounded runs worker under the shard timeout. When the deadline passes
// first, the worker's context is cancelled and the worker is abandoned.
func (w *Workers) runBounded(ctx context.Context, worker Worker) error {
	if w.timeout <= 0 {
		return runSafely(ctx, worker)
	}

	wctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- runSafely(wctx, worker)
	}()

	select {
	case err := <-done:
		return w.deadlineError(ctx, wctx, err)
	case <-wctx.Done():
		return w.deadlineError(ctx, wctx, wctx.Err())
	}
}

// deadlineError reports err as a shard timeout when the worker's own deadline
// passed while the parent context is still alive.
func (w *Workers) deadlineError(parent, wctx context.Context, err error) error {
	if err == nil || parent.Err() != nil {
		return err
	}
	if errors.Is(wctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrShardTimeout, w.timeout)
	}
	return err
}

// runSafely turns a panic inside worker into an error.
func runSafely(ctx context.Context, worker Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()

	return worker.Run(ctx)
}
