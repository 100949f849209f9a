// Package workers provides the batch scheduler of the farmer.
//
// Accounts are split into shards by [Partition]; each shard is processed by a
// [ShardWorker]. The [Workers] aggregate runs its workers in parallel, bounds
// each of them with a timeout and reports the outcome of the pass. A
// [PassRunner] executes one pass over all accounts and [Loop] repeats passes
// forever on a schedule.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any unit of work
// handed to [Workers]. Run blocks until the work is done or ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // process until done or ctx is cancelled
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// PassRunner executes one pass over every account.
type PassRunner interface {
	RunPass(ctx context.Context) (PassReport, error)
}

// Waiter blocks until the given moment or until ctx is done.
type Waiter interface {
	Wait(ctx context.Context, until time.Time) error
}
