package workers

import "errors"

var (
	// ErrShardTimeout is reported for a worker that did not finish within
	// the shard timeout. The worker is abandoned and its context cancelled.
	ErrShardTimeout = errors.New("shard timed out")

	// ErrWorkerPanic is reported for a worker that panicked.
	ErrWorkerPanic = errors.New("worker panicked")
)
