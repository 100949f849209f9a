package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/station-farmer/internal/service"
	"github.com/MKhiriev/station-farmer/models"
)

// ShardWorker processes the accounts of one shard strictly in order.
type ShardWorker struct {
	shard   models.Shard
	service service.AccountService
	pause   time.Duration
}

// NewShardWorker returns a worker processing shard with svc, waiting pause
// between consecutive accounts.
func NewShardWorker(shard models.Shard, svc service.AccountService, pause time.Duration) *ShardWorker {
	return &ShardWorker{shard: shard, service: svc, pause: pause}
}

// Run implements [Worker]. It stops at the first error returned by the
// account service or when ctx is done.
func (w *ShardWorker) Run(ctx context.Context) error {
	for i, account := range w.shard.Accounts {
		if i > 0 && w.pause > 0 {
			if err := sleep(ctx, w.pause); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.service.Process(ctx, account); err != nil {
			return fmt.Errorf("shard %d: %w", w.shard.Number, err)
		}
	}

	return nil
}

// Shard returns the shard processed by the worker.
func (w *ShardWorker) Shard() models.Shard {
	return w.shard
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
