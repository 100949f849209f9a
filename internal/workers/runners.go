package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/station-farmer/internal/config"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/service"
	"github.com/MKhiriev/station-farmer/models"
)

// SequentialRunner processes every account in order in the calling
// goroutine.
type SequentialRunner struct {
	accounts []models.Account
	service  service.AccountService
	pause    time.Duration

	logger *logger.Logger
}

// NewSequentialRunner returns a [PassRunner] processing accounts one by one
// with cfg.AccountPause between them.
func NewSequentialRunner(accounts []models.Account, svc service.AccountService, cfg config.FarmerWorkers, logger *logger.Logger) *SequentialRunner {
	return &SequentialRunner{accounts: accounts, service: svc, pause: cfg.AccountPause, logger: logger}
}

// RunPass implements [PassRunner]. The first error stops the pass and is
// returned; for a malformed credential it is fatal for the process.
func (r *SequentialRunner) RunPass(ctx context.Context) (PassReport, error) {
	started := time.Now()
	report := PassReport{Shards: 1, Accounts: len(r.accounts)}

	worker := NewShardWorker(models.Shard{Number: 1, Accounts: r.accounts}, r.service, r.pause)
	err := runSafely(ctx, worker)
	if err != nil {
		report.Failed = 1
	} else {
		report.Succeeded = 1
	}
	report.Duration = time.Since(started)

	return report, err
}

// ShardedRunner splits the accounts into shards processed in parallel.
type ShardedRunner struct {
	accounts   []models.Account
	service    service.AccountService
	shardCount int
	timeout    time.Duration
	pause      time.Duration

	logger *logger.Logger
}

// NewShardedRunner returns a [PassRunner] partitioning accounts into
// cfg.ShardCount shards, each bounded by cfg.ShardTimeout.
func NewShardedRunner(accounts []models.Account, svc service.AccountService, cfg config.FarmerWorkers, logger *logger.Logger) *ShardedRunner {
	return &ShardedRunner{
		accounts:   accounts,
		service:    svc,
		shardCount: cfg.ShardCount,
		timeout:    cfg.ShardTimeout,
		pause:      cfg.AccountPause,
		logger:     logger,
	}
}

// RunPass implements [PassRunner]. Shard failures are only reported; the
// returned error is non-nil only when ctx is done.
func (r *ShardedRunner) RunPass(ctx context.Context) (PassReport, error) {
	shards := Partition(r.accounts, r.shardCount)
	log := logger.FromContextOr(ctx, r.logger)

	workers := make([]Worker, 0, len(shards))
	for _, shard := range shards {
		log.Debug().
			Int(logger.ShardField, shard.Number).
			Int("offset", shard.Offset).
			Int("accounts", len(shard.Accounts)).
			Msg("starting shard")
		workers = append(workers, NewShardWorker(shard, r.service, r.pause))
	}

	report := NewWorkers(r.timeout, r.logger, workers...).Run(ctx)
	report.Accounts = len(r.accounts)

	return report, ctx.Err()
}
