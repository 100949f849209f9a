package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/station-farmer/internal/adapter"
	"github.com/MKhiriev/station-farmer/internal/config"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/service"
	"github.com/MKhiriev/station-farmer/internal/store"
	"github.com/MKhiriev/station-farmer/internal/tui"
	"github.com/MKhiriev/station-farmer/internal/workers"
)

var _ Client = (*App)(nil)

type App struct {
	cfg        config.FarmerConfig
	storages   *store.Storages
	newAdapter adapter.Factory
	waiter     workers.Waiter

	logger *logger.Logger
}

// NewApp returns the farmer application for cfg.
func NewApp(cfg config.FarmerConfig, storages *store.Storages, newAdapter adapter.Factory, waiter workers.Waiter, logger *logger.Logger) (*App, error) {
	if storages == nil || storages.CredentialStorage == nil {
		return nil, errors.New("credential storage is required")
	}
	if cfg.Adapter.UseProxy && storages.ProxyStorage == nil {
		return nil, errors.New("proxy storage is required when proxying is enabled")
	}
	if newAdapter == nil {
		return nil, errors.New("adapter factory is required")
	}
	if waiter == nil {
		waiter = workers.TimerWaiter{}
	}

	return &App{
		cfg:        cfg,
		storages:   storages,
		newAdapter: newAdapter,
		waiter:     waiter,
		logger:     logger,
	}, nil
}

// Run loads the inputs and repeats passes until ctx is done. Cancellation
// and a user quitting the countdown are a normal shutdown and return nil.
func (a *App) Run(ctx context.Context) error {
	accounts, err := a.storages.CredentialStorage.LoadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	if len(accounts) == 0 {
		a.logger.Warn().Str("file", a.cfg.Storage.QueryFile).Msg("no accounts to process")
	}

	var proxies service.ProxyProvider
	if a.cfg.Adapter.UseProxy {
		pool, err := a.storages.ProxyStorage.LoadProxies(ctx)
		if err != nil {
			return fmt.Errorf("load proxies: %w", err)
		}
		a.logger.Info().Int("proxies", pool.Len()).Msg("proxies loaded")
		proxies = pool
	}

	services := service.NewServices(a.newAdapter, proxies, a.cfg, a.logger)

	var runner workers.PassRunner
	switch a.cfg.Mode {
	case config.ModeSharded:
		runner = workers.NewShardedRunner(accounts, services.AccountService, a.cfg.Workers, a.logger)
	default:
		runner = workers.NewSequentialRunner(accounts, services.AccountService, a.cfg.Workers, a.logger)
	}

	schedule, err := a.cfg.Workers.PassSchedule()
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("mode", string(a.cfg.Mode)).
		Int("accounts", len(accounts)).
		Msg("farmer started")

	err = workers.NewLoop(runner, schedule, a.waiter, a.logger).Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, tui.ErrInterrupted) {
		a.logger.Info().Msg("farmer stopped")
		return nil
	}

	return err
}
