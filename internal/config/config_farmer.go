package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/station-farmer/models"
	"github.com/robfig/cron/v3"
)

// FarmerApp holds application-level settings.
type FarmerApp struct {
	// LogFormat is either [LogFormatConsole] or [LogFormatJSON].
	LogFormat string
	// SkipQuests are quests that are never started or claimed.
	SkipQuests models.SkipSet
}

// FarmerAdapter holds settings used by the platform client.
type FarmerAdapter struct {
	// BaseURL is the platform origin.
	BaseURL string
	// IPCheckURL is the public IP echo service probed through proxies.
	IPCheckURL string
	// RequestTimeout bounds every single outbound request.
	RequestTimeout time.Duration
	// UseProxy routes each account through the proxy list.
	UseProxy bool
}

// FarmerStorage holds absolute paths of the process inputs.
type FarmerStorage struct {
	QueryFile string
	ProxyFile string
}

// FarmerWorkers holds batch scheduler settings.
type FarmerWorkers struct {
	ShardCount   int
	ShardTimeout time.Duration
	Cooldown     time.Duration
	Schedule     string
	AccountPause time.Duration
}

// FarmerConfig is the immutable configuration assembled from
// [StructuredConfig] for one entry point. It is passed by value into
// constructors; nothing else in the application keeps configuration in
// package-level variables.
type FarmerConfig struct {
	// Mode is the execution shape selected by the entry point.
	Mode Mode
	// App contains application-level settings.
	App FarmerApp
	// Adapter contains platform client settings.
	Adapter FarmerAdapter
	// Storage contains input file locations.
	Storage FarmerStorage
	// Workers contains scheduler settings.
	Workers FarmerWorkers
}

// GetFarmerConfig builds and validates the farmer config for mode from the
// merged structured configuration.
func GetFarmerConfig(mode Mode) (*FarmerConfig, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}

	cfg, err := GetStructuredConfig(mode)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewFarmerConfig(mode, cfg)
}

// NewFarmerConfig maps a merged [StructuredConfig] onto the [FarmerConfig]
// view of mode and validates the result. Relative file paths are resolved
// against the executable directory.
func NewFarmerConfig(mode Mode, cfg *StructuredConfig) (*FarmerConfig, error) {
	farmerCfg := &FarmerConfig{
		Mode: mode,
		App: FarmerApp{
			LogFormat:  cfg.App.LogFormat,
			SkipQuests: models.NewSkipSet(cfg.App.SkipQuestIDs...),
		},
		Adapter: FarmerAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			IPCheckURL:     cfg.Adapter.IPCheckURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UseProxy:       mode.UsesProxy(),
		},
		Storage: FarmerStorage{
			QueryFile: resolvePath(cfg.Storage.Files.QueryFile),
			ProxyFile: resolvePath(cfg.Storage.Files.ProxyFile),
		},
		Workers: FarmerWorkers{
			ShardCount:   cfg.Workers.ShardCount,
			ShardTimeout: cfg.Workers.ShardTimeout,
			Cooldown:     cfg.Workers.Cooldown,
			Schedule:     cfg.Workers.Schedule,
			AccountPause: cfg.Workers.AccountPause,
		},
	}

	return farmerCfg, farmerCfg.validate()
}

// PassSchedule returns the schedule deciding when the next pass starts: the
// cron expression when one is configured, otherwise a constant delay of
// Cooldown.
func (w FarmerWorkers) PassSchedule() (cron.Schedule, error) {
	if w.Schedule != "" {
		sched, err := cron.ParseStandard(w.Schedule)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule %q: %v", ErrInvalidWorkerConfigs, w.Schedule, err)
		}
		return sched, nil
	}
	if w.Cooldown < time.Second {
		return nil, fmt.Errorf("%w: cooldown must be at least 1s", ErrInvalidWorkerConfigs)
	}

	return cron.Every(w.Cooldown), nil
}
