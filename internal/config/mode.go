package config

import (
	"fmt"
	"time"
)

// Mode selects the execution shape of the scheduler. It is fixed by the entry
// point that is run, never read from configuration sources.
type Mode string

const (
	// ModeSequential processes every account one at a time over a direct
	// connection.
	ModeSequential Mode = "sequential"
	// ModeSharded splits the accounts across parallel shards and routes each
	// account through a proxy.
	ModeSharded Mode = "sharded"
)

// Built-in defaults shared by both modes.
const (
	DefaultBaseURL        = "https://tonstation.app"
	DefaultIPCheckURL     = "https://api.ipify.org?format=json"
	DefaultRequestTimeout = 30 * time.Second
	DefaultQueryFile      = "query.txt"
	DefaultProxyFile      = "proxy.txt"
	DefaultLogFormat      = LogFormatConsole
)

// Log formats accepted by App.LogFormat.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// DefaultSkipQuestIDs are quests that cannot be completed by an unattended
// client.
var DefaultSkipQuestIDs = []string{
	"66dad41d9b1e65019ad30629",
	"66f560c1c6fc8ba931b33420",
}

// UsesProxy reports whether accounts are routed through the proxy list.
func (m Mode) UsesProxy() bool {
	return m == ModeSharded
}

func (m Mode) validate() error {
	switch m {
	case ModeSequential, ModeSharded:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidWorkerConfigs, string(m))
	}
}

// defaults returns the built-in configuration of mode.
func defaults(mode Mode) *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			LogFormat:    DefaultLogFormat,
			SkipQuestIDs: append([]string(nil), DefaultSkipQuestIDs...),
		},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			IPCheckURL:     DefaultIPCheckURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Files: Files{
				QueryFile: DefaultQueryFile,
				ProxyFile: DefaultProxyFile,
			},
		},
	}

	switch mode {
	case ModeSharded:
		cfg.Workers = Workers{
			ShardCount:   10,
			ShardTimeout: 10 * time.Minute,
			Cooldown:     8 * time.Hour,
		}
	default:
		cfg.Workers = Workers{
			ShardCount:   1,
			Cooldown:     480 * time.Minute,
			AccountPause: time.Second,
		}
	}

	return cfg
}
