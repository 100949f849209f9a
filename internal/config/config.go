// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, an optional config file and mode defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log format and the
	// quest skip-set.
	App App `envPrefix:"APP_"`

	// Adapter holds the platform endpoint and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the locations of the credential and proxy lists.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the batch scheduler settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON, TOML or YAML config file.
	// Populated via the CONFIG environment variable.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFormat selects the log renderer: "console" (colored, human readable)
	// or "json".
	// Env: APP_LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT"`

	// SkipQuestIDs lists quest identifiers that are never started or claimed.
	// Env: APP_SKIP_QUEST_IDS (comma separated)
	SkipQuestIDs []string `env:"SKIP_QUEST_IDS" envSeparator:","`
}

// Adapter holds settings of the outbound platform client.
type Adapter struct {
	// BaseURL is the platform origin, e.g. "https://tonstation.app".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// IPCheckURL is the public IP echo service probed through a proxy before
	// an account is processed. It must answer with {"ip": "..."}.
	// Env: ADAPTER_IP_CHECK_URL
	IPCheckURL string `env:"IP_CHECK_URL"`

	// RequestTimeout bounds every single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the locations of the process inputs.
type Storage struct {
	// Files holds the line-delimited input files.
	Files Files `envPrefix:"FILES_"`
}

// Files holds paths of the line-delimited inputs. Relative paths are resolved
// against the directory of the running executable.
type Files struct {
	// QueryFile lists one initData blob per line.
	// Env: STORAGE_FILES_QUERY_FILE
	QueryFile string `env:"QUERY_FILE"`

	// ProxyFile lists one proxy URL per line.
	// Env: STORAGE_FILES_PROXY_FILE
	ProxyFile string `env:"PROXY_FILE"`
}

// Workers holds configuration of the batch scheduler.
type Workers struct {
	// ShardCount is the number of parallel shards in sharded mode.
	// Env: WORKERS_SHARD_COUNT
	ShardCount int `env:"SHARD_COUNT"`

	// ShardTimeout bounds one shard's work within a pass.
	// Env: WORKERS_SHARD_TIMEOUT
	ShardTimeout time.Duration `env:"SHARD_TIMEOUT"`

	// Cooldown is the fixed pause between the end of a pass and the start of
	// the next one.
	// Env: WORKERS_COOLDOWN
	Cooldown time.Duration `env:"COOLDOWN"`

	// Schedule is an optional standard cron expression. When set it replaces
	// Cooldown: the next pass starts at the next matching time.
	// Env: WORKERS_SCHEDULE
	Schedule string `env:"SCHEDULE"`

	// AccountPause is the pause between two consecutive accounts of the same
	// unit of work.
	// Env: WORKERS_ACCOUNT_PAUSE
	AccountPause time.Duration `env:"ACCOUNT_PAUSE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources for the given mode. Sources are consulted in the
// following priority order (first non-zero value wins):
//  1. Environment variables (including a .env file next to the executable)
//  2. Config file (path taken from CONFIG)
//  3. Defaults of mode
//
// The binaries take no command-line flags.
func GetStructuredConfig(mode Mode) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(executableDir()).
		withEnv().
		withFile().
		withDefaults(mode).
		build()
}
