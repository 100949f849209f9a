// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]: no negative counts or durations.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	w := cfg.Workers
	if w.ShardCount < 0 || w.ShardTimeout < 0 || w.Cooldown < 0 || w.AccountPause < 0 {
		return fmt.Errorf("%w: negative value", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *FarmerConfig) validate() error {
	if cfg.App.LogFormat != LogFormatConsole && cfg.App.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: log format %q", ErrInvalidAppConfigs, cfg.App.LogFormat)
	}

	if err := validateURL(cfg.Adapter.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.UseProxy {
		if err := validateURL(cfg.Adapter.IPCheckURL); err != nil {
			return fmt.Errorf("%w: ip check url: %v", ErrInvalidAdapterConfigs, err)
		}
	}

	if cfg.Storage.QueryFile == "" {
		return fmt.Errorf("%w: query file is required", ErrInvalidStorageConfigs)
	}
	if cfg.Adapter.UseProxy && cfg.Storage.ProxyFile == "" {
		return fmt.Errorf("%w: proxy file is required", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.ShardCount < 1 {
		return fmt.Errorf("%w: shard count must be at least 1", ErrInvalidWorkerConfigs)
	}
	if cfg.Mode == ModeSharded && cfg.Workers.ShardTimeout <= 0 {
		return fmt.Errorf("%w: shard timeout must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.AccountPause < 0 {
		return fmt.Errorf("%w: negative account pause", ErrInvalidWorkerConfigs)
	}
	if _, err := cfg.Workers.PassSchedule(); err != nil {
		return err
	}

	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}
	return nil
}
