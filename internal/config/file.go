package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. Durations
// are written as strings ("30s", "8h").
type StructuredFileConfig struct {
	App struct {
		LogFormat    string   `json:"log_format" toml:"log_format" yaml:"log_format"`
		SkipQuestIDs []string `json:"skip_quest_ids" toml:"skip_quest_ids" yaml:"skip_quest_ids"`
	} `json:"app,omitempty" toml:"app" yaml:"app"`

	Adapter struct {
		BaseURL        string   `json:"base_url" toml:"base_url" yaml:"base_url"`
		IPCheckURL     string   `json:"ip_check_url" toml:"ip_check_url" yaml:"ip_check_url"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter" yaml:"adapter"`

	Storage struct {
		Files struct {
			QueryFile string `json:"query_file" toml:"query_file" yaml:"query_file"`
			ProxyFile string `json:"proxy_file" toml:"proxy_file" yaml:"proxy_file"`
		} `json:"files,omitempty" toml:"files" yaml:"files"`
	} `json:"storage,omitempty" toml:"storage" yaml:"storage"`

	Workers struct {
		ShardCount   int      `json:"shard_count" toml:"shard_count" yaml:"shard_count"`
		ShardTimeout Duration `json:"shard_timeout" toml:"shard_timeout" yaml:"shard_timeout"`
		Cooldown     Duration `json:"cooldown" toml:"cooldown" yaml:"cooldown"`
		Schedule     string   `json:"schedule" toml:"schedule" yaml:"schedule"`
		AccountPause Duration `json:"account_pause" toml:"account_pause" yaml:"account_pause"`
	} `json:"workers,omitempty" toml:"workers" yaml:"workers"`
}

func parseConfigFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", filepath.Base(path), err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFormat:    fileCfg.App.LogFormat,
			SkipQuestIDs: fileCfg.App.SkipQuestIDs,
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			IPCheckURL:     fileCfg.Adapter.IPCheckURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Files: Files{
				QueryFile: fileCfg.Storage.Files.QueryFile,
				ProxyFile: fileCfg.Storage.Files.ProxyFile,
			},
		},
		Workers: Workers{
			ShardCount:   fileCfg.Workers.ShardCount,
			ShardTimeout: time.Duration(fileCfg.Workers.ShardTimeout),
			Cooldown:     time.Duration(fileCfg.Workers.Cooldown),
			Schedule:     fileCfg.Workers.Schedule,
			AccountPause: time.Duration(fileCfg.Workers.AccountPause),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" in JSON, TOML and YAML, and from plain numbers
// (nanoseconds) in JSON.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	case nil:
		*d = 0
		return nil
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML and
// YAML decoders.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
