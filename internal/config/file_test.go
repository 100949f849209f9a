package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func assertFullFileConfig(t *testing.T, cfg *StructuredConfig) {
	t.Helper()
	assert.Equal(t, "json", cfg.App.LogFormat)
	assert.Equal(t, []string{"q1"}, cfg.App.SkipQuestIDs)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "accounts.txt", cfg.Storage.Files.QueryFile)
	assert.Equal(t, 5, cfg.Workers.ShardCount)
	assert.Equal(t, 3*time.Minute, cfg.Workers.ShardTimeout)
	assert.Equal(t, 6*time.Hour, cfg.Workers.Cooldown)
}

// ── parseConfigFile ──────────────────────────────────────────────────────────

func TestParseConfigFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"log_format": "json", "skip_quest_ids": ["q1"]},
		"adapter": {"base_url": "http://127.0.0.1:9000", "request_timeout": "45s"},
		"storage": {"files": {"query_file": "accounts.txt"}},
		"workers": {"shard_count": 5, "shard_timeout": "3m", "cooldown": "6h"}
	}`)

	cfg, err := parseConfigFile(path)

	require.NoError(t, err)
	assertFullFileConfig(t, cfg)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseConfigFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[app]
log_format = "json"
skip_quest_ids = ["q1"]

[adapter]
base_url = "http://127.0.0.1:9000"
request_timeout = "45s"

[storage.files]
query_file = "accounts.txt"

[workers]
shard_count = 5
shard_timeout = "3m"
cooldown = "6h"
`)

	cfg, err := parseConfigFile(path)

	require.NoError(t, err)
	assertFullFileConfig(t, cfg)
}

func TestParseConfigFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
app:
  log_format: json
  skip_quest_ids: [q1]
adapter:
  base_url: http://127.0.0.1:9000
  request_timeout: 45s
storage:
  files:
    query_file: accounts.txt
workers:
  shard_count: 5
  shard_timeout: 3m
  cooldown: 6h
`)

	cfg, err := parseConfigFile(path)

	require.NoError(t, err)
	assertFullFileConfig(t, cfg)
}

func TestParseConfigFile_NumericJSONDuration(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"workers": {"cooldown": 1000000000}}`)

	cfg, err := parseConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.Cooldown)
}

func TestParseConfigFile_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, err := parseConfigFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "config.ini", "a=b")
		_, err := parseConfigFile(path)
		assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempConfig(t, "config.json", "{not json")
		_, err := parseConfigFile(path)
		require.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeTempConfig(t, "config.json", `{"workers": {"cooldown": "soon"}}`)
		_, err := parseConfigFile(path)
		require.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
