// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Accounts: []string{"alice"}},
		Storage: Storage{DB: DB{DSN: "file.db"}},
		Adapter: Adapter{HTTPAddress: "localhost:8080"},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder_FailsValidation(t *testing.T) {
	cfg, err := newTestBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAuthorities, cfg.App.Authorities)
	assert.Equal(t, DefaultDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultCacheCapacity, cfg.Cache.Capacity)
	assert.Equal(t, DefaultConcurrency, cfg.Workers.Concurrency)
}

func TestBuild_LaterSourceOverridesEarlier(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{
			App:   App{Accounts: []string{"bob"}},
			Cache: Cache{Capacity: 10},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, cfg.App.Accounts)
	assert.Equal(t, 10, cfg.Cache.Capacity)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN, "empty fields must not override")
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_ACCOUNTS", "alice,bob")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	b := newTestBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, []string{"alice", "bob"}, b.configs[0].App.Accounts)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("CACHE_CAPACITY", "many")

	b := newTestBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newTestBuilder("-accounts", "carol", "-d", "flags.db")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, []string{"carol"}, b.configs[0].App.Accounts)
	assert.Equal(t, "flags.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newTestBuilder("-no-such-flag")
	b.withFlags()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Accounts = []string{"json-account"}
	payload.Adapter.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, []string{"json-account"}, b.configs[1].App.Accounts)
	assert.Equal(t, 5*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "last-wins.db"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.db", b.configs[2].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Workers.Concurrency = 4
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_ACCOUNTS", "env-account")
	t.Setenv("ADAPTER_ADDRESS", "http://dav.example.com")

	cfg, err := newTestBuilder("-d", "flags.db", "-c", path, "-extras", "resync").
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, []string{"env-account"}, cfg.App.Accounts)
	assert.Equal(t, []string{"resync"}, cfg.App.Extras)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://dav.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4, cfg.Workers.Concurrency)
}
