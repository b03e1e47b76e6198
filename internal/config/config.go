// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-dav-sync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the accounts, authorities and extras of the sync pass.
	App App `envPrefix:"APP_"`

	// Storage holds the local data store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the optional status server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote collection server settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the response cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds settings of the sync workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App describes what a sync pass synchronizes.
type App struct {
	// Accounts lists the identities to synchronize.
	// Env: APP_ACCOUNTS (comma separated)
	Accounts []string `env:"ACCOUNTS" envSeparator:","`

	// Authorities lists the raw authorities to synchronize for every
	// account. Defaults to [DefaultAuthorities].
	// Env: APP_AUTHORITIES (comma separated)
	Authorities []string `env:"AUTHORITIES" envSeparator:","`

	// Extras are forwarded verbatim to every sync run.
	// Env: APP_EXTRAS (comma separated)
	Extras []string `env:"EXTRAS" envSeparator:","`

	// RemovedAccounts are deleted with all their local data before the
	// pass starts.
	// Env: APP_REMOVED_ACCOUNTS (comma separated)
	RemovedAccounts []string `env:"REMOVED_ACCOUNTS" envSeparator:","`

	// RevokedAuthorities lose their permission grant before the pass
	// starts; runs against them fail with a permission error.
	// Env: APP_REVOKED_AUTHORITIES (comma separated)
	RevokedAuthorities []string `env:"REVOKED_AUTHORITIES" envSeparator:","`
}

// Storage groups the configuration of the local data store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local data store.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. A file path for sqlite3, a connection
	// URI for pgx.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the status server. The server is started only
// when HTTPAddress is set.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds settings of the remote collection server client.
type Adapter struct {
	// HTTPAddress is the base address of the remote server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds settings of the HEAD response cache.
type Cache struct {
	// Capacity is the maximum number of cached responses.
	// Env: CACHE_CAPACITY
	Capacity int `env:"CAPACITY"`
}

// Workers holds settings of the sync workers.
type Workers struct {
	// Concurrency limits how many sync runs execute at the same time.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after merging, before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
