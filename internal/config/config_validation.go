// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

var supportedDrivers = []string{"sqlite3", "pgx"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults have been applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if len(cfg.App.Accounts) == 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Workers.Concurrency < 0 || cfg.Cache.Capacity < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
