// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-dav-sync/models"
)

// DefaultAuthorities is used when no authority is configured.
var DefaultAuthorities = []string{
	models.AuthorityEvents,
	models.AuthorityContacts,
	models.AuthorityTasks,
	models.AuthorityVirtualWebDAV,
}

const (
	DefaultDriver         = "sqlite3"
	DefaultCacheCapacity  = 50
	DefaultConcurrency    = 1
	DefaultRequestTimeout = 30 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if len(cfg.App.Authorities) == 0 {
		cfg.App.Authorities = append([]string(nil), DefaultAuthorities...)
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = DefaultCacheCapacity
	}
	if cfg.Workers.Concurrency == 0 {
		cfg.Workers.Concurrency = DefaultConcurrency
	}
}
