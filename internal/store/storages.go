// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dav-sync/internal/config"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
)

// Supported values of the storage driver setting.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Storages groups all repositories of the local store so they can be passed
// around the service layer as one value.
type Storages struct {
	// Providers hands out per-run sessions.
	Providers ProviderResolver

	// Accounts manages known accounts.
	Accounts AccountRepository

	// Authorities manages availability and access of authorities.
	Authorities AuthorityRepository

	// SyncStats reads last-sync bookkeeping for the status server.
	SyncStats SyncStatsRepository

	db *DB
}

// NewStorages initialises the local store:
//  1. Connects to the database selected by cfg.DB.Driver.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires all repositories to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Providers:   NewProviderResolver(db, log),
		Accounts:    NewAccountRepository(db),
		Authorities: NewAuthorityRepository(db),
		SyncStats:   NewSyncStatsRepository(db),
		db:          db,
	}
}

// Close closes the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
