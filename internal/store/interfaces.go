// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local data store of go-dav-sync on top of
// database/sql. Two drivers are supported: SQLite (mattn/go-sqlite3) for a
// single-user installation and PostgreSQL (pgx) for a shared one.
//
// Every sync run works on a [Session] acquired through [ProviderResolver]
// for exactly one authority. A session owns a dedicated database connection
// and must be closed once the run ends.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dav-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProviderResolver hands out sessions for authorities.
type ProviderResolver interface {
	// Acquire returns a session for authority. It fails with
	// [ErrPermissionDenied] when access is not granted and with
	// [ErrProviderUnavailable] when the authority is unknown or disabled or
	// the store cannot be reached. A returned session must be closed by the
	// caller.
	Acquire(ctx context.Context, authority string) (Session, error)
}

// Session is the local-store handle of one sync run for one authority. It
// must not be shared between runs and is invalid after Close.
type Session interface {
	// Authority returns the authority the session was acquired for.
	Authority() string

	// Collections returns the local collections of account within the
	// session's authority. It fails with [ErrAccountRemoved] if the account
	// does not exist anymore.
	Collections(ctx context.Context, account string) ([]models.Collection, error)

	// SaveCollection inserts or updates c. A new local ID is assigned to c
	// when it has none.
	SaveCollection(ctx context.Context, c *models.Collection) error

	// DeleteCollection removes a collection together with its entries and
	// sync stats.
	DeleteCollection(ctx context.Context, collectionID string) error

	// Entries returns all local entries of a collection ordered by href.
	Entries(ctx context.Context, collectionID string) ([]models.Entry, error)

	// SaveEntry inserts or replaces an entry.
	SaveEntry(ctx context.Context, entry models.Entry) error

	// DeleteEntry removes an entry. Deleting a missing entry is not an error.
	DeleteEntry(ctx context.Context, collectionID, href string) error

	// RecordLastSync stores the time of the last successful sync of a
	// collection through the session's authority.
	RecordLastSync(ctx context.Context, collectionID string, at time.Time) error

	// Close releases the underlying connection. Calling Close more than once
	// returns the result of the first call.
	Close() error
}

// AccountRepository manages the accounts known to the local store.
type AccountRepository interface {
	EnsureAccount(ctx context.Context, name string) error
	RemoveAccount(ctx context.Context, name string) error
}

// AuthorityRepository manages availability and access of authorities.
type AuthorityRepository interface {
	// RevokeAuthority withdraws the access grant of a known authority, after
	// which acquiring it is refused with [ErrPermissionDenied]. Its enabled
	// state is left as is. An unknown authority yields
	// [ErrProviderUnavailable].
	RevokeAuthority(ctx context.Context, name string) error
}

// SyncStatsRepository reads the sync bookkeeping written by sessions.
type SyncStatsRepository interface {
	GetLastSynced(ctx context.Context, collectionID string) ([]models.SyncStats, error)
}
