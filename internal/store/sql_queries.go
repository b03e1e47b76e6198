// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Table names of the local store schema (see migrations/00001_init.sql).
const (
	tableAuthorities = "authorities"
	tableAccounts    = "accounts"
	tableCollections = "collections"
	tableEntries     = "entries"
	tableSyncStats   = "sync_stats"
)

// Conflict clauses used to turn inserts into upserts. Both SQLite and
// PostgreSQL understand the ON CONFLICT ... excluded syntax.
const (
	upsertCollectionSuffix = "ON CONFLICT (id) DO UPDATE SET url = excluded.url, display_name = excluded.display_name, sync_token = excluded.sync_token"
	upsertEntrySuffix      = "ON CONFLICT (collection_id, href) DO UPDATE SET etag = excluded.etag, data = excluded.data"
	upsertSyncStatsSuffix  = "ON CONFLICT (collection_id, authority) DO UPDATE SET last_sync = excluded.last_sync"
	insertAccountSuffix    = "ON CONFLICT (name) DO NOTHING"
)

var collectionColumns = []string{"id", "account", "authority", "url", "display_name", "sync_token"}
