// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStats is the last successful sync of one collection through one
// authority.
type SyncStats struct {
	CollectionID string    `json:"collection_id"`
	Authority    string    `json:"authority"`
	LastSync     time.Time `json:"last_sync"`
}

// LastSynced is the user-facing view of [SyncStats]: the authority is
// replaced by a readable application name.
type LastSynced struct {
	AppName    string    `json:"app_name"`
	LastSynced time.Time `json:"last_synced"`
}
