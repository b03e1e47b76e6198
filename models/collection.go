// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection is a remote collection (calendar, address book, task list or
// document mount) together with its local bookkeeping.
type Collection struct {
	// ID is the local identifier. Empty for collections that only exist
	// remotely so far.
	ID          string `json:"id,omitempty"`
	Account     string `json:"account,omitempty"`
	Authority   string `json:"authority,omitempty"`
	URL         string `json:"url"`
	DisplayName string `json:"display_name"`

	// SyncToken is the incremental change marker returned by the last
	// listing. An empty token forces a full listing.
	SyncToken string `json:"sync_token,omitempty"`
}

// Entry is a single synchronized entity stored locally.
type Entry struct {
	CollectionID string `json:"collection_id"`
	Href         string `json:"href"`
	ETag         string `json:"etag"`
	Data         []byte `json:"data,omitempty"`
}

// RemoteEntry is one member of a remote collection listing.
type RemoteEntry struct {
	Href    string `json:"href"`
	ETag    string `json:"etag"`
	Deleted bool   `json:"deleted,omitempty"`
}

// EntryListing is the response to a collection listing. Full is set when
// the listing enumerates every member of the collection rather than only the
// changes since the requested sync token.
type EntryListing struct {
	Entries   []RemoteEntry `json:"entries"`
	SyncToken string        `json:"sync_token"`
	Full      bool          `json:"full"`
}
