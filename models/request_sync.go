// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Extras recognised by the bundled strategies. Any other value is passed to
// the strategy untouched.
const (
	// ExtraResync requests a re-listing of all remote entries, ignoring the
	// incremental change marker stored for the collection. Useful after a
	// setting that changes the remote resource list was modified.
	ExtraResync = "resync"

	// ExtraFullResync requests that every entry is downloaded and parsed
	// again, even when its version tag did not change. Useful after a
	// setting that changes local parsing was modified.
	ExtraFullResync = "full_resync"
)

// Extras is the ordered list of string flags attached to one sync run.
type Extras []string

// Has reports whether flag is present.
func (e Extras) Has(flag string) bool {
	return slices.Contains(e, flag)
}

// SyncRequest describes one synchronization pass. It must not be modified
// while the run is in progress.
type SyncRequest struct {
	// Account is the identity whose data is synchronized.
	Account Account `json:"account"`

	// Authority is the raw authority as requested by the caller. It may be a
	// virtual alias that the orchestrator remaps before acquiring resources.
	Authority string `json:"authority"`

	// Extras modify the behaviour of the strategy for this run.
	Extras Extras `json:"extras,omitempty"`
}
