// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncResult aggregates the outcome of one sync run. It is created by the
// caller before the run and inspected after it; the orchestrator and the
// strategy only ever increment it.
//
// HardErrors and SoftErrors are the values an external scheduler uses to
// decide about retry and backoff. The remaining counters are owned by the
// strategy.
type SyncResult struct {
	// HardErrors counts failures that prevented the run from making
	// progress (denied or unavailable local store, unclassified errors).
	HardErrors int64 `json:"hard_errors"`

	// SoftErrors counts transient failures such as a lost local store
	// connection that are expected to resolve on a later attempt.
	SoftErrors int64 `json:"soft_errors"`

	Inserts        int64 `json:"inserts"`
	Updates        int64 `json:"updates"`
	Deletes        int64 `json:"deletes"`
	SkippedEntries int64 `json:"skipped_entries"`
}

// HasErrors reports whether the run recorded any hard or soft error.
func (r *SyncResult) HasErrors() bool {
	return r.HardErrors > 0 || r.SoftErrors > 0
}
