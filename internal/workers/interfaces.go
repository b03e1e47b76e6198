// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs sync passes. Every worker performs one pass for one
// (account, authority) pair; [Workers] runs a set of them with bounded
// concurrency. Deciding when to run a pass again is up to the caller.
package workers

import (
	"context"

	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run blocks until the work is done or ctx is canceled.
type Worker interface {
	Run(ctx context.Context)
}

// SyncRunner performs one sync pass; implemented by [syncer.Orchestrator].
type SyncRunner interface {
	Run(ctx context.Context, strategy syncer.Strategy, req models.SyncRequest, result *models.SyncResult)
}

// StrategyResolver returns the strategy of a raw authority.
type StrategyResolver interface {
	ForAuthority(authority string) (syncer.Strategy, error)
}
