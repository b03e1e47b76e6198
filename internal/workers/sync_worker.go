// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/models"
)

// syncWorker runs one sync pass for one account and raw authority.
type syncWorker struct {
	runner   SyncRunner
	strategy syncer.Strategy
	request  models.SyncRequest
	logger   *logger.Logger

	mu     sync.Mutex
	result models.SyncResult
}

func newSyncWorker(runner SyncRunner, strategy syncer.Strategy, req models.SyncRequest, log *logger.Logger) *syncWorker {
	return &syncWorker{
		runner:   runner,
		strategy: strategy,
		request:  req,
		logger:   log.WithFields("account", req.Account.Name, "raw_authority", req.Authority),
	}
}

// Run performs the pass with a fresh result and keeps the result for
// [syncWorker.Result].
func (w *syncWorker) Run(ctx context.Context) {
	var result models.SyncResult
	w.runner.Run(ctx, w.strategy, w.request, &result)

	w.mu.Lock()
	w.result = result
	w.mu.Unlock()

	event := w.logger.Debug()
	if result.HasErrors() {
		event = w.logger.Warn()
	}
	event.
		Int64("hard_errors", result.HardErrors).
		Int64("soft_errors", result.SoftErrors).
		Int64("inserts", result.Inserts).
		Int64("updates", result.Updates).
		Int64("deletes", result.Deletes).
		Int64("skipped_entries", result.SkippedEntries).
		Msg("sync worker done")
}

// Result returns the result of the last pass.
func (w *syncWorker) Result() models.SyncResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}
