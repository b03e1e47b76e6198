// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/models"
)

// Workers runs a fixed set of workers.
type Workers struct {
	workers     []Worker
	concurrency int
}

// NewWorkers groups workers; at most concurrency of them run at the same
// time. A concurrency below 1 means no limit.
func NewWorkers(concurrency int, workers ...Worker) *Workers {
	return &Workers{workers: workers, concurrency: concurrency}
}

// NewSyncWorkers builds one sync worker per account and authority. extras
// are shared by all requests.
func NewSyncWorkers(
	runner SyncRunner,
	strategies StrategyResolver,
	accounts, authorities []string,
	extras models.Extras,
	concurrency int,
	log *logger.Logger,
) (*Workers, error) {
	workers := make([]Worker, 0, len(accounts)*len(authorities))

	for _, account := range accounts {
		for _, authority := range authorities {
			strategy, err := strategies.ForAuthority(authority)
			if err != nil {
				return nil, fmt.Errorf("sync worker for %s: %w", authority, err)
			}

			req := models.SyncRequest{
				Account:   models.Account{Name: account},
				Authority: authority,
				Extras:    extras,
			}
			workers = append(workers, newSyncWorker(runner, strategy, req, log))
		}
	}

	return NewWorkers(concurrency, workers...), nil
}

// Run starts all workers and waits for them. Workers not started yet when
// ctx is canceled are skipped and ctx's error is returned.
func (w *Workers) Run(ctx context.Context) error {
	var g errgroup.Group
	if w.concurrency > 0 {
		g.SetLimit(w.concurrency)
	}

	for _, worker := range w.workers {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			worker.Run(ctx)
			return nil
		})
	}

	_ = g.Wait()
	return ctx.Err()
}

// Summary adds up the results of all sync workers.
func (w *Workers) Summary() models.SyncResult {
	var total models.SyncResult
	for _, worker := range w.workers {
		sw, ok := worker.(interface{ Result() models.SyncResult })
		if !ok {
			continue
		}
		r := sw.Result()
		total.HardErrors += r.HardErrors
		total.SoftErrors += r.SoftErrors
		total.Inserts += r.Inserts
		total.Updates += r.Updates
		total.Deletes += r.Deletes
		total.SkippedEntries += r.SkippedEntries
	}
	return total
}

// Len returns the number of workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
