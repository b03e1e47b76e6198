// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker tracks the number of workers running at the same time.
type blockingWorker struct {
	running *atomic.Int32
	peak    *atomic.Int32
}

func (b *blockingWorker) Run(context.Context) {
	now := b.running.Add(1)
	for {
		peak := b.peak.Load()
		if now <= peak || b.peak.CompareAndSwap(peak, now) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	b.running.Add(-1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers(2, w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers(1).Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_RespectsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	var ws []Worker
	for range 8 {
		ws = append(ws, &blockingWorker{running: &running, peak: &peak})
	}

	require.NoError(t, NewWorkers(3, ws...).Run(context.Background()))

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestWorkers_Run_Sequential(t *testing.T) {
	var running, peak atomic.Int32
	ws := []Worker{
		&blockingWorker{running: &running, peak: &peak},
		&blockingWorker{running: &running, peak: &peak},
	}

	require.NoError(t, NewWorkers(1, ws...).Run(context.Background()))
	assert.EqualValues(t, 1, peak.Load())
}

func TestWorkers_Run_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &mockWorker{}
	err := NewWorkers(1, w).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, w.runCount.Load())
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(1, w)

	for range 3 {
		require.NoError(t, ws.Run(context.Background()))
	}
	assert.EqualValues(t, 3, w.runCount.Load())
}

// fakeRunner records requests and fills results from a callback.
type fakeRunner struct {
	mu       sync.Mutex
	requests []models.SyncRequest
	fill     func(req models.SyncRequest, result *models.SyncResult)
}

func (f *fakeRunner) Run(_ context.Context, _ syncer.Strategy, req models.SyncRequest, result *models.SyncResult) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.fill != nil {
		f.fill(req, result)
	}
}

type fakeStrategies struct {
	known map[string]bool
}

func (f fakeStrategies) ForAuthority(authority string) (syncer.Strategy, error) {
	if !f.known[authority] {
		return nil, errors.New("unknown authority")
	}
	return syncer.StrategyFunc(func(context.Context, models.Account, models.Extras, string,
		*syncer.LazyClient, store.Session, *models.SyncResult) error {
		return nil
	}), nil
}

func TestNewSyncWorkers(t *testing.T) {
	runner := &fakeRunner{
		fill: func(req models.SyncRequest, result *models.SyncResult) {
			result.Inserts = 2
			if req.Authority == models.AuthorityTasks {
				result.SoftErrors = 1
			}
		},
	}
	strategies := fakeStrategies{known: map[string]bool{models.AuthorityEvents: true, models.AuthorityTasks: true}}
	extras := models.Extras{models.ExtraResync}

	ws, err := NewSyncWorkers(runner, strategies,
		[]string{"alice", "bob"}, []string{models.AuthorityEvents, models.AuthorityTasks}, extras, 2, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 4, ws.Len())

	require.NoError(t, ws.Run(context.Background()))

	assert.Len(t, runner.requests, 4)
	for _, req := range runner.requests {
		assert.Equal(t, extras, req.Extras)
	}
	assert.Equal(t, models.SyncResult{Inserts: 8, SoftErrors: 2}, ws.Summary())
}

func TestNewSyncWorkers_UnknownAuthority(t *testing.T) {
	_, err := NewSyncWorkers(&fakeRunner{}, fakeStrategies{}, []string{"alice"}, []string{"journals"}, nil, 1, logger.Nop())
	assert.Error(t, err)
}

func TestSyncWorker_FreshResultPerRun(t *testing.T) {
	runner := &fakeRunner{
		fill: func(_ models.SyncRequest, result *models.SyncResult) {
			result.HardErrors++
		},
	}
	w := newSyncWorker(runner, nil, models.SyncRequest{Account: models.Account{Name: "alice"}}, logger.Nop())

	w.Run(context.Background())
	w.Run(context.Background())

	assert.EqualValues(t, 1, w.Result().HardErrors)
}
