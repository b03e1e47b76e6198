// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncer coordinates a single synchronization pass: it resolves the
// authority, acquires a local-store session and a lazily built remote
// client, hands both to a [Strategy], classifies whatever the strategy
// returns and releases the resources on every exit path.
package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/MKhiriev/go-dav-sync/internal/adapter"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/metrics"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/internal/utils"
	"github.com/MKhiriev/go-dav-sync/models"
)

// ErrStrategyPanic wraps a value recovered from a panicking strategy.
var ErrStrategyPanic = errors.New("strategy panicked")

// ResolveAuthority maps the virtual WebDAV authority onto the authority that
// hosts documents in the local store. Other authorities are returned as is.
func ResolveAuthority(raw string) string {
	if raw == models.AuthorityVirtualWebDAV {
		return models.AuthorityWebDAVDocuments
	}
	return raw
}

// Orchestrator runs sync passes. It holds no per-run state and is safe for
// concurrent use by runs of different accounts or authorities.
type Orchestrator struct {
	providers store.ProviderResolver
	clients   adapter.ClientFactory
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewOrchestrator builds an orchestrator. m may be nil.
func NewOrchestrator(providers store.ProviderResolver, clients adapter.ClientFactory, m *metrics.Metrics, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		providers: providers,
		clients:   clients,
		metrics:   m,
		logger:    log,
	}
}

// Run performs one sync pass for req using strategy and records the outcome
// in result. It never returns an error and never panics on behalf of the
// strategy: every failure ends up in result and in the log.
//
// The session handed to the strategy is closed before Run returns and must
// not be used afterwards.
func (o *Orchestrator) Run(ctx context.Context, strategy Strategy, req models.SyncRequest, result *models.SyncResult) {
	authority := ResolveAuthority(req.Authority)
	runID := utils.NewUUID()

	log := o.logger.WithFields("run_id", runID, "account", req.Account.Name, "authority", authority)
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	log.Info().
		Str("raw_authority", req.Authority).
		Strs("extras", req.Extras).
		Msg("sync started")

	session, err := o.providers.Acquire(ctx, authority)
	if err == nil && session == nil {
		err = fmt.Errorf("%w: no session for %q", store.ErrProviderUnavailable, authority)
	}
	if err != nil {
		result.HardErrors++
		log.Warn().Err(err).Msg("cannot acquire local store session, sync aborted")
		o.finish(log, req, authority, metrics.OutcomeAcquisitionFailed, result)
		return
	}

	client := NewLazyClient(func() (adapter.DavClient, error) {
		return o.clients(ctx, req.Account)
	})

	outcome := metrics.OutcomeCompleted
	defer func() {
		o.release(log, client, session)
		o.finish(log, req, authority, outcome, result)
	}()

	if err = o.invoke(ctx, strategy, req, authority, client, session, result); err != nil {
		outcome = o.handleFailure(log, NewFailure(err), result)
	}
}

func (o *Orchestrator) invoke(ctx context.Context, strategy Strategy, req models.SyncRequest, authority string,
	client *LazyClient, session store.Session, result *models.SyncResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrStrategyPanic, r)
		}
	}()

	return strategy.Sync(ctx, req.Account, req.Extras, authority, client, session, result)
}

func (o *Orchestrator) handleFailure(log *logger.Logger, failure *Failure, result *models.SyncResult) string {
	switch Classify(failure.Kind) {
	case SoftTransient:
		result.SoftErrors++
		log.Warn().Err(failure.Err).Stringer("failure", failure.Kind).Msg("transient failure, sync interrupted")
		return metrics.OutcomeSoftFailed
	case Ignorable:
		log.Warn().Err(failure.Err).Stringer("failure", failure.Kind).Msg("account no longer exists, sync skipped")
		return metrics.OutcomeIgnored
	default:
		result.HardErrors++
		log.Error().Err(failure.Err).Stringer("failure", failure.Kind).Msg("sync failed")
		return metrics.OutcomeHardFailed
	}
}

// release closes the client, if one was built, and then the session. Close
// errors are logged and never counted.
func (o *Orchestrator) release(log *logger.Logger, client *LazyClient, session store.Session) {
	var err error
	if client.IsInitialized() {
		err = multierr.Append(err, client.close())
	}
	err = multierr.Append(err, session.Close())

	if err != nil {
		log.Warn().Errs("errors", multierr.Errors(err)).Msg("error releasing sync resources")
	}
}

func (o *Orchestrator) finish(log *logger.Logger, req models.SyncRequest, authority, outcome string, result *models.SyncResult) {
	o.metrics.RecordRun(authority, outcome)

	log.Info().
		Strs("extras", req.Extras).
		Str("outcome", outcome).
		Dict("result", zerolog.Dict().
			Int64("hard_errors", result.HardErrors).
			Int64("soft_errors", result.SoftErrors).
			Int64("inserts", result.Inserts).
			Int64("updates", result.Updates).
			Int64("deletes", result.Deletes).
			Int64("skipped_entries", result.SkippedEntries)).
		Msg("sync finished")
}
