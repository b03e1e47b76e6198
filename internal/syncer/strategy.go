// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import (
	"context"

	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/models"
)

// Strategy synchronizes one entity type. Implementations receive resources
// that are owned by the orchestrator: they must not close the session or the
// client and must not keep either after Sync returns.
//
// Failures are returned, not swallowed, unless the strategy fully resolves
// them itself (e.g. a single unparsable entry), in which case it accounts
// for them in result.
type Strategy interface {
	Sync(
		ctx context.Context,
		account models.Account,
		extras models.Extras,
		authority string,
		client *LazyClient,
		session store.Session,
		result *models.SyncResult,
	) error
}

// StrategyFunc adapts a function to [Strategy].
type StrategyFunc func(ctx context.Context, account models.Account, extras models.Extras, authority string,
	client *LazyClient, session store.Session, result *models.SyncResult) error

func (f StrategyFunc) Sync(ctx context.Context, account models.Account, extras models.Extras, authority string,
	client *LazyClient, session store.Session, result *models.SyncResult) error {
	return f(ctx, account, extras, authority, client, session, result)
}
