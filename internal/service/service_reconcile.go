// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dav-sync/internal/adapter"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/models"
)

// collectionSyncFunc synchronizes the entries of one collection. The
// collection has a local ID when it is called.
type collectionSyncFunc func(ctx context.Context, dav adapter.DavClient, c *models.Collection) error

// reconcileCollections brings the local collection list of account in line
// with the remote one and calls syncEntries for every remote collection.
//
// Transient remote failures are counted as soft errors: a failed listing of
// collections ends the run, a failed collection is skipped. Every other
// failure is returned, and so is the context error once ctx is done.
func reconcileCollections(
	ctx context.Context,
	account models.Account,
	authority string,
	dav adapter.DavClient,
	session store.Session,
	result *models.SyncResult,
	now func() time.Time,
	syncEntries collectionSyncFunc,
) error {
	log := logger.FromContext(ctx)

	local, err := session.Collections(ctx, account.Name)
	if err != nil {
		return fmt.Errorf("list local collections: %w", err)
	}

	remote, err := dav.ListCollections(ctx, authority)
	if adapter.IsTransient(err) {
		result.SoftErrors++
		log.Warn().Err(err).Msg("remote collections unavailable")
		return nil
	}
	if err != nil {
		return fmt.Errorf("list remote collections: %w", err)
	}

	plan := buildCollectionPlan(remote, local)

	for _, c := range plan.Delete {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = session.DeleteCollection(ctx, c.ID); err != nil {
			return fmt.Errorf("delete collection %s: %w", c.URL, err)
		}
		result.Deletes++
		log.Debug().Str("collection", c.URL).Msg("collection removed remotely, deleted locally")
	}

	for i := range plan.Sync {
		if err = ctx.Err(); err != nil {
			return err
		}
		c := &plan.Sync[i]
		c.Account = account.Name
		c.Authority = authority

		if err = session.SaveCollection(ctx, c); err != nil {
			return fmt.Errorf("save collection %s: %w", c.URL, err)
		}

		err = syncEntries(ctx, dav, c)
		if adapter.IsTransient(err) {
			result.SoftErrors++
			log.Warn().Err(err).Str("collection", c.URL).Msg("collection skipped after remote failure")
			continue
		}
		if err != nil {
			return fmt.Errorf("sync collection %s: %w", c.URL, err)
		}

		if err = session.SaveCollection(ctx, c); err != nil {
			return fmt.Errorf("save sync token of %s: %w", c.URL, err)
		}
		if err = session.RecordLastSync(ctx, c.ID, now()); err != nil {
			return fmt.Errorf("record last sync of %s: %w", c.URL, err)
		}
	}

	return nil
}

// listingSince picks the sync token to list c with: none when extras ask for
// a re-listing or a full re-download.
func listingSince(c *models.Collection, extras models.Extras) string {
	if extras.Has(models.ExtraResync) || extras.Has(models.ExtraFullResync) {
		return ""
	}
	return c.SyncToken
}
