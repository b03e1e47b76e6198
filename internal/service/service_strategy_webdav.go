// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dav-sync/internal/adapter"
	"github.com/MKhiriev/go-dav-sync/internal/cache"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/metrics"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/models"
)

// HeadCache caches HEAD responses by document href and ETag. It is shared by
// all concurrent WebDAV runs.
type HeadCache = cache.VersionedCache[models.HeadResponse]

// webdavStrategy synchronizes WebDAV mounts. Only document metadata is
// stored locally; document bodies are fetched on demand by consumers.
type webdavStrategy struct {
	heads   *HeadCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewWebDAVStrategy returns the strategy for WebDAV mounts. heads is required,
// m may be nil.
func NewWebDAVStrategy(heads *HeadCache, m *metrics.Metrics) syncer.Strategy {
	return &webdavStrategy{heads: heads, metrics: m, now: time.Now}
}

func (s *webdavStrategy) Sync(
	ctx context.Context,
	account models.Account,
	extras models.Extras,
	authority string,
	client *syncer.LazyClient,
	session store.Session,
	result *models.SyncResult,
) error {
	dav, err := client.Get()
	if err != nil {
		return fmt.Errorf("build dav client: %w", err)
	}

	return reconcileCollections(ctx, account, authority, dav, session, result, s.now,
		func(ctx context.Context, dav adapter.DavClient, mount *models.Collection) error {
			return s.syncDocuments(ctx, dav, session, mount, extras, result)
		})
}

func (s *webdavStrategy) syncDocuments(
	ctx context.Context,
	dav adapter.DavClient,
	session store.Session,
	mount *models.Collection,
	extras models.Extras,
	result *models.SyncResult,
) error {
	log := logger.FromContext(ctx).WithFields("mount", mount.URL)

	listing, err := dav.ListEntries(ctx, mount.URL, listingSince(mount, extras))
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	local, err := session.Entries(ctx, mount.ID)
	if err != nil {
		return fmt.Errorf("list local documents: %w", err)
	}

	refresh := extras.Has(models.ExtraFullResync)
	plan, err := buildEntryPlan(ctx, listing, local, refresh)
	if err != nil {
		return err
	}

	for _, href := range plan.Delete {
		if err = session.DeleteEntry(ctx, mount.ID, href); err != nil {
			return fmt.Errorf("delete document %s: %w", href, err)
		}
		result.Deletes++
	}

	for _, doc := range plan.Download {
		head, err := s.head(ctx, dav, doc, refresh)
		if errors.Is(err, adapter.ErrNotFound) {
			log.Debug().Str("href", doc.Href).Msg("document vanished before HEAD")
			continue
		}
		if err != nil {
			return fmt.Errorf("head document %s: %w", doc.Href, err)
		}

		data, err := json.Marshal(head)
		if err != nil {
			return fmt.Errorf("encode metadata of %s: %w", doc.Href, err)
		}

		entry := models.Entry{CollectionID: mount.ID, Href: doc.Href, ETag: head.ETag, Data: data}
		if err = session.SaveEntry(ctx, entry); err != nil {
			return fmt.Errorf("save document %s: %w", doc.Href, err)
		}

		if plan.isUpdate(doc.Href) {
			result.Updates++
		} else {
			result.Inserts++
		}
	}

	mount.SyncToken = listing.SyncToken
	return nil
}

// head returns the metadata of doc, from the cache when a response for the
// same href and ETag is known. With refresh the cache is bypassed but still
// updated.
func (s *webdavStrategy) head(ctx context.Context, dav adapter.DavClient, doc models.RemoteEntry, refresh bool) (models.HeadResponse, error) {
	if !refresh {
		cached, ok := s.heads.Get(doc.Href, doc.ETag)
		s.metrics.RecordCacheLookup(ok)
		if ok {
			return cached, nil
		}
	}

	head, err := dav.Head(ctx, doc.Href)
	if err != nil {
		return models.HeadResponse{}, err
	}
	if head.ETag == "" {
		head.ETag = doc.ETag
	}

	s.heads.Put(doc.Href, head.ETag, head)
	return head, nil
}
