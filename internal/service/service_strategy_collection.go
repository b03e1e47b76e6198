// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dav-sync/internal/adapter"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/internal/validators"
	"github.com/MKhiriev/go-dav-sync/models"
)

// Components an entry payload must contain to be accepted.
const (
	ComponentEvent = "VEVENT"
	ComponentCard  = "VCARD"
	ComponentTodo  = "VTODO"
)

// collectionStrategy synchronizes iCalendar and vCard collections: calendars,
// address books and task lists. Entries are stored with their raw payload.
type collectionStrategy struct {
	component string
	validator validators.Validator
	now       func() time.Time
}

// NewCollectionStrategy returns a strategy accepting entries that contain a
// "BEGIN:<component>" line.
func NewCollectionStrategy(component string) syncer.Strategy {
	return &collectionStrategy{
		component: component,
		validator: validators.NewEntryValidator(component),
		now:       time.Now,
	}
}

func NewEventsStrategy() syncer.Strategy {
	return NewCollectionStrategy(ComponentEvent)
}

func NewContactsStrategy() syncer.Strategy {
	return NewCollectionStrategy(ComponentCard)
}

func NewTasksStrategy() syncer.Strategy {
	return NewCollectionStrategy(ComponentTodo)
}

func (s *collectionStrategy) Sync(
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
		func(ctx context.Context, dav adapter.DavClient, c *models.Collection) error {
			return s.syncEntries(ctx, dav, session, c, extras, result)
		})
}

func (s *collectionStrategy) syncEntries(
	ctx context.Context,
	dav adapter.DavClient,
	session store.Session,
	c *models.Collection,
	extras models.Extras,
	result *models.SyncResult,
) error {
	log := logger.FromContext(ctx).WithFields("collection", c.URL)

	listing, err := dav.ListEntries(ctx, c.URL, listingSince(c, extras))
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	local, err := session.Entries(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("list local entries: %w", err)
	}

	plan, err := buildEntryPlan(ctx, listing, local, extras.Has(models.ExtraFullResync))
	if err != nil {
		return err
	}

	for _, href := range plan.Delete {
		if err = session.DeleteEntry(ctx, c.ID, href); err != nil {
			return fmt.Errorf("delete entry %s: %w", href, err)
		}
		result.Deletes++
	}

	for _, re := range plan.Download {
		data, etag, err := dav.GetEntry(ctx, re.Href)
		if errors.Is(err, adapter.ErrNotFound) {
			// removed between listing and download, the next listing reports it
			log.Debug().Str("href", re.Href).Msg("entry vanished before download")
			continue
		}
		if err != nil {
			return fmt.Errorf("download entry %s: %w", re.Href, err)
		}

		if etag == "" {
			etag = re.ETag
		}
		entry := models.Entry{CollectionID: c.ID, Href: re.Href, ETag: etag, Data: data}

		if err = s.validate(ctx, entry); err != nil {
			result.SkippedEntries++
			log.Warn().Err(err).Str("href", re.Href).Msg("received invalid entry, ignoring")
			continue
		}
		if err = session.SaveEntry(ctx, entry); err != nil {
			return fmt.Errorf("save entry %s: %w", re.Href, err)
		}

		if plan.isUpdate(re.Href) {
			result.Updates++
		} else {
			result.Inserts++
		}
	}

	c.SyncToken = listing.SyncToken
	return nil
}

func (s *collectionStrategy) validate(ctx context.Context, entry models.Entry) error {
	if err := s.validator.Validate(ctx, entry, validators.FieldHref, validators.FieldData); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
