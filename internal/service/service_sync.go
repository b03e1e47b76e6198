// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-dav-sync/models"
)

// collectionPlan is the result of comparing remote and local collections.
type collectionPlan struct {
	// Sync holds every remote collection, merged with its local bookkeeping
	// when the collection is already known. New collections have no ID.
	Sync []models.Collection

	// Delete holds local collections that disappeared remotely.
	Delete []models.Collection
}

// buildCollectionPlan makes two passes: over remote collections to find new
// and known ones, then over local collections to find the ones that are gone.
// Collections are matched by URL.
func buildCollectionPlan(remote, local []models.Collection) collectionPlan {
	var plan collectionPlan

	localIndex := make(map[string]models.Collection, len(local))
	for _, lc := range local {
		localIndex[lc.URL] = lc
	}

	remoteIndex := make(map[string]struct{}, len(remote))
	for _, rc := range remote {
		remoteIndex[rc.URL] = struct{}{}

		lc, known := localIndex[rc.URL]
		if !known {
			plan.Sync = append(plan.Sync, models.Collection{URL: rc.URL, DisplayName: rc.DisplayName})
			continue
		}

		lc.DisplayName = rc.DisplayName
		plan.Sync = append(plan.Sync, lc)
	}

	for _, lc := range local {
		if _, ok := remoteIndex[lc.URL]; !ok {
			plan.Delete = append(plan.Delete, lc)
		}
	}

	return plan
}

// entryPlan is the result of comparing a remote listing with local entries.
type entryPlan struct {
	// Download holds entries that are new or changed remotely.
	Download []models.RemoteEntry

	// Delete holds hrefs of local entries that were deleted remotely or are
	// missing from a full listing.
	Delete []string

	// known is the set of hrefs present locally, used to tell inserts from
	// updates.
	known map[string]struct{}
}

func (p entryPlan) isUpdate(href string) bool {
	_, ok := p.known[href]
	return ok
}

// buildEntryPlan compares listing with local entries.
//
//   - Pass 1 (over the listing): tombstones of local entries are deleted, new
//     entries and entries with a different ETag are downloaded. With
//     redownload every live entry is downloaded.
//   - Pass 2 (over local entries, full listings only): entries absent from
//     the listing are deleted.
//
// ctx cancellation is checked on every iteration so large collections can be
// abandoned early.
func buildEntryPlan(ctx context.Context, listing models.EntryListing, local []models.Entry, redownload bool) (entryPlan, error) {
	plan := entryPlan{known: make(map[string]struct{}, len(local))}

	localIndex := make(map[string]models.Entry, len(local))
	for _, le := range local {
		localIndex[le.Href] = le
		plan.known[le.Href] = struct{}{}
	}

	listed := make(map[string]struct{}, len(listing.Entries))
	for _, re := range listing.Entries {
		if err := ctx.Err(); err != nil {
			return entryPlan{}, err
		}
		listed[re.Href] = struct{}{}

		le, existsLocally := localIndex[re.Href]
		switch {
		case re.Deleted && existsLocally:
			plan.Delete = append(plan.Delete, re.Href)
		case re.Deleted:
			// created and deleted remotely before we ever saw it
		case !existsLocally, redownload, le.ETag != re.ETag:
			plan.Download = append(plan.Download, re)
		}
	}

	if !listing.Full {
		return plan, nil
	}

	for _, le := range local {
		if err := ctx.Err(); err != nil {
			return entryPlan{}, err
		}
		if _, ok := listed[le.Href]; !ok {
			plan.Delete = append(plan.Delete, le.Href)
		}
	}

	return plan, nil
}
