// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains the client of the remote collection server. A
// client is bound to one account and is created lazily by the sync
// orchestrator, only when a strategy actually talks to the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dav-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DavClient talks to the remote collection server on behalf of one account.
type DavClient interface {
	// ListCollections returns the remote collections of an authority.
	ListCollections(ctx context.Context, authority string) ([]models.Collection, error)

	// ListEntries lists the members of a collection. An empty since token
	// requests a full listing, otherwise only changes after since are
	// returned.
	ListEntries(ctx context.Context, collectionURL, since string) (models.EntryListing, error)

	// GetEntry downloads an entry and returns its payload and ETag.
	GetEntry(ctx context.Context, href string) ([]byte, string, error)

	// Head fetches document metadata without the payload.
	Head(ctx context.Context, href string) (models.HeadResponse, error)

	// Close releases the connections held by the client.
	Close() error
}

// ClientFactory creates a [DavClient] for an account.
type ClientFactory func(ctx context.Context, account models.Account) (DavClient, error)
