// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dav-sync/internal/config"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/models"
)

// AccountHeader carries the account name on every request.
const AccountHeader = "X-Account"

type httpDavClient struct {
	client  *resty.Client
	account string
	closed  atomic.Bool

	logger *logger.Logger
}

// NewHTTPDavClient constructs an HTTP implementation of [DavClient] bound to
// account. It normalises and validates the base URL from cfg.HTTPAddress and
// applies the configured request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDavClient(cfg config.Adapter, account models.Account, log *logger.Logger) (DavClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader(AccountHeader, account.Name)

	return &httpDavClient{
		client:  client,
		account: account.Name,
		logger:  log.WithFields("account", account.Name),
	}, nil
}

// NewClientFactory returns a [ClientFactory] building HTTP clients from cfg.
func NewClientFactory(cfg config.Adapter, log *logger.Logger) ClientFactory {
	return func(_ context.Context, account models.Account) (DavClient, error) {
		return NewHTTPDavClient(cfg, account, log)
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListCollections implements [DavClient] with
// GET /api/authorities/{authority}/collections.
func (h *httpDavClient) ListCollections(ctx context.Context, authority string) ([]models.Collection, error) {
	if h.closed.Load() {
		return nil, ErrClientClosed
	}

	var collections []models.Collection
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("authority", authority).
		SetResult(&collections).
		Get("/api/authorities/{authority}/collections")
	if err != nil {
		return nil, fmt.Errorf("list collections request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return collections, nil
}

// ListEntries implements [DavClient] with
// GET /api/collections/entries?url={collectionURL}&since={since}.
func (h *httpDavClient) ListEntries(ctx context.Context, collectionURL, since string) (models.EntryListing, error) {
	if h.closed.Load() {
		return models.EntryListing{}, ErrClientClosed
	}

	var listing models.EntryListing
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("url", collectionURL).
		SetResult(&listing)
	if since != "" {
		req.SetQueryParam("since", since)
	}

	resp, err := req.Get("/api/collections/entries")
	if err != nil {
		return models.EntryListing{}, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntryListing{}, err
	}

	return listing, nil
}

// GetEntry implements [DavClient]. The payload is returned as received and
// the ETag is taken from the response header.
func (h *httpDavClient) GetEntry(ctx context.Context, href string) ([]byte, string, error) {
	if h.closed.Load() {
		return nil, "", ErrClientClosed
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(href)
	if err != nil {
		return nil, "", fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return resp.Body(), resp.Header().Get("ETag"), nil
}

// Head implements [DavClient] with a HEAD request on href.
func (h *httpDavClient) Head(ctx context.Context, href string) (models.HeadResponse, error) {
	if h.closed.Load() {
		return models.HeadResponse{}, ErrClientClosed
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Head(href)
	if err != nil {
		return models.HeadResponse{}, fmt.Errorf("head request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HeadResponse{}, err
	}

	return parseHeadResponse(resp.Header()), nil
}

func parseHeadResponse(header http.Header) models.HeadResponse {
	head := models.HeadResponse{
		ETag:           header.Get("ETag"),
		SupportsRanges: strings.EqualFold(header.Get("Accept-Ranges"), "bytes"),
	}

	if size, err := strconv.ParseInt(header.Get("Content-Length"), 10, 64); err == nil {
		head.Size = size
	}
	if modified, err := http.ParseTime(header.Get("Last-Modified")); err == nil {
		head.LastModified = modified
	}

	return head
}

// Close implements [DavClient]. It is safe to call more than once.
func (h *httpDavClient) Close() error {
	if h.closed.Swap(true) {
		return nil
	}

	h.client.GetClient().CloseIdleConnections()
	h.logger.Debug().Str("func", "httpDavClient.Close").Msg("dav client closed")
	return nil
}
