// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dav-sync/internal/config"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/models"
)

func newTestClient(t *testing.T, serverURL string) *httpDavClient {
	t.Helper()

	c, err := NewHTTPDavClient(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second},
		models.Account{Name: "alice"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c.(*httpDavClient)
}

func TestNewHTTPDavClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDavClient(config.Adapter{HTTPAddress: "  "}, models.Account{Name: "alice"}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://dav.example.com/", want: "https://dav.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/authorities/events/collections", r.URL.Path)
		assert.Equal(t, "alice", r.Header.Get(AccountHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Collection{
			{URL: "/cal/home/", DisplayName: "Home"},
			{URL: "/cal/work/", DisplayName: "Work"},
		})
	}))
	defer srv.Close()

	collections, err := newTestClient(t, srv.URL).ListCollections(context.Background(), "events")
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "/cal/work/", collections[1].URL)
	assert.Equal(t, "Work", collections[1].DisplayName)
}

func TestListEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/entries", r.URL.Path)
		assert.Equal(t, "/cal/home/", r.URL.Query().Get("url"))

		listing := models.EntryListing{SyncToken: "tok-2"}
		if since := r.URL.Query().Get("since"); since == "" {
			listing.Full = true
			listing.Entries = []models.RemoteEntry{{Href: "/cal/home/1.ics", ETag: `"a"`}}
		} else {
			assert.Equal(t, "tok-1", since)
			listing.Entries = []models.RemoteEntry{{Href: "/cal/home/1.ics", Deleted: true}}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(listing)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	full, err := c.ListEntries(context.Background(), "/cal/home/", "")
	require.NoError(t, err)
	assert.True(t, full.Full)
	assert.Equal(t, "tok-2", full.SyncToken)
	require.Len(t, full.Entries, 1)

	delta, err := c.ListEntries(context.Background(), "/cal/home/", "tok-1")
	require.NoError(t, err)
	assert.False(t, delta.Full)
	require.Len(t, delta.Entries, 1)
	assert.True(t, delta.Entries[0].Deleted)
}

func TestGetEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cal/home/1.ics", r.URL.Path)
		w.Header().Set("ETag", `"a"`)
		_, _ = w.Write([]byte("BEGIN:VCALENDAR\nBEGIN:VEVENT\nEND:VEVENT\nEND:VCALENDAR"))
	}))
	defer srv.Close()

	data, etag, err := newTestClient(t, srv.URL).GetEntry(context.Background(), "/cal/home/1.ics")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, etag)
	assert.Contains(t, string(data), "VEVENT")
}

func TestHead(t *testing.T) {
	modified := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Content-Length", "42")
		w.Header().Set("Last-Modified", modified.Format(http.TimeFormat))
		w.Header().Set("Accept-Ranges", "bytes")
	}))
	defer srv.Close()

	head, err := newTestClient(t, srv.URL).Head(context.Background(), "/docs/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.HeadResponse{
		ETag:           `"v1"`,
		Size:           42,
		LastModified:   modified,
		SupportsRanges: true,
	}, head)
}

func TestHTTPErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "gone", status: http.StatusGone, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, _, err := newTestClient(t, srv.URL).GetEntry(context.Background(), "/x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPErrorMapping_Other(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).ListCollections(context.Background(), "tasks")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Contains(t, err.Error(), "http 503: maintenance")
	assert.True(t, IsTransient(err))
}

func TestHTTPErrorMapping_ClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).ListCollections(context.Background(), "tasks")
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
	assert.False(t, IsTransient(err))
}

func TestIsTransient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t, url).ListCollections(context.Background(), "tasks")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestIsTransient_CanceledRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).ListCollections(ctx, "tasks")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsTransient(err))
}

func TestIsTransient_UnsupportedScheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, _, err := newTestClient(t, srv.URL).GetEntry(context.Background(), "ftp://dav.example.com/cal/1.ics")
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}

// timeoutError is a net.Error reporting a timeout.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server unavailable", err: fmt.Errorf("%w: http 502: bad gateway", ErrServerUnavailable), want: true},
		{
			name: "dial error",
			err:  &url.Error{Op: "Get", URL: "http://dav", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
			want: true,
		},
		{name: "timeout", err: &url.Error{Op: "Get", URL: "http://dav", Err: timeoutError{}}, want: true},
		{
			name: "non-transport url error",
			err:  &url.Error{Op: "Get", URL: "ftp://dav", Err: errors.New("unsupported protocol scheme \"ftp\"")},
			want: false,
		},
		{name: "canceled", err: &url.Error{Op: "Get", URL: "http://dav", Err: context.Canceled}, want: false},
		{name: "deadline", err: fmt.Errorf("list: %w", context.DeadlineExceeded), want: false},
		{name: "not found", err: ErrNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.ListCollections(context.Background(), "events")
	assert.ErrorIs(t, err, ErrClientClosed)
	_, err = c.Head(context.Background(), "/x")
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestClientFactory(t *testing.T) {
	factory := NewClientFactory(config.Adapter{HTTPAddress: "localhost:1"}, logger.Nop())

	c, err := factory(context.Background(), models.Account{Name: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "bob", c.(*httpDavClient).account)
	assert.NoError(t, c.Close())
}
