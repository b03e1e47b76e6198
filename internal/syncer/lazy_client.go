// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-dav-sync/internal/adapter"
)

// LazyClient defers construction of a [adapter.DavClient] until a strategy
// first asks for it. The factory is called at most once; its result, error
// included, is memoized.
type LazyClient struct {
	factory func() (adapter.DavClient, error)

	once        sync.Once
	client      adapter.DavClient
	err         error
	initialized atomic.Bool
}

// NewLazyClient wraps factory without calling it.
func NewLazyClient(factory func() (adapter.DavClient, error)) *LazyClient {
	return &LazyClient{factory: factory}
}

// Get forces construction on first use and returns the client.
func (l *LazyClient) Get() (adapter.DavClient, error) {
	l.once.Do(func() {
		l.client, l.err = l.factory()
		if l.err == nil && l.client != nil {
			l.initialized.Store(true)
		}
	})
	return l.client, l.err
}

// IsInitialized reports whether a client was constructed. It never forces
// construction.
func (l *LazyClient) IsInitialized() bool {
	return l.initialized.Load()
}

// close releases the client if it was constructed.
func (l *LazyClient) close() error {
	if !l.IsInitialized() {
		return nil
	}
	return l.client.Close()
}
