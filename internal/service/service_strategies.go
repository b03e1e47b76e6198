// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-dav-sync/internal/metrics"
	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/models"
)

// Strategies maps raw authorities to the strategy that synchronizes them.
type Strategies struct {
	byAuthority map[string]syncer.Strategy
}

// NewStrategies registers the bundled strategies. Both the virtual WebDAV
// authority and the documents authority resolve to the WebDAV strategy.
func NewStrategies(heads *HeadCache, m *metrics.Metrics) *Strategies {
	webdav := NewWebDAVStrategy(heads, m)

	s := &Strategies{byAuthority: make(map[string]syncer.Strategy)}
	s.Register(models.AuthorityEvents, NewEventsStrategy())
	s.Register(models.AuthorityContacts, NewContactsStrategy())
	s.Register(models.AuthorityTasks, NewTasksStrategy())
	s.Register(models.AuthorityVirtualWebDAV, webdav)
	s.Register(models.AuthorityWebDAVDocuments, webdav)
	return s
}

// ForAuthority returns the strategy of a raw authority.
func (s *Strategies) ForAuthority(authority string) (syncer.Strategy, error) {
	strategy, ok := s.byAuthority[authority]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthority, authority)
	}
	return strategy, nil
}

// Register adds or replaces the strategy of an authority.
func (s *Strategies) Register(authority string, strategy syncer.Strategy) {
	s.byAuthority[authority] = strategy
}
