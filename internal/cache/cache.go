// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides a bounded in-memory cache whose keys carry the
// version tag (for example an ETag) of the resource the value was derived
// from. A value is therefore never served once the resource changed: the
// changed tag produces a different key, which is a miss by construction.
package cache

import (
	"k8s.io/utils/lru"
)

// DefaultCapacity is the capacity used when a non-positive capacity is
// requested.
const DefaultCapacity = 50

// Key identifies a cached value by the location of the resource and the
// version tag the value was cached under. Both fields take part in equality.
type Key struct {
	Location   string
	VersionTag string
}

// VersionedCache is a fixed-capacity, least-recently-used cache keyed by
// [Key]. It is safe for concurrent use.
//
// A hit only proves that the value was cached under the same version tag the
// caller currently holds; callers remain responsible for knowing that tag is
// still current at the source.
type VersionedCache[V any] struct {
	entries  *lru.Cache
	capacity int
}

// New returns a cache holding at most capacity entries. A capacity of zero
// or less selects [DefaultCapacity].
func New[V any](capacity int) *VersionedCache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &VersionedCache[V]{
		entries:  lru.New(capacity),
		capacity: capacity,
	}
}

// Get returns the value cached for (location, versionTag). Values without a
// version tag are never cached, so an empty versionTag is always a miss.
func (c *VersionedCache[V]) Get(location, versionTag string) (V, bool) {
	var zero V
	if versionTag == "" {
		return zero, false
	}

	v, ok := c.entries.Get(Key{Location: location, VersionTag: versionTag})
	if !ok {
		return zero, false
	}
	value, ok := v.(V)
	if !ok {
		return zero, false
	}
	return value, true
}

// Put stores value under (location, versionTag), evicting the least recently
// used entry when the cache is full. Put is a no-op for an empty versionTag.
func (c *VersionedCache[V]) Put(location, versionTag string, value V) {
	if versionTag == "" {
		return
	}
	c.entries.Add(Key{Location: location, VersionTag: versionTag}, value)
}

// Len returns the number of cached entries.
func (c *VersionedCache[V]) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of entries.
func (c *VersionedCache[V]) Capacity() int {
	return c.capacity
}
