// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New[string](0).Capacity())
	assert.Equal(t, DefaultCapacity, New[string](-3).Capacity())
	assert.Equal(t, 7, New[string](7).Capacity())
}

func TestVersionedCache_PutGet(t *testing.T) {
	c := New[string](10)

	c.Put("/docs/a.txt", `"v1"`, "head-a")

	got, ok := c.Get("/docs/a.txt", `"v1"`)
	require.True(t, ok)
	assert.Equal(t, "head-a", got)
}

func TestVersionedCache_MissForUnknownKey(t *testing.T) {
	c := New[string](10)

	got, ok := c.Get("/docs/never-put", `"v1"`)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestVersionedCache_VersionSensitivity(t *testing.T) {
	c := New[int](10)

	c.Put("/docs/a.txt", "v1", 42)

	_, ok := c.Get("/docs/a.txt", "v2")
	assert.False(t, ok, "a different version tag must be a miss even though the location matches")

	got, ok := c.Get("/docs/a.txt", "v1")
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestVersionedCache_EmptyVersionTagIsNeverCached(t *testing.T) {
	c := New[int](10)

	c.Put("/docs/a.txt", "", 1)

	_, ok := c.Get("/docs/a.txt", "")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestVersionedCache_EmptyVersionTagEvictsNothing(t *testing.T) {
	c := New[int](2)
	c.Put("/docs/a.txt", "v1", 1)
	c.Put("/docs/b.txt", "v1", 2)

	c.Put("/docs/c.txt", "", 3)

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get("/docs/a.txt", "v1")
	assert.True(t, ok)
	assert.Equal(t, 1, got)
	_, ok = c.Get("/docs/b.txt", "v1")
	assert.True(t, ok)
}

func TestVersionedCache_CapacityBound(t *testing.T) {
	const capacity = 50
	c := New[int](capacity)

	for i := 0; i < capacity*3; i++ {
		loc := fmt.Sprintf("/docs/%d", i)
		c.Put(loc, "etag", i)

		assert.LessOrEqual(t, c.Len(), capacity)

		got, ok := c.Get(loc, "etag")
		require.True(t, ok, "most recently inserted key %s must be present", loc)
		assert.Equal(t, i, got)
	}

	assert.Equal(t, capacity, c.Len())
}

func TestVersionedCache_RecentlyUsedSurvivesPressure(t *testing.T) {
	c := New[string](3)

	c.Put("a", "1", "A")
	c.Put("b", "1", "B")
	c.Put("c", "1", "C")

	// touch "a" so that "b" becomes least recently used
	_, ok := c.Get("a", "1")
	require.True(t, ok)

	c.Put("d", "1", "D")

	_, ok = c.Get("a", "1")
	assert.True(t, ok)
	_, ok = c.Get("b", "1")
	assert.False(t, ok, "least recently used entry must be evicted")
	assert.Equal(t, 3, c.Len())
}

func TestVersionedCache_OverwriteSameKey(t *testing.T) {
	c := New[string](2)

	c.Put("a", "1", "first")
	c.Put("a", "1", "second")

	got, ok := c.Get("a", "1")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, c.Len())
}

func TestVersionedCache_ConcurrentAccess(t *testing.T) {
	const capacity = 16
	c := New[int](capacity)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				loc := fmt.Sprintf("/g%d/%d", g, i%40)
				c.Put(loc, "v", i)
				c.Get(loc, "v")
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), capacity)
}
