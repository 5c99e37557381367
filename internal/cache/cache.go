// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small thread-safe LRU cache with a soft limit.
//
// It holds derived resources that are expensive to build and looked up on
// every draw call, such as font faces per size and number printers per
// language.
package cache

import (
	"slices"
	"sync"
)

// Cache maps keys to lazily created values. When it grows beyond its soft
// limit, the least recently used quarter of the entries is evicted.
//
// Cache is safe for concurrent use and must not be copied.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*item[V]
	limit   int
	tick    uint64
}

type item[V any] struct {
	value V
	used  uint64
}

// New creates a cache holding about limit entries. A limit of 0 disables
// eviction.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]*item[V]), limit: limit}
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	it.used = c.tick
	return it.value, true
}

// GetOrCreate returns the value stored for key, calling create to build it
// on a miss. create runs under the cache lock, so it is called at most once
// per missing key.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if it, ok := c.entries[key]; ok {
		it.used = c.tick
		return it.value
	}
	v := create()
	c.entries[key] = &item[V]{value: v, used: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return v
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Limit returns the soft limit.
func (c *Cache[K, V]) Limit() int { return c.limit }

// evict shrinks the cache to three quarters of the limit, oldest first.
// c.mu must be held.
func (c *Cache[K, V]) evict() {
	keep := max(c.limit*3/4, 1)
	n := len(c.entries) - keep
	if n <= 0 {
		return
	}
	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, it := range c.entries {
		all = append(all, aged{k, it.used})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.used < b.used:
			return -1
		case a.used > b.used:
			return 1
		default:
			return 0
		}
	})
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}
