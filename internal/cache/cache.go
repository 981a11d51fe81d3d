// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// cache provides a concurrent map of weakly-referenced values, keyed by canonical strings.
//
// The cache never keeps a value alive. Once a value becomes unreachable, its entry is purged by a
// cleanup attached to the value or by an explicit call to Purge, whichever runs first.
package cache

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"

	"golang.org/x/sync/singleflight"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	// Entries currently tracked, including entries whose values await purging.
	Entries int
	// Lookups answered by an existing value.
	Hits uint64
	// Successful factory invocations.
	Misses uint64
	// Entries purged after their values became unreachable.
	Evictions uint64
}

// Cache maps keys to weakly-referenced values. A Cache must not be copied after first use.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]weak.Pointer[V]
	group   singleflight.Group
	onEvict func(key string)

	hits, misses, evictions atomic.Uint64
}

type cleanupArg[V any] struct {
	key string
	wp  weak.Pointer[V]
}

// Create a cache. onEvict, if not nil, is called (without locks held) with the key of each purged entry.
func New[V any](onEvict func(key string)) *Cache[V] {
	return &Cache[V]{entries: make(map[string]weak.Pointer[V]), onEvict: onEvict}
}

// Get returns the live value for key, or nil.
func (c *Cache[V]) Get(key string) *V {
	c.mu.Lock()
	wp, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil
	}
	return wp.Value()
}

// GetOrCreate returns the live value for key, or stores and returns the result of factory.
//
// Concurrent calls for the same key share a single factory invocation and all observe the same value.
// The factory is called without locks held and may itself call GetOrCreate for other keys.
func (c *Cache[V]) GetOrCreate(key string, factory func() (*V, error)) (*V, error) {
	if v := c.Get(key); v != nil {
		c.hits.Add(1)
		return v, nil
	}
	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A previous flight for the same key may have stored a value since the first lookup:
		if v := c.Get(key); v != nil {
			c.hits.Add(1)
			return v, nil
		}
		v, err := factory()
		if err != nil {
			return nil, err
		}
		c.misses.Add(1)
		wp := weak.Make(v)
		c.mu.Lock()
		c.entries[key] = wp
		c.mu.Unlock()
		runtime.AddCleanup(v, c.cleanup, cleanupArg[V]{key, wp})
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*V), nil
}

func (c *Cache[V]) cleanup(arg cleanupArg[V]) {
	c.mu.Lock()
	// The entry may already be purged, or replaced by a newer value for the same key:
	wp, ok := c.entries[arg.key]
	evicted := ok && wp == arg.wp
	if evicted {
		delete(c.entries, arg.key)
		c.evictions.Add(1)
	}
	c.mu.Unlock()
	if evicted && c.onEvict != nil {
		c.onEvict(arg.key)
	}
}

// Purge removes entries whose values are no longer reachable and returns the number removed.
func (c *Cache[V]) Purge() int {
	var purged []string
	c.mu.Lock()
	for key, wp := range c.entries {
		if wp.Value() == nil {
			delete(c.entries, key)
			purged = append(purged, key)
		}
	}
	c.evictions.Add(uint64(len(purged)))
	c.mu.Unlock()
	if c.onEvict != nil {
		for _, key := range purged {
			c.onEvict(key)
		}
	}
	return len(purged)
}

// Len returns the number of tracked entries, including entries awaiting purging.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()
	return n
}

func (c *Cache[V]) Stats() Stats {
	return Stats{
		Entries:   c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
