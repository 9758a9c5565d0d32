// Package cache provides the in-process response cache consulted before
// every model call.
//
// Keys are normalized queries (lowercased, whitespace-trimmed) so that
// retyped questions differing only in case or padding hit the same entry.
// Entries expire lazily: an entry older than the TTL is skipped on read
// but stays in the map until the same key is written again. Each
// conversation owns one cache instance, discarded with the conversation,
// so no background eviction runs.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a cached response stays servable.
const DefaultTTL = time.Hour

type entry struct {
	text      string
	createdAt time.Time
}

// ResponseCache is a mutex-guarded map of normalized query to generated
// response. The zero value is not usable; construct with New.
type ResponseCache struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]entry

	// now is swappable in tests.
	now func() time.Time
}

// New returns a ResponseCache with the given TTL. A nonpositive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{
		ttl: ttl,
		m:   make(map[string]entry),
		now: time.Now,
	}
}

// Key returns the normalized cache key for a query.
func Key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached response for query and whether a live entry
// exists. An entry whose age is at least the TTL counts as a miss.
func (c *ResponseCache) Get(query string) (string, bool) {
	k := Key(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.m[k]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.createdAt) >= c.ttl {
		return "", false
	}
	return e.text, true
}

// Put stores text under the normalized key, overwriting any previous
// entry and resetting its timestamp.
func (c *ResponseCache) Put(query, text string) {
	k := Key(query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[k] = entry{text: text, createdAt: c.now()}
}

// Len reports the number of entries held, including expired ones.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
