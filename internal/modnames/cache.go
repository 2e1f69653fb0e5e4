// Package modnames resolves display names for synthetic topic buckets from
// a course-module lookup source, with explicit time-based caching. The cache
// takes an injected clock rather than reading the wall clock itself, so
// expiry is testable and report generation stays deterministic for a fixed
// clock.
package modnames

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long a resolved name stays fresh.
const DefaultTTL = 15 * time.Minute

// LookupFunc resolves the module name for a topic bucket. An empty return
// means the source has no name for that bucket.
type LookupFunc func(bucket int) (string, error)

type entry struct {
	name      string
	fetchedAt time.Time
}

// Cache is a TTL cache over a LookupFunc. The zero value is not usable;
// construct with New.
type Cache struct {
	mu     sync.Mutex
	lookup LookupFunc
	now    func() time.Time
	ttl    time.Duration
	byID   map[int]entry
}

// New creates a cache around lookup. now supplies the current time
// (time.Now in production, a fixed func in tests). A non-positive ttl falls
// back to DefaultTTL.
func New(lookup LookupFunc, now func() time.Time, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		lookup: lookup,
		now:    now,
		ttl:    ttl,
		byID:   make(map[int]entry),
	}
}

// Name returns the module name for bucket, consulting the lookup source at
// most once per TTL window. Lookup errors are returned to the caller; a
// cached value is served even when stale lookup would fail, as long as it
// is still fresh.
func (c *Cache) Name(bucket int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.byID[bucket]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.name, nil
	}

	name, err := c.lookup(bucket)
	if err != nil {
		return "", fmt.Errorf("lookup module name for bucket %d: %w", bucket, err)
	}
	c.byID[bucket] = entry{name: name, fetchedAt: c.now()}
	return name, nil
}

// TopicNamer adapts the cache to the engine's TopicNamer signature. Lookup
// failures degrade to the engine's default title (empty return) with no
// error surfaced; report generation never fails on a naming hiccup.
func (c *Cache) TopicNamer() func(bucket, lo, hi int) string {
	return func(bucket, lo, hi int) string {
		name, err := c.Name(bucket)
		if err != nil {
			return ""
		}
		return name
	}
}
