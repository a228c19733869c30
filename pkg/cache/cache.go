// Package cache provides a generic in-memory TTL cache keyed by request
// signature. Entries are expired lazily: a read that finds a stale entry
// deletes it and reports a miss. There is no background sweep.
package cache

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultTTL is the freshness window applied when Set is called without an
// explicit TTL.
const DefaultTTL = 5 * time.Minute

var (
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total number of cache misses (including lazy expirations)",
		},
		[]string{"cache"},
	)
)

type entry[T any] struct {
	data      T
	timestamp time.Time
	expiresIn time.Duration
}

// Cache is a TTL cache for a single payload type. Each key space (product
// lists, single products, collections) gets its own instance so a caller can
// never retrieve a payload of the wrong shape.
type Cache[T any] struct {
	mu      sync.Mutex
	name    string
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option[T any] func(*Cache[T])

// WithTTL overrides the default freshness window.
func WithTTL[T any](ttl time.Duration) Option[T] {
	return func(c *Cache[T]) { c.ttl = ttl }
}

// WithClock overrides the time source. Used in tests to advance time without
// sleeping.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Cache[T]) { c.now = now }
}

// New creates a named cache. The name labels the hit/miss metrics.
func New[T any](name string, opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		name:    name,
		entries: make(map[string]entry[T]),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached payload for key if an entry exists and is still
// fresh. A stale entry is deleted on the spot and reported as a miss.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		cacheMissesTotal.WithLabelValues(c.name).Inc()
		var zero T
		return zero, false
	}

	if c.now().Sub(e.timestamp) > e.expiresIn {
		delete(c.entries, key)
		cacheMissesTotal.WithLabelValues(c.name).Inc()
		var zero T
		return zero, false
	}

	cacheHitsTotal.WithLabelValues(c.name).Inc()
	return e.data, true
}

// Set inserts or overwrites the entry for key with a fresh timestamp and the
// cache's configured TTL.
func (c *Cache[T]) Set(key string, data T) {
	c.SetWithTTL(key, data, c.ttl)
}

// SetWithTTL inserts or overwrites the entry for key with an explicit TTL.
func (c *Cache[T]) SetWithTTL(key string, data T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{
		data:      data,
		timestamp: c.now(),
		expiresIn: ttl,
	}
}

// Delete removes the entry for key, if present.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries currently stored, stale or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
