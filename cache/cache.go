// Package cache memoizes parse results. Parsing is a pure function of its
// input, so results can be shared between requests until they expire.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// entry is a cached item with expiration
type entry[V any] struct {
	value      V
	expiration time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	if e.expiration.IsZero() {
		return false // Never expires
	}
	return now.After(e.expiration)
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 1024,
		TTL:      5 * time.Minute,
	}
}

// Cache is a thread-safe in-memory cache with TTL support
type Cache[V any] struct {
	mu       sync.RWMutex
	items    map[string]*entry[V]
	maxItems int
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once

	hits   int64
	misses int64
}

// New creates a cache and starts its cleanup loop. Call Close to stop it.
func New[V any](cfg Config) *Cache[V] {
	def := DefaultConfig()
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = def.MaxItems
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	c := &Cache[V]{
		items:    make(map[string]*entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go c.cleanupLoop(time.Minute)
	return c
}

// Key derives a fixed-size cache key from its parts.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a value from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if ok && e.expired(c.now()) {
		delete(c.items, key)
		ok = false
	}
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok && len(c.items) >= c.maxItems {
		c.evictOldest()
	}
	c.items[key] = &entry[V]{value: value, expiration: c.now().Add(c.ttl)}
}

// GetOrSet returns the cached value for key, computing and storing it with
// fn on a miss. Errors are returned and not cached.
func (c *Cache[V]) GetOrSet(key string, fn func() (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}
	v, err := fn()
	if err != nil {
		return v, false, err
	}
	c.Set(key, v)
	return v, false, nil
}

// Delete removes a value from the cache
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Size returns the number of items in the cache
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hits, misses = c.hits, c.misses
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// Close stops the cleanup loop.
func (c *Cache[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

// evictOldest removes the entry closest to expiry (must be called with lock held)
func (c *Cache[V]) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, e := range c.items {
		if oldestKey == "" || e.expiration.Before(oldest) {
			oldestKey, oldest = key, e.expiration
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}

func (c *Cache[V]) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.items {
		if e.expired(now) {
			delete(c.items, key)
		}
	}
}
