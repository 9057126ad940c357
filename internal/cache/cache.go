package cache

import (
	"slices"
	"sync"
)

// Cache is a generic thread-safe cache with a soft size limit and
// generation-based invalidation. When the cache exceeds softLimit, the
// least recently used quarter of the entries is evicted.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	entries    map[K]*cacheEntry[V]
	softLimit  int
	tick       int64 // Monotonic access counter
	generation uint64
	hits       uint64
	misses     uint64
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Renew switches the cache to generation gen. If gen differs from the
// current generation every entry is dropped. Returns true if entries were
// invalidated.
func (c *Cache[K, V]) Renew(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.generation {
		return false
	}
	c.generation = gen
	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
	return true
}

// Generation returns the current generation.
func (c *Cache[K, V]) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// Set stores a value in the current generation.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the cached value or computes and stores it.
// create runs under the lock and must not call back into the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		entry.atime = c.tick
		return entry.value
	}

	c.misses++
	value := create()
	c.store(key, value)
	return value
}

// Clear removes all entries but keeps the generation.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:        len(c.entries),
		Capacity:   c.softLimit,
		Generation: c.generation,
		Hits:       c.hits,
		Misses:     c.misses,
	}
}

// store inserts under lock and evicts if over the soft limit.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entries until the cache is
// at three quarters of its soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	targetSize := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, e := range all[:toEvict] {
		delete(c.entries, e.key)
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len        int
	Capacity   int
	Generation uint64
	Hits       uint64
	Misses     uint64
}
