// Package cache provides the shape result cache: an LRU memoization of
// shaped cell sequences keyed by a run's 64-bit content hash.
//
// The cache exists because terminal rendering reshapes every visible row
// every frame; a static row hashes to the same key each time and its
// shaped output can be replayed instead of recomputed. Correctness rests
// entirely on the key: the content hash must fold in every input that
// affects shaping output (codepoints, cluster columns, font index), which
// TextRun.ContentHash does. Collision risk is the standard 64-bit hash
// quality; it is not cryptographically guarded.
package cache

// DefaultCapacity is the entry capacity used when none is given. Chosen
// to comfortably cover a full screen of distinct rows across a few frames
// while keeping worst-case memory bounded.
const DefaultCapacity = 1024

// Cache is a fixed-capacity LRU cache mapping a content hash to an owned
// copy of a shaped value sequence.
//
// Put deep-copies the given slice, so cached results stay valid after the
// engine reuses its transient output buffer. Get returns the cache-owned
// slice; callers must treat it as read-only.
//
// Cache is not safe for concurrent use. The shaping core is
// single-threaded per engine and takes no locks; wrap the cache if it must
// be shared across rendering threads.
type Cache[V any] struct {
	entries  map[uint64]*entry[V]
	lru      *lruList
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

// entry holds a cached sequence with its LRU node.
type entry[V any] struct {
	values []V
	node   *lruNode
}

// New creates a cache with the given entry capacity.
// If capacity <= 0, DefaultCapacity is used.
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[V]{
		entries:  make(map[uint64]*entry[V], capacity),
		lru:      newLRUList(),
		capacity: capacity,
	}
}

// Get retrieves the cached sequence for a key.
// Returns (values, true) on a hit, (nil, false) otherwise. A hit moves the
// entry to the front of the LRU order; a miss has no side effects beyond
// the statistics counter.
func (c *Cache[V]) Get(key uint64) ([]V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.lru.MoveToFront(e.node)
	c.hits++
	return e.values, true
}

// Put stores a deep copy of values under key. If the key is already
// present its copy is replaced. When the cache is at capacity, the least
// recently used entry is evicted and its storage released before
// inserting.
func (c *Cache[V]) Put(key uint64, values []V) {
	if e, ok := c.entries[key]; ok {
		e.values = append(e.values[:0], values...)
		c.lru.MoveToFront(e.node)
		return
	}

	for c.lru.Len() >= c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions++
	}

	node := c.lru.PushFront(key)
	c.entries[key] = &entry[V]{
		values: append([]V(nil), values...),
		node:   node,
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[V]) Delete(key uint64) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *Cache[V]) Clear() {
	c.entries = make(map[uint64]*entry[V], c.capacity)
	c.lru.Clear()
}

// Len returns the number of entries in the cache.
func (c *Cache[V]) Len() int {
	return len(c.entries)
}

// Capacity returns the entry capacity fixed at construction.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the fixed entry capacity.
	Capacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate (0.0 to 1.0).
	HitRate float64
	// Evictions is the number of entries evicted.
	Evictions uint64
}

// Stats returns current cache statistics.
func (c *Cache[V]) Stats() Stats {
	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}
