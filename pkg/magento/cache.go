package magento

import (
	"context"
	"sync"
)

// ComputedCache memoizes expensive computed values keyed by name. Entries
// are filled on first access and survive until invalidated. Invalidation is
// atomic with respect to in-flight computations: a computation started
// before InvalidateAll finishes without error, but its result is discarded
// rather than stored, so no stale value outlives the invalidation.
type ComputedCache struct {
	mu         sync.Mutex
	entries    map[string]interface{}
	generation uint64
}

// NewComputedCache returns an empty cache.
func NewComputedCache() *ComputedCache {
	return &ComputedCache{entries: make(map[string]interface{})}
}

// GetOrCompute returns the cached value for key, computing and storing it
// on a miss. The compute function runs outside the cache lock so nested
// lookups from within a computation do not deadlock. Concurrent misses on
// the same key may compute more than once; one result wins.
func (c *ComputedCache) GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	gen := c.generation
	c.mu.Unlock()

	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		// Invalidated while computing; hand the value back without
		// caching it.
		return v, nil
	}
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = v
	return v, nil
}

// Invalidate removes a single cached entry.
func (c *ComputedCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll discards every cached entry and fences out in-flight
// computations started before the call.
func (c *ComputedCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]interface{})
	c.generation++
}

// Len reports the number of cached entries.
func (c *ComputedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
