// This file implements the identity cache: the mapping from primary-key
// value to the canonical in-memory instance for that key.
package sqlite

import (
	"sync"

	"github.com/mesh-intelligence/deptmap/pkg/types"
)

// identityCache guarantees a one-to-one correspondence between a
// persisted key and the *Department representing it, for the lifetime of
// the mapper. No expiry and no capacity bound: unbounded growth is an
// accepted tradeoff at this scope.
//
// The mutex covers individual operations only. Hydration performs a
// lookup followed by a conditional insert; two goroutines hydrating the
// same new key at once can both construct, with the last insert winning.
// Callers that hydrate concurrently must supply their own serialization.
type identityCache struct {
	mu      sync.Mutex
	entries map[int64]*types.Department
}

// newIdentityCache returns an empty cache.
func newIdentityCache() *identityCache {
	return &identityCache{
		entries: make(map[int64]*types.Department),
	}
}

// Lookup returns the instance cached under key, if any. Pure read.
func (c *identityCache) Lookup(key int64) (*types.Department, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[key]
	return d, ok
}

// Insert associates an instance with its key, overwriting any prior
// association for that key.
func (c *identityCache) Insert(key int64, d *types.Department) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = d
}

// Evict removes the entry for key, if present.
func (c *identityCache) Evict(key int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *identityCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int64]*types.Department)
}

// Len returns the number of cached instances.
func (c *identityCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
