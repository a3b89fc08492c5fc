package filter

import (
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize bounds the number of distinct filter strings kept compiled.
const DefaultCacheSize = 128

// Cache memoizes Compile by raw string. Compiled sets are never modified
// after creation, so cached values are shared between callers.
type Cache struct {
	sets *lru.Cache
}

// NewCache returns a Cache holding up to size sets. size <= 0 uses DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes
	sets, _ := lru.New(size)
	return &Cache{sets: sets}
}

// Compile returns the compiled Set for raw, compiling it on a miss.
func (c *Cache) Compile(raw string) Set {
	if c == nil || c.sets == nil {
		return Compile(raw)
	}
	if v, ok := c.sets.Get(raw); ok {
		return v.(Set)
	}
	set := Compile(raw)
	c.sets.Add(raw, set)
	return set
}

// Len returns the number of cached sets.
func (c *Cache) Len() int {
	if c == nil || c.sets == nil {
		return 0
	}
	return c.sets.Len()
}
