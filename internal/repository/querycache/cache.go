// Package querycache keeps recent search results in memory.
package querycache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
)

// Cache is an expiring in-memory result cache, safe for concurrent use.
type Cache struct {
	items *gocache.Cache
}

// New creates a Cache. Entries expire after ttl; expired entries are purged every cleanup.
func New(ttl, cleanup time.Duration) *Cache {
	return &Cache{items: gocache.New(ttl, cleanup)}
}

// Get returns the cached result for key.
func (c *Cache) Get(key string) (result.Result, bool) {
	v, ok := c.items.Get(key)
	if !ok {
		return result.Result{}, false
	}
	r, ok := v.(result.Result)
	return r, ok
}

// Set stores r under key with the default expiration.
func (c *Cache) Set(key string, r result.Result) {
	c.items.Set(key, r, gocache.DefaultExpiration)
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.items.Flush()
}

// Len returns the number of entries, including expired ones not yet purged.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
