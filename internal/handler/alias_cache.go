package handler

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
)

// cachedAliasEntry remembers the outcome of one alias search.
// Item is nil for a cached miss.
type cachedAliasEntry struct {
	Generation uint64
	Item       *domain.Item
	CachedAt   time.Time
}

// AliasCache is an LRU over alias search results with time-based expiration.
// Entries recorded against an older registry generation are dropped on read.
type AliasCache struct {
	lru *expirable.LRU[string, *cachedAliasEntry]
}

// NewAliasCache creates a cache holding at most size aliases for ttl
func NewAliasCache(size int, ttl time.Duration) *AliasCache {
	return &AliasCache{
		lru: expirable.NewLRU[string, *cachedAliasEntry](size, nil, ttl),
	}
}

// Get returns a cached result for alias. found reports whether the cache had
// a current answer; it is nil when that answer was a miss.
func (c *AliasCache) Get(alias string, generation uint64) (it *domain.Item, found bool) {
	entry, ok := c.lru.Get(alias)
	if !ok {
		return nil, false
	}
	if entry.Generation != generation {
		c.lru.Remove(alias)
		return nil, false
	}
	return entry.Item, true
}

// Set records the search result for alias at generation
func (c *AliasCache) Set(alias string, generation uint64, it *domain.Item) {
	c.lru.Add(alias, &cachedAliasEntry{
		Generation: generation,
		Item:       it,
		CachedAt:   time.Now(),
	})
}

// Search answers from the cache when it can and falls back to svc
func (c *AliasCache) Search(svc ItemService, alias string) (*domain.Item, bool) {
	gen := svc.Generation()
	if it, ok := c.Get(alias, gen); ok {
		return it, it != nil
	}

	it, ok := svc.SearchByAlias(alias)
	if !ok {
		it = nil
	}
	c.Set(alias, gen, it)
	return it, ok
}

// Len returns the number of cached aliases, expired ones included
func (c *AliasCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the cache
func (c *AliasCache) Clear() {
	c.lru.Purge()
}
