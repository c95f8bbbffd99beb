// Package feedcache caches the rendered home feed for a fixed window.
//
// The cache trades a bounded staleness window for skipping a full post
// scan on the hottest page: writes never invalidate it, only expiry or an
// explicit Flush do. Two concurrent populations are harmless since both
// render the same artifact.
package feedcache

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

// Key identifies one cached rendered page.
type Key string

// HomeFeed is the only key in use: just the default (page 1) home view
// is cached, pages requested explicitly are always rendered fresh.
const HomeFeed Key = "index_page"

// FetchFunc renders the page when the cache has no live entry.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Cache is the rendered-page cache the feed handler depends on.
type Cache interface {
	GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) ([]byte, error)
	Flush()
}

// SturdycCache implements Cache with an in-memory sturdyc client.
type SturdycCache struct {
	client *sturdyc.Client[[]byte]
	keys   []Key
}

const (
	cacheCapacity   = 64
	cacheShards     = 2
	cacheEvictBatch = 10
)

// New builds a cache whose entries live for ttl.
func New(ttl time.Duration) *SturdycCache {
	return &SturdycCache{
		client: sturdyc.New[[]byte](cacheCapacity, cacheShards, ttl, cacheEvictBatch),
		keys:   []Key{HomeFeed},
	}
}

func (c *SturdycCache) GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) ([]byte, error) {
	return c.client.GetOrFetch(ctx, string(key), sturdyc.FetchFn[[]byte](fetch))
}

// Flush drops every cached page immediately. Meant for administrative
// use and test teardown, it is the only invalidation besides expiry.
func (c *SturdycCache) Flush() {
	for _, key := range c.keys {
		c.client.Delete(string(key))
	}
}
