package badger

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/merklequery/merkled/module"
)

func withLimit(limit uint) func(*Cache) {
	return func(c *Cache) {
		c.limit = limit
	}
}

type retrieveFunc func(key interface{}) (interface{}, error)

func withRetrieve(retrieve retrieveFunc) func(*Cache) {
	return func(c *Cache) {
		c.retrieve = retrieve
	}
}

func noRetrieve(interface{}) (interface{}, error) {
	return nil, fmt.Errorf("no retrieve function for cache get available")
}

func withResource(resource string) func(*Cache) {
	return func(c *Cache) {
		c.resource = resource
	}
}

// Cache is a read-through cache in front of a badger-backed store. Entries
// are immutable once committed, so cached values never go stale.
type Cache struct {
	metrics  module.CacheMetrics
	limit    uint
	retrieve retrieveFunc
	resource string
	cache    *lru.Cache
}

func newCache(collector module.CacheMetrics, options ...func(*Cache)) *Cache {
	c := Cache{
		metrics:  collector,
		limit:    1000,
		retrieve: noRetrieve,
		resource: "undefined",
	}
	for _, option := range options {
		option(&c)
	}
	c.cache, _ = lru.New(int(c.limit))
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	return &c
}

// Get will try to retrieve the resource from cache first, falling back to the
// injected retrieve function on a miss.
func (c *Cache) Get(key interface{}) (interface{}, error) {

	resource, cached := c.cache.Get(key)
	if cached {
		c.metrics.CacheHit(c.resource)
		return resource, nil
	}
	c.metrics.CacheMiss(c.resource)

	resource, err := c.retrieve(key)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, resource)
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))

	return resource, nil
}

// Insert adds a resource to the cache after it has been committed.
func (c *Cache) Insert(key interface{}, resource interface{}) {
	c.cache.Add(key, resource)
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
}
