// Package scenariocache keeps the values that one scenario's steps share.
package scenariocache

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// Keys written by the cache-writing steps. Each equals the step's name.
const (
	NamespaceKey = "namespace"
	ResourcesKey = "resources"
)

// Cache is a get-or-create store scoped to one scenario.
type Cache struct {
	name  string
	mu    sync.Mutex
	items *gocache.Cache
}

func newCache(name string) *Cache {
	return &Cache{
		name:  name,
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// New returns a cache that is not tracked by any Manager.
func New(name string) *Cache {
	return newCache(name)
}

func (c *Cache) Name() string {
	return c.name
}

// Put replaces any value stored under key.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.Set(key, value, gocache.NoExpiration)
}

// Get returns the value under key. On a miss it stores and returns the value
// produced by factory; factory is not called while the entry is live.
func (c *Cache) Get(key string, factory func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value, ok := c.items.Get(key); ok {
		return value
	}
	value := factory()
	c.items.Set(key, value, gocache.NoExpiration)
	return value
}

// Lookup returns the value under key without creating one.
func (c *Cache) Lookup(key string) (any, bool) {
	return c.items.Get(key)
}

// Len is the number of live entries.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

func (c *Cache) clear() {
	c.items.Flush()
}
