package client

import (
	"strings"
	"sync"
)

// cache is a keyed response cache. Keys are "resource" or
// "resource/param" strings, so a mutation can invalidate a whole
// resource by prefix.
type cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newCache() *cache {
	return &cache{
		entries: make(map[string][]byte),
	}
}

func (c *cache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *cache) set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// invalidate removes the key itself and every key nested under it.
func (c *cache) invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == prefix || strings.HasPrefix(key, prefix+"/") {
			delete(c.entries, key)
		}
	}
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
}
