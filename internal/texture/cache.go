// Package texture finds, decodes and caches the images drawn onto meshes.
package texture

import (
	"image"
	"log/slog"
	"sync"
)

// Resolver resolves a texture name to a decoded image, or nil.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil
// so a broken file is only tried once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
	log   *slog.Logger
}

// NewCache creates a cache backed by index. A nil logger discards.
func NewCache(index *Index, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
		log:   log,
	}
}

// Resolve loads and caches a texture by name. Returns nil if it is unknown
// or cannot be decoded.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	if texName == "" {
		return nil
	}
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	img, err := Load(path)
	if err != nil {
		c.log.Warn("texture unavailable", "name", texName, "err", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	c.items[path] = img
	return img
}

// Len returns the number of cached entries, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
