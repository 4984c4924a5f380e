package cache

import (
	"sync"

	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// DefaultCache holds file objects strongly until they are removed or
// their file system is cleared. It suits the manual cache strategy.
type DefaultCache struct {
	mu      sync.RWMutex
	buckets map[provider.FileSystem]map[string]provider.FileObject
}

func NewDefaultCache() *DefaultCache {
	return &DefaultCache{
		buckets: make(map[provider.FileSystem]map[string]provider.FileObject),
	}
}

func (c *DefaultCache) GetFile(fs provider.FileSystem, n *name.FileName) provider.FileObject {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.buckets[fs][n.Key()]
}

func (c *DefaultCache) PutFile(file provider.FileObject) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bucket(file.FileSystem())[file.Name().Key()] = file
}

func (c *DefaultCache) PutFileIfAbsent(file provider.FileObject) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	files := c.bucket(file.FileSystem())
	if _, exists := files[file.Name().Key()]; exists {
		return false
	}

	files[file.Name().Key()] = file
	return true
}

func (c *DefaultCache) bucket(fs provider.FileSystem) map[string]provider.FileObject {
	files, ok := c.buckets[fs]
	if !ok {
		files = make(map[string]provider.FileObject)
		c.buckets[fs] = files
	}
	return files
}

func (c *DefaultCache) RemoveFile(fs provider.FileSystem, n *name.FileName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.buckets[fs], n.Key())
}

func (c *DefaultCache) Clear(fs provider.FileSystem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.buckets, fs)
}

func (c *DefaultCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buckets = make(map[provider.FileSystem]map[string]provider.FileObject)
}

// Len returns the number of entries for fs.
func (c *DefaultCache) Len(fs provider.FileSystem) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.buckets[fs])
}
