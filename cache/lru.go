package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// DefaultLRUSize is the per file system capacity used when none is given.
const DefaultLRUSize = 100

// LRUCache keeps at most size file objects per file system and evicts the
// least recently used one on overflow. Objects evicted for capacity are
// closed unless the same object was put back under its name. Removing or
// clearing entries only forgets them.
type LRUCache struct {
	size int
	log  *log.Logger

	mu      sync.Mutex
	buckets map[provider.FileSystem]*lru.Cache

	// putMu makes the capacity check and the insert of a put atomic.
	putMu sync.Mutex
}

func NewLRUCache(size int, logger *log.Logger) *LRUCache {
	if size <= 0 {
		size = DefaultLRUSize
	}
	if logger == nil {
		logger = log.Discard()
	}

	return &LRUCache{
		size:    size,
		log:     logger,
		buckets: make(map[provider.FileSystem]*lru.Cache),
	}
}

func (c *LRUCache) bucket(fs provider.FileSystem, create bool) *lru.Cache {
	c.mu.Lock()
	defer c.mu.Unlock()

	files, ok := c.buckets[fs]
	if !ok && create {
		// Only fails for a non-positive size.
		files, _ = lru.New(c.size)
		c.buckets[fs] = files
	}
	return files
}

func (c *LRUCache) GetFile(fs provider.FileSystem, n *name.FileName) provider.FileObject {
	files := c.bucket(fs, false)
	if files == nil {
		return nil
	}

	v, ok := files.Get(n.Key())
	if !ok {
		return nil
	}
	return v.(provider.FileObject)
}

func (c *LRUCache) PutFile(file provider.FileObject) {
	c.put(file, false)
}

func (c *LRUCache) PutFileIfAbsent(file provider.FileObject) bool {
	return c.put(file, true)
}

func (c *LRUCache) put(file provider.FileObject, ifAbsent bool) bool {
	files := c.bucket(file.FileSystem(), true)
	key := file.Name().Key()

	c.putMu.Lock()
	if files.Contains(key) {
		if ifAbsent {
			c.putMu.Unlock()
			return false
		}
		files.Add(key, file)
		c.putMu.Unlock()
		return true
	}

	var victimKey, victim any
	if files.Len() >= c.size {
		victimKey, victim, _ = files.RemoveOldest()
	}
	files.Add(key, file)
	c.putMu.Unlock()

	if evicted, ok := victim.(provider.FileObject); ok && evicted != file {
		if err := evicted.Close(); err != nil {
			c.log.Warn("failed to close evicted '%v': %v", victimKey, err)
		}
		c.log.Debug("evicted '%v' from lru cache", victimKey)
	}
	return true
}

func (c *LRUCache) RemoveFile(fs provider.FileSystem, n *name.FileName) {
	if files := c.bucket(fs, false); files != nil {
		files.Remove(n.Key())
	}
}

func (c *LRUCache) Clear(fs provider.FileSystem) {
	c.mu.Lock()
	files := c.buckets[fs]
	delete(c.buckets, fs)
	c.mu.Unlock()

	if files != nil {
		files.Purge()
	}
}

func (c *LRUCache) Close() {
	c.mu.Lock()
	buckets := c.buckets
	c.buckets = make(map[provider.FileSystem]*lru.Cache)
	c.mu.Unlock()

	for _, files := range buckets {
		files.Purge()
	}
}

// Len returns the number of entries for fs.
func (c *LRUCache) Len(fs provider.FileSystem) int {
	files := c.bucket(fs, false)
	if files == nil {
		return 0
	}
	return files.Len()
}
