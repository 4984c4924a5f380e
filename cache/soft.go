package cache

import (
	"runtime"
	"sync"
	"weak"

	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

type softBucket struct {
	files map[string]weak.Pointer[provider.Ref]
}

// SoftCache holds file objects weakly. An entry disappears once no caller
// references its file object any more, so equal names keep resolving to
// the same instance only while someone holds it.
type SoftCache struct {
	mu      sync.Mutex
	buckets map[provider.FileSystem]*softBucket
}

func NewSoftCache() *SoftCache {
	return &SoftCache{
		buckets: make(map[provider.FileSystem]*softBucket),
	}
}

func (c *SoftCache) bucket(fs provider.FileSystem, create bool) *softBucket {
	b, ok := c.buckets[fs]
	if !ok && create {
		b = &softBucket{
			files: make(map[string]weak.Pointer[provider.Ref]),
		}
		c.buckets[fs] = b
	}
	return b
}

func (c *SoftCache) GetFile(fs provider.FileSystem, n *name.FileName) provider.FileObject {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.bucket(fs, false)
	if b == nil {
		return nil
	}

	ptr, ok := b.files[n.Key()]
	if !ok {
		return nil
	}

	ref := ptr.Value()
	if ref == nil {
		delete(b.files, n.Key())
		return nil
	}
	return ref.File()
}

func (c *SoftCache) PutFile(file provider.FileObject) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.put(file)
}

func (c *SoftCache) PutFileIfAbsent(file provider.FileObject) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b := c.bucket(file.FileSystem(), false); b != nil {
		if ptr, ok := b.files[file.Name().Key()]; ok && ptr.Value() != nil {
			return false
		}
	}

	c.put(file)
	return true
}

func (c *SoftCache) put(file provider.FileObject) {
	fs := file.FileSystem()
	key := file.Name().Key()
	ref := file.Ref()

	b := c.bucket(fs, true)
	ptr := weak.Make(ref)
	b.files[key] = ptr

	runtime.AddCleanup(ref, c.evict, softKey{fs: fs, key: key, ptr: ptr})
}

type softKey struct {
	fs  provider.FileSystem
	key string
	ptr weak.Pointer[provider.Ref]
}

// evict drops an entry whose file object has been collected, unless the
// slot was reused for a newer object in the meantime.
func (c *SoftCache) evict(k softKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.bucket(k.fs, false)
	if b == nil {
		return
	}
	if ptr, ok := b.files[k.key]; ok && ptr == k.ptr {
		delete(b.files, k.key)
	}
	if len(b.files) == 0 {
		delete(c.buckets, k.fs)
	}
}

func (c *SoftCache) RemoveFile(fs provider.FileSystem, n *name.FileName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b := c.bucket(fs, false); b != nil {
		delete(b.files, n.Key())
	}
}

func (c *SoftCache) Clear(fs provider.FileSystem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.buckets, fs)
}

func (c *SoftCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buckets = make(map[provider.FileSystem]*softBucket)
}

// Len returns the number of live entries for fs.
func (c *SoftCache) Len(fs provider.FileSystem) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.bucket(fs, false)
	if b == nil {
		return 0
	}

	count := 0
	for _, ptr := range b.files {
		if ptr.Value() != nil {
			count++
		}
	}
	return count
}

// Evict drops every entry of fs as if its file object had been
// collected. The next resolution of any of its names creates a new object.
func (c *SoftCache) Evict(fs provider.FileSystem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.buckets, fs)
}

// EvictAll drops every entry of every file system.
func (c *SoftCache) EvictAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.buckets)
}
