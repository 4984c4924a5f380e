package cache

import (
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// NullCache caches nothing. Every resolution creates a new file object.
type NullCache struct{}

func NewNullCache() *NullCache {
	return &NullCache{}
}

func (*NullCache) GetFile(provider.FileSystem, *name.FileName) provider.FileObject {
	return nil
}

func (*NullCache) PutFile(provider.FileObject) {}

func (*NullCache) PutFileIfAbsent(provider.FileObject) bool {
	return true
}

func (*NullCache) RemoveFile(provider.FileSystem, *name.FileName) {}

func (*NullCache) Clear(provider.FileSystem) {}

func (*NullCache) Close() {}
