// Package cache provides FilesCache implementations keyed by file system
// and file name.
package cache

import (
	"fmt"
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/provider"
)

// Kind names a cache implementation for configuration.
type Kind string

const (
	KindSoft    Kind = "soft"
	KindDefault Kind = "default"
	KindNull    Kind = "null"
	KindLRU     Kind = "lru"
)

// New creates the cache named by kind. size only applies to KindLRU.
func New(kind Kind, size int, logger *log.Logger) (provider.FilesCache, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindSoft, "":
		return NewSoftCache(), nil
	case KindDefault:
		return NewDefaultCache(), nil
	case KindNull:
		return NewNullCache(), nil
	case KindLRU:
		return NewLRUCache(size, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown files cache '%s'", data.ErrInvalidArgument, kind)
	}
}
