// Package store builds file systems on top of simple key/entry stores.
// Concrete providers supply a Store and a name parser; the store package
// turns them into cached file objects.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
)

// Entry is a stored node. Keys are absolute, normalised paths.
type Entry struct {
	ID         string        `json:"id"`
	Key        string        `json:"key"`
	Type       data.FileType `json:"type"`
	CreateTime time.Time     `json:"create_time"`
	ModifyTime time.Time     `json:"modify_time"`
}

// NewEntry returns a new entry for key with a fresh id.
func NewEntry(key string, typ data.FileType) *Entry {
	now := time.Now()
	return &Entry{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Key:        key,
		Type:       typ,
		CreateTime: now,
		ModifyTime: now,
	}
}

// Store persists the entries of one file system. The root "/" is
// implicit and never stored.
type Store interface {
	// Name returns the identifier name defined for this store.
	Name() string
	// Open is called once before the first use.
	Open(ctx context.Context) error
	// Close releases connections held by the store.
	Close(ctx context.Context) error

	// Stat returns the entry for key or data.ErrNotExist.
	Stat(ctx context.Context, key string) (*Entry, error)
	// Create stores entry or fails with data.ErrExist.
	Create(ctx context.Context, entry *Entry) error
	// Delete removes the entry for key.
	Delete(ctx context.Context, key string) error
	// List returns the base names of the direct children of key.
	List(ctx context.Context, key string) ([]string, error)
}

// ContentReader is implemented by stores that keep file content. It lets
// layered file systems read the file they are built on.
type ContentReader interface {
	ReadContent(ctx context.Context, key string) ([]byte, error)
}

// ReadOnly is implemented by stores that reject Create and Delete.
type ReadOnly interface {
	ReadOnly() bool
}

func isReadOnly(s Store) bool {
	ro, ok := s.(ReadOnly)
	return ok && ro.ReadOnly()
}

// ChildPrefix returns the prefix shared by all keys below key.
func ChildPrefix(key string) string {
	if key == name.RootPath {
		return key
	}
	return key + name.Separator
}

// ChildName returns the base name of the direct child of prefix that
// key lies in, or false when key is not below prefix.
func ChildName(prefix, key string) (string, bool) {
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return "", false
	}

	child, _, _ := strings.Cut(key[len(prefix):], name.Separator)
	return child, child != ""
}

// ParentKey returns the key of the folder containing key.
func ParentKey(key string) string {
	pos := strings.LastIndexByte(key, '/')
	if pos <= 0 {
		return name.RootPath
	}
	return key[:pos]
}
