package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/providers/store"
	"github.com/tidwall/btree"
)

// Store keeps entries ordered by key so that children of a folder are a
// contiguous range.
type Store struct {
	mu sync.RWMutex

	entries  *btree.Map[string, *store.Entry]
	contents map[string][]byte
}

func NewStore() *Store {
	return &Store{
		entries:  btree.NewMap[string, *store.Entry](0),
		contents: make(map[string][]byte),
	}
}

// Returns the identifier name defined for this store.
func (*Store) Name() string {
	return "memory"
}

func (s *Store) Open(_ context.Context) error {
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Clear()
	clear(s.contents)

	return nil
}

func (s *Store) Stat(_ context.Context, key string) (*store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries.Get(key)
	if !ok {
		return nil, data.ErrNotExist
	}
	return entry, nil
}

func (s *Store) Create(_ context.Context, entry *store.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries.Get(entry.Key); ok {
		return fmt.Errorf("%w: %s", data.ErrExist, entry.Key)
	}

	s.entries.Set(entry.Key, entry)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries.Delete(key); !ok {
		return data.ErrNotExist
	}
	delete(s.contents, key)

	return nil
}

func (s *Store) List(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := store.ChildPrefix(key)
	children := make([]string, 0)
	seen := make(map[string]struct{})
	s.entries.Ascend(prefix, func(k string, _ *store.Entry) bool {
		child, ok := store.ChildName(prefix, k)
		if !ok {
			return strings.HasPrefix(k, prefix)
		}
		if _, dup := seen[child]; !dup {
			seen[child] = struct{}{}
			children = append(children, child)
		}
		return true
	})

	return children, nil
}

// WriteContent stores content for the file at key, creating the entry
// and its missing parent folders.
func (s *Store) WriteContent(key string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for parent := store.ParentKey(key); parent != "/"; parent = store.ParentKey(parent) {
		if _, ok := s.entries.Get(parent); !ok {
			s.entries.Set(parent, store.NewEntry(parent, data.FileTypeFolder))
		}
	}

	entry, ok := s.entries.Get(key)
	if !ok {
		entry = store.NewEntry(key, data.FileTypeFile)
		s.entries.Set(key, entry)
	}
	entry.ModifyTime = time.Now()

	s.contents[key] = append([]byte(nil), content...)
}

func (s *Store) ReadContent(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.contents[key]
	if !ok {
		if _, exists := s.entries.Get(key); !exists {
			return nil, data.ErrNotExist
		}
		return []byte{}, nil
	}
	return append([]byte(nil), content...), nil
}
