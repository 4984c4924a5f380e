package local

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/providers/store"
)

// Store maps entries onto the host file system below a root directory.
type Store struct {
	root string
}

// NewStore returns a store rooted at dir, a drive or share on windows
// and empty on unix.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Returns the identifier name defined for this store
func (*Store) Name() string {
	return "local"
}

func (s *Store) Open(_ context.Context) error {
	if s.root == "" {
		return nil
	}

	info, err := os.Stat(s.root + string(filepath.Separator))
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", data.ErrNotFolder, s.root)
	}
	return nil
}

// The underlying filesystem persists independently
func (s *Store) Close(_ context.Context) error {
	return nil
}

// resolvePath converts an absolute key to a host path.
func (s *Store) resolvePath(key string) string {
	return filepath.FromSlash(s.root + key)
}

func (s *Store) Stat(_ context.Context, key string) (*store.Entry, error) {
	info, err := os.Stat(s.resolvePath(key))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}

	typ := data.FileTypeFile
	if info.IsDir() {
		typ = data.FileTypeFolder
	}

	entry := store.NewEntry(key, typ)
	entry.CreateTime = info.ModTime()
	entry.ModifyTime = info.ModTime()
	return entry, nil
}

func (s *Store) Create(_ context.Context, entry *store.Entry) error {
	path := s.resolvePath(entry.Key)

	var err error
	if entry.Type == data.FileTypeFolder {
		err = os.Mkdir(path, 0o755)
	} else {
		var f *os.File
		if f, err = os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644); err == nil {
			err = f.Close()
		}
	}

	if stderrors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", data.ErrExist, entry.Key)
	}
	return err
}

func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.resolvePath(key))
	if stderrors.Is(err, fs.ErrNotExist) {
		return data.ErrNotExist
	}
	return err
}

func (s *Store) List(_ context.Context, key string) ([]string, error) {
	entries, err := os.ReadDir(s.resolvePath(key))
	if err != nil {
		return nil, err
	}

	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, entry.Name())
	}
	sort.Strings(children)

	return children, nil
}

func (s *Store) ReadContent(_ context.Context, key string) ([]byte, error) {
	content, err := os.ReadFile(s.resolvePath(key))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, data.ErrNotExist
	}
	return content, err
}
