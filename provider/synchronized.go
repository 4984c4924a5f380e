package provider

import (
	"context"
	"sync"

	"github.com/mwantia/vfsname/data"
)

// SynchronizedFileObject serialises every call on one file object, for
// backends whose file objects are not safe for concurrent use.
type SynchronizedFileObject struct {
	*DecoratedFileObject

	mu sync.Mutex
}

// Synchronized is a Decorator wrapping file in a SynchronizedFileObject.
func Synchronized(file FileObject) FileObject {
	s := &SynchronizedFileObject{}
	s.DecoratedFileObject = NewDecoratedFileObject(file, s)

	return s
}

func (s *SynchronizedFileObject) Exists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Exists(ctx)
}

func (s *SynchronizedFileObject) Type(ctx context.Context) (data.FileType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Type(ctx)
}

func (s *SynchronizedFileObject) IsAttached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.IsAttached()
}

func (s *SynchronizedFileObject) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Refresh(ctx)
}

func (s *SynchronizedFileObject) Children(ctx context.Context) ([]FileObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Children(ctx)
}

func (s *SynchronizedFileObject) CreateFolder(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.CreateFolder(ctx)
}

func (s *SynchronizedFileObject) CreateFile(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.CreateFile(ctx)
}

func (s *SynchronizedFileObject) Delete(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Delete(ctx)
}

func (s *SynchronizedFileObject) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Close()
}
