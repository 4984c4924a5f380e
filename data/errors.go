package data

import (
	"errors"
	"sync"
)

// Generic errors shared by all packages. Domain failures use the
// code-bearing errors in data/errors instead.
var (
	// ErrInvalidArgument marks a programming error such as a required
	// argument being nil. It is never wrapped in a FileSystemError.
	ErrInvalidArgument = errors.New("vfs: invalid argument")

	ErrClosed       = errors.New("vfs: already closed")
	ErrNotSupported = errors.New("vfs: operation not supported")
	ErrNotExist     = errors.New("vfs: file does not exist")
	ErrExist        = errors.New("vfs: file already exists")
	ErrNotFolder    = errors.New("vfs: not a folder")
	ErrNotEmpty     = errors.New("vfs: folder not empty")
)

// Errors collects failures from a batch of independent operations.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = make([]error, 0)
}

func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
