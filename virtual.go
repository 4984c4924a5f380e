package vfs

import (
	"context"
	"fmt"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/provider"
)

// CreateVirtualFileSystem creates an empty virtual file system rooted at
// rootURI, for example "vfs:". Mount subtrees with AddJunction on its
// file system.
func (m *Manager) CreateVirtualFileSystem(ctx context.Context, rootURI string) (provider.FileObject, error) {
	m.mu.RLock()
	virtualProvider := m.virtualProvider
	err := m.checkInitialized()
	m.mu.RUnlock()

	if err != nil {
		return nil, err
	}
	return virtualProvider.CreateFromURI(ctx, rootURI)
}

// CreateVirtualFileSystemFrom creates a virtual file system whose root is
// a junction to rootFile.
func (m *Manager) CreateVirtualFileSystemFrom(ctx context.Context, rootFile provider.FileObject) (provider.FileObject, error) {
	if rootFile == nil {
		return nil, fmt.Errorf("%w: root file is nil", data.ErrInvalidArgument)
	}

	m.mu.RLock()
	virtualProvider := m.virtualProvider
	err := m.checkInitialized()
	m.mu.RUnlock()

	if err != nil {
		return nil, err
	}
	return virtualProvider.CreateFromFile(ctx, rootFile)
}
