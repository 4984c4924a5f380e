package vfs

import (
	"context"
	"strings"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/provider"
)

// typeMap infers the scheme of a layered file system from the mime type
// or extension of the file it is layered on.
type typeMap struct {
	mu         sync.RWMutex
	extensions map[string]string
	mimeTypes  map[string]string
}

func newTypeMap() *typeMap {
	return &typeMap{
		extensions: make(map[string]string),
		mimeTypes:  make(map[string]string),
	}
}

func (t *typeMap) addExtension(extension, scheme string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.extensions[strings.ToLower(strings.TrimPrefix(extension, "."))] = scheme
}

func (t *typeMap) addMimeType(mimeType, scheme string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mimeTypes[strings.ToLower(mimeType)] = scheme
}

// scheme returns the scheme for file, trying the mime type before the
// extension. Only files map to a scheme.
func (t *typeMap) scheme(ctx context.Context, file provider.FileObject) (string, bool, error) {
	typ, err := file.Type(ctx)
	if err != nil {
		return "", false, err
	}

	if typ != data.FileTypeFile {
		return "", false, nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	extension := strings.ToLower(file.Name().Extension())
	if scheme, ok := t.mimeTypes[data.MimeTypeOf(extension)]; ok {
		return scheme, true, nil
	}

	scheme, ok := t.extensions[extension]
	return scheme, ok, nil
}

func (t *typeMap) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.extensions)
	clear(t.mimeTypes)
}

// AddExtensionMap maps files with extension to the layered scheme.
func (m *Manager) AddExtensionMap(extension, scheme string) {
	m.types.addExtension(extension, scheme)
}

// AddMimeTypeMap maps files of mimeType to the layered scheme.
func (m *Manager) AddMimeTypeMap(mimeType, scheme string) {
	m.types.addMimeType(mimeType, scheme)
}

// CanCreateFileSystem reports whether a layered file system can be
// created on file through the type maps.
func (m *Manager) CanCreateFileSystem(ctx context.Context, file provider.FileObject) (bool, error) {
	scheme, ok, err := m.types.scheme(ctx, file)
	if err != nil || !ok {
		return false, err
	}
	return m.HasProvider(scheme), nil
}

// CreateFileSystem layers a file system on file, inferring the scheme
// from the type maps, and returns its root.
func (m *Manager) CreateFileSystem(ctx context.Context, file provider.FileObject) (provider.FileObject, error) {
	scheme, ok, err := m.types.scheme(ctx, file)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NoProviderForFile(nil, file.Name().FriendlyURI())
	}
	return m.CreateFileSystemWithScheme(ctx, scheme, file)
}

// CreateFileSystemWithScheme layers a file system of scheme on file and
// returns its root.
func (m *Manager) CreateFileSystemWithScheme(ctx context.Context, scheme string, file provider.FileObject) (provider.FileObject, error) {
	p := m.providerFor(scheme)
	if p == nil {
		return nil, errors.UnknownProvider(nil, scheme)
	}

	var opts *data.FileSystemOptions
	if fs := file.FileSystem(); fs != nil {
		opts = fs.Options()
	}
	return p.CreateFileSystem(ctx, scheme, file, opts)
}
