package store

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// FileSystem serves the entries of a Store as file objects.
type FileSystem struct {
	*provider.BaseFileSystem

	store Store
	caps  []data.Capability
}

// NewFileSystem wraps an opened store.
func NewFileSystem(cctx provider.ComponentContext, root *name.FileName, parentLayer provider.FileObject, opts *data.FileSystemOptions, store Store, caps ...data.Capability) *FileSystem {
	fs := &FileSystem{
		store: store,
		caps:  caps,
	}
	fs.BaseFileSystem = provider.NewBaseFileSystem(cctx, root, parentLayer, opts, fs)

	return fs
}

// Store returns the underlying store.
func (fs *FileSystem) Store() Store {
	return fs.store
}

func (fs *FileSystem) CreateFile(_ context.Context, n *name.FileName) (provider.FileObject, error) {
	return newFileObject(n, fs), nil
}

func (fs *FileSystem) AddCapabilities(caps *data.Capabilities) {
	caps.Add(data.CapabilityGetType, data.CapabilityListChildren)
	if !isReadOnly(fs.store) {
		caps.Add(data.CapabilityCreate, data.CapabilityDelete)
	}
	if _, ok := fs.store.(ContentReader); ok {
		caps.Add(data.CapabilityReadContent)
	}
	caps.Add(fs.caps...)
	caps.AddExtra("store:" + fs.store.Name())
}

func (fs *FileSystem) DoClose() error {
	return fs.store.Close(context.Background())
}

// FileObject is a node of a store backed file system.
type FileObject struct {
	*provider.BaseFileObject

	fs *FileSystem
}

func newFileObject(n *name.FileName, fs *FileSystem) *FileObject {
	f := &FileObject{fs: fs}
	f.BaseFileObject = provider.NewBaseFileObject(n, fs, f)

	return f
}

func (f *FileObject) key() string {
	return f.Name().Path()
}

func (f *FileObject) DoGetType(ctx context.Context) (data.FileType, error) {
	if f.key() == name.RootPath {
		return data.FileTypeFolder, nil
	}

	entry, err := f.fs.store.Stat(ctx, f.key())
	if stderrors.Is(err, data.ErrNotExist) {
		return data.FileTypeImaginary, nil
	}
	if err != nil {
		return data.FileTypeImaginary, err
	}
	return entry.Type, nil
}

func (f *FileObject) DoListChildren(ctx context.Context) ([]string, error) {
	return f.fs.store.List(ctx, f.key())
}

func (f *FileObject) DoCreateFolder(ctx context.Context) error {
	if f.key() == name.RootPath {
		return nil
	}
	return f.fs.store.Create(ctx, NewEntry(f.key(), data.FileTypeFolder))
}

func (f *FileObject) DoCreateFile(ctx context.Context) error {
	return f.fs.store.Create(ctx, NewEntry(f.key(), data.FileTypeFile))
}

func (f *FileObject) DoDelete(ctx context.Context) error {
	return f.fs.store.Delete(ctx, f.key())
}

// OpenContent reads the content of the file when the store keeps content.
func (f *FileObject) OpenContent(ctx context.Context) (io.ReadCloser, error) {
	reader, ok := f.fs.store.(ContentReader)
	if !ok {
		return nil, data.ErrNotSupported
	}

	content, err := reader.ReadContent(ctx, f.key())
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
