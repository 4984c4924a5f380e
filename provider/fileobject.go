package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
)

// FileBackend is implemented by concrete file objects built on
// BaseFileObject.
type FileBackend interface {
	// DoGetType determines the type of the node.
	DoGetType(ctx context.Context) (data.FileType, error)

	// DoListChildren returns the base names of the children.
	DoListChildren(ctx context.Context) ([]string, error)
}

// FolderCreator is implemented by backends supporting CreateFolder.
type FolderCreator interface {
	DoCreateFolder(ctx context.Context) error
}

// FileCreator is implemented by backends supporting CreateFile.
type FileCreator interface {
	DoCreateFile(ctx context.Context) error
}

// Deleter is implemented by backends supporting Delete.
type Deleter interface {
	DoDelete(ctx context.Context) error
}

// Detacher is implemented by backends holding state that must be
// released on refresh and close.
type Detacher interface {
	DoDetach() error
}

// BaseFileObject implements FileObject on top of a FileBackend. The type
// is computed once and cached until Refresh.
type BaseFileObject struct {
	name *name.FileName
	fs   FileSystem
	impl FileBackend
	ref  *Ref

	mu       sync.Mutex
	attached bool
	typ      data.FileType
}

// NewBaseFileObject returns the base for self, the concrete object that
// embeds it.
func NewBaseFileObject(n *name.FileName, fs FileSystem, self interface {
	FileObject
	FileBackend
}) *BaseFileObject {
	return &BaseFileObject{
		name: n,
		fs:   fs,
		impl: self,
		ref:  NewRef(self),
	}
}

func (f *BaseFileObject) Name() *name.FileName {
	return f.name
}

func (f *BaseFileObject) FileSystem() FileSystem {
	return f.fs
}

func (f *BaseFileObject) Ref() *Ref {
	return f.ref
}

func (f *BaseFileObject) self() FileObject {
	return f.ref.File()
}

func (f *BaseFileObject) String() string {
	return f.name.FriendlyURI()
}

func (f *BaseFileObject) Type(ctx context.Context) (data.FileType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attached {
		return f.typ, nil
	}

	typ, err := f.impl.DoGetType(ctx)
	if err != nil {
		return data.FileTypeImaginary, errors.Backend(err, "get-type", f.name.FriendlyURI())
	}

	f.typ = typ
	f.attached = true
	return typ, nil
}

func (f *BaseFileObject) Exists(ctx context.Context) (bool, error) {
	typ, err := f.Type(ctx)
	if err != nil {
		return false, err
	}
	return typ.Exists(), nil
}

func (f *BaseFileObject) IsAttached() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.attached
}

func (f *BaseFileObject) Refresh(_ context.Context) error {
	return f.detach()
}

// invalidate forgets the cached type without touching backend state.
func (f *BaseFileObject) invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attached = false
	f.typ = data.FileTypeImaginary
}

// setType records a type the backend has just established.
func (f *BaseFileObject) setType(typ data.FileType) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attached = true
	f.typ = typ
}

func (f *BaseFileObject) detach() error {
	f.invalidate()

	if detacher, ok := f.impl.(Detacher); ok {
		return detacher.DoDetach()
	}
	return nil
}

func (f *BaseFileObject) Parent(ctx context.Context) (FileObject, error) {
	parent := f.name.Parent()
	if parent == nil {
		return nil, nil
	}
	return f.fs.ResolveFile(ctx, parent)
}

func (f *BaseFileObject) Children(ctx context.Context) ([]FileObject, error) {
	typ, err := f.Type(ctx)
	if err != nil {
		return nil, err
	}
	if !typ.HasChildren() {
		return nil, errors.NotFolder(nil, f.name.FriendlyURI())
	}

	names, err := f.impl.DoListChildren(ctx)
	if err != nil {
		return nil, errors.Backend(err, "list-children", f.name.FriendlyURI())
	}

	children := make([]FileObject, 0, len(names))
	for _, baseName := range names {
		child, err := f.Child(ctx, baseName)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

func (f *BaseFileObject) Child(ctx context.Context, baseName string) (FileObject, error) {
	return f.ResolveFile(ctx, name.Encode(baseName, '?', '#'), data.ScopeChild)
}

func (f *BaseFileObject) ResolveFile(ctx context.Context, path string, scope data.NameScope) (FileObject, error) {
	n, err := f.fs.Context().ResolveName(f.name, path, scope)
	if err != nil {
		return nil, err
	}
	return f.fs.ResolveFile(ctx, n)
}

func (f *BaseFileObject) CreateFolder(ctx context.Context) error {
	typ, err := f.Type(ctx)
	if err != nil {
		return err
	}
	if typ.HasChildren() {
		return nil
	}
	if typ != data.FileTypeImaginary {
		return fmt.Errorf("%w: %s", data.ErrExist, f.name.FriendlyURI())
	}

	creator, ok := f.impl.(FolderCreator)
	if !ok || !f.fs.HasCapability(data.CapabilityCreate) {
		return errors.NotSupported(nil, "create-folder", f.name.FriendlyURI())
	}

	if err := f.createParent(ctx); err != nil {
		return err
	}

	if err := creator.DoCreateFolder(ctx); err != nil {
		return errors.Backend(err, "create-folder", f.name.FriendlyURI())
	}

	f.setType(data.FileTypeFolder)
	return nil
}

func (f *BaseFileObject) CreateFile(ctx context.Context) error {
	typ, err := f.Type(ctx)
	if err != nil {
		return err
	}
	if typ == data.FileTypeFile {
		return nil
	}
	if typ != data.FileTypeImaginary {
		return fmt.Errorf("%w: %s", data.ErrExist, f.name.FriendlyURI())
	}

	creator, ok := f.impl.(FileCreator)
	if !ok || !f.fs.HasCapability(data.CapabilityCreate) {
		return errors.NotSupported(nil, "create-file", f.name.FriendlyURI())
	}

	if err := f.createParent(ctx); err != nil {
		return err
	}

	if err := creator.DoCreateFile(ctx); err != nil {
		return errors.Backend(err, "create-file", f.name.FriendlyURI())
	}

	f.setType(data.FileTypeFile)
	return nil
}

func (f *BaseFileObject) createParent(ctx context.Context) error {
	parent, err := f.self().Parent(ctx)
	if err != nil || parent == nil {
		return err
	}
	return parent.CreateFolder(ctx)
}

func (f *BaseFileObject) Delete(ctx context.Context) (bool, error) {
	typ, err := f.Type(ctx)
	if err != nil {
		return false, err
	}
	if !typ.Exists() {
		return false, nil
	}

	deleter, ok := f.impl.(Deleter)
	if !ok || !f.fs.HasCapability(data.CapabilityDelete) {
		return false, errors.NotSupported(nil, "delete", f.name.FriendlyURI())
	}

	if typ.HasChildren() {
		names, err := f.impl.DoListChildren(ctx)
		if err != nil {
			return false, errors.Backend(err, "list-children", f.name.FriendlyURI())
		}
		if len(names) > 0 {
			return false, fmt.Errorf("%w: %s", data.ErrNotEmpty, f.name.FriendlyURI())
		}
	}

	if err := deleter.DoDelete(ctx); err != nil {
		return false, errors.Backend(err, "delete", f.name.FriendlyURI())
	}

	f.setType(data.FileTypeImaginary)
	return true, nil
}

func (f *BaseFileObject) Close() error {
	return f.detach()
}
