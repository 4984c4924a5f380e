package provider

import (
	"context"
	"io"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
)

// DecoratedFileObject forwards every call to an inner file object.
// Decorators embed it and override what they change.
type DecoratedFileObject struct {
	inner FileObject
	ref   *Ref
}

// NewDecoratedFileObject returns the forwarding base for self, the
// decorator that embeds it.
func NewDecoratedFileObject(inner, self FileObject) *DecoratedFileObject {
	return &DecoratedFileObject{
		inner: inner,
		ref:   NewRef(self),
	}
}

// Inner returns the decorated file object.
func (d *DecoratedFileObject) Inner() FileObject {
	return d.inner
}

func (d *DecoratedFileObject) Name() *name.FileName {
	return d.inner.Name()
}

func (d *DecoratedFileObject) FileSystem() FileSystem {
	return d.inner.FileSystem()
}

func (d *DecoratedFileObject) Ref() *Ref {
	return d.ref
}

func (d *DecoratedFileObject) Exists(ctx context.Context) (bool, error) {
	return d.inner.Exists(ctx)
}

func (d *DecoratedFileObject) Type(ctx context.Context) (data.FileType, error) {
	return d.inner.Type(ctx)
}

func (d *DecoratedFileObject) IsAttached() bool {
	return d.inner.IsAttached()
}

func (d *DecoratedFileObject) Refresh(ctx context.Context) error {
	return d.inner.Refresh(ctx)
}

func (d *DecoratedFileObject) Parent(ctx context.Context) (FileObject, error) {
	return d.inner.Parent(ctx)
}

func (d *DecoratedFileObject) Children(ctx context.Context) ([]FileObject, error) {
	return d.inner.Children(ctx)
}

func (d *DecoratedFileObject) Child(ctx context.Context, baseName string) (FileObject, error) {
	return d.inner.Child(ctx, baseName)
}

func (d *DecoratedFileObject) ResolveFile(ctx context.Context, path string, scope data.NameScope) (FileObject, error) {
	return d.inner.ResolveFile(ctx, path, scope)
}

func (d *DecoratedFileObject) CreateFolder(ctx context.Context) error {
	return d.inner.CreateFolder(ctx)
}

func (d *DecoratedFileObject) CreateFile(ctx context.Context) error {
	return d.inner.CreateFile(ctx)
}

func (d *DecoratedFileObject) Delete(ctx context.Context) (bool, error) {
	return d.inner.Delete(ctx)
}

func (d *DecoratedFileObject) Close() error {
	return d.inner.Close()
}

func (d *DecoratedFileObject) String() string {
	return d.inner.Name().FriendlyURI()
}

// Undecorate strips every decorator layer off file.
func Undecorate(file FileObject) FileObject {
	for {
		decorated, ok := file.(interface{ Inner() FileObject })
		if !ok {
			return file
		}
		file = decorated.Inner()
	}
}

// OpenContent opens the content of file, looking through decorators and
// virtual delegates.
func OpenContent(ctx context.Context, file FileObject) (io.ReadCloser, error) {
	for file != nil {
		file = Undecorate(file)
		if opener, ok := file.(ContentOpener); ok {
			return opener.OpenContent(ctx)
		}

		delegate, ok := file.(interface{ File() FileObject })
		if !ok {
			break
		}
		file = delegate.File()
	}
	return nil, data.ErrNotSupported
}
