package vfs

import (
	"context"
	"fmt"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// closedFileObject is handed out by a closed manager. It never exists and
// refuses every change.
type closedFileObject struct {
	name *name.FileName
	ref  *provider.Ref
}

func newClosedFileObject(uri string) *closedFileObject {
	scheme, rest, ok := name.ExtractScheme(uri)
	if !ok {
		scheme = "file"
	}

	path, typ, err := name.NormalisePath("/" + trimSlashes(rest))
	if err != nil {
		path, typ = name.RootPath, data.FileTypeFolder
	}

	f := &closedFileObject{
		name: name.NewFileName(name.NewPrefixRoot(scheme, scheme+"://"), path, typ),
	}
	f.ref = provider.NewRef(f)

	return f
}

func trimSlashes(s string) string {
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}

func (f *closedFileObject) closed() error {
	return fmt.Errorf("%w: manager closed while resolving '%s'", data.ErrClosed, f.name.FriendlyURI())
}

func (f *closedFileObject) Name() *name.FileName {
	return f.name
}

// FileSystem is nil: the file belongs to no file system.
func (f *closedFileObject) FileSystem() provider.FileSystem {
	return nil
}

func (f *closedFileObject) Ref() *provider.Ref {
	return f.ref
}

func (f *closedFileObject) Exists(context.Context) (bool, error) {
	return false, nil
}

func (f *closedFileObject) Type(context.Context) (data.FileType, error) {
	return data.FileTypeImaginary, nil
}

func (f *closedFileObject) IsAttached() bool {
	return true
}

func (f *closedFileObject) Refresh(context.Context) error {
	return nil
}

func (f *closedFileObject) Parent(context.Context) (provider.FileObject, error) {
	return nil, nil
}

func (f *closedFileObject) Children(context.Context) ([]provider.FileObject, error) {
	return nil, errors.NotFolder(nil, f.name.FriendlyURI())
}

func (f *closedFileObject) Child(context.Context, string) (provider.FileObject, error) {
	return nil, f.closed()
}

func (f *closedFileObject) ResolveFile(context.Context, string, data.NameScope) (provider.FileObject, error) {
	return nil, f.closed()
}

func (f *closedFileObject) CreateFolder(context.Context) error {
	return f.closed()
}

func (f *closedFileObject) CreateFile(context.Context) error {
	return f.closed()
}

func (f *closedFileObject) Delete(context.Context) (bool, error) {
	return false, nil
}

func (f *closedFileObject) Close() error {
	return nil
}

func (f *closedFileObject) String() string {
	return f.name.FriendlyURI()
}
