package provider

import (
	"context"
	"sort"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
)

// DelegateFileObject is a file object that stands in for a file of
// another file system. Without a delegate it is a folder if children were
// attached to it, otherwise imaginary.
type DelegateFileObject struct {
	*BaseFileObject

	dmu      sync.Mutex
	file     FileObject
	children map[string]struct{}
}

// NewDelegateFileObject returns a delegate for n in fs, optionally bound
// to file.
func NewDelegateFileObject(n *name.FileName, fs FileSystem, file FileObject) *DelegateFileObject {
	d := &DelegateFileObject{
		file:     file,
		children: make(map[string]struct{}),
	}
	d.BaseFileObject = NewBaseFileObject(n, fs, d)

	return d
}

// File returns the bound delegate, or nil.
func (d *DelegateFileObject) File() FileObject {
	d.dmu.Lock()
	defer d.dmu.Unlock()

	return d.file
}

// SetFile rebinds the delegate and forgets the cached type.
func (d *DelegateFileObject) SetFile(file FileObject) {
	d.dmu.Lock()
	d.file = file
	d.dmu.Unlock()

	d.invalidate()
}

// AttachChild records a synthesised child, turning an unbound delegate
// into a folder.
func (d *DelegateFileObject) AttachChild(baseName string) {
	d.dmu.Lock()
	_, exists := d.children[baseName]
	d.children[baseName] = struct{}{}
	d.dmu.Unlock()

	if !exists {
		d.invalidate()
	}
}

func (d *DelegateFileObject) DoGetType(ctx context.Context) (data.FileType, error) {
	d.dmu.Lock()
	file := d.file
	hasChildren := len(d.children) > 0
	d.dmu.Unlock()

	if file != nil {
		typ, err := file.Type(ctx)
		if err != nil {
			return data.FileTypeImaginary, err
		}
		if typ == data.FileTypeImaginary && hasChildren {
			return data.FileTypeFolder, nil
		}
		return typ, nil
	}
	if hasChildren {
		return data.FileTypeFolder, nil
	}
	return data.FileTypeImaginary, nil
}

func (d *DelegateFileObject) DoListChildren(ctx context.Context) ([]string, error) {
	d.dmu.Lock()
	file := d.file
	names := make(map[string]struct{}, len(d.children))
	for child := range d.children {
		names[child] = struct{}{}
	}
	d.dmu.Unlock()

	if file != nil {
		typ, err := file.Type(ctx)
		if err != nil {
			return nil, err
		}
		if typ.HasChildren() {
			children, err := file.Children(ctx)
			if err != nil {
				return nil, err
			}
			for _, child := range children {
				names[child.Name().BaseName()] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(names))
	for child := range names {
		result = append(result, child)
	}
	sort.Strings(result)

	return result, nil
}

func (d *DelegateFileObject) DoCreateFolder(ctx context.Context) error {
	if file := d.File(); file != nil {
		return file.CreateFolder(ctx)
	}
	return nil
}

func (d *DelegateFileObject) DoCreateFile(ctx context.Context) error {
	if file := d.File(); file != nil {
		return file.CreateFile(ctx)
	}
	return data.ErrNotSupported
}

func (d *DelegateFileObject) DoDelete(ctx context.Context) error {
	if file := d.File(); file != nil {
		_, err := file.Delete(ctx)
		return err
	}
	return data.ErrNotSupported
}

// Refresh also refreshes the bound delegate.
func (d *DelegateFileObject) Refresh(ctx context.Context) error {
	if err := d.BaseFileObject.Refresh(ctx); err != nil {
		return err
	}
	if file := d.File(); file != nil {
		return file.Refresh(ctx)
	}
	return nil
}
