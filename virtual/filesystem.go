// Package virtual implements file systems without a backend of their own.
// Subtrees are mounted from other file systems through junctions.
package virtual

import (
	"context"
	"strings"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
	"github.com/tidwall/btree"
)

// FileSystem is a virtual file system. Names under a junction resolve to
// delegates of the junction target; every other name is a placeholder
// that is a folder when a junction lies below it and imaginary otherwise.
type FileSystem struct {
	*provider.BaseFileSystem

	mu        sync.RWMutex
	junctions *btree.Map[string, provider.FileObject]
}

// NewFileSystem creates an empty virtual file system rooted at root.
func NewFileSystem(cctx provider.ComponentContext, root *name.FileName, opts *data.FileSystemOptions) *FileSystem {
	fs := &FileSystem{
		junctions: btree.NewMap[string, provider.FileObject](0),
	}
	fs.BaseFileSystem = provider.NewBaseFileSystem(cctx, root, nil, opts, fs)

	return fs
}

func (fs *FileSystem) AddCapabilities(caps *data.Capabilities) {
	caps.Add(
		data.CapabilityVirtual,
		data.CapabilityJunctions,
		data.CapabilityGetType,
		data.CapabilityListChildren,
		data.CapabilityCreate,
		data.CapabilityDelete,
	)
}

func (fs *FileSystem) CreateFile(ctx context.Context, n *name.FileName) (provider.FileObject, error) {
	point, target := fs.junctionFor(n)
	if target == nil {
		file := provider.NewDelegateFileObject(n, fs, nil)
		for _, child := range fs.junctionChildren(n) {
			file.AttachChild(child)
		}
		return file, nil
	}

	delegate, err := target.ResolveFile(ctx, point.RelativeName(n), data.ScopeDescendentOrSelf)
	if err != nil {
		return nil, err
	}

	return provider.NewDelegateFileObject(n, fs, delegate), nil
}

// junctionFor returns the junction covering n, matching n itself first
// and then each ancestor.
func (fs *FileSystem) junctionFor(n *name.FileName) (*name.FileName, provider.FileObject) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for current := n; current != nil; current = current.Parent() {
		if target, ok := fs.junctions.Get(current.Path()); ok {
			return current, target
		}
	}
	return nil, nil
}

// junctionChildren returns the base names of the direct children of n
// leading towards junction points.
func (fs *FileSystem) junctionChildren(n *name.FileName) []string {
	prefix := n.Path()
	if prefix != name.RootPath {
		prefix += name.Separator
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var children []string
	fs.junctions.Ascend(prefix, func(point string, _ provider.FileObject) bool {
		if !strings.HasPrefix(point, prefix) {
			return false
		}

		child, _, _ := strings.Cut(point[len(prefix):], name.Separator)
		if child != "" && (len(children) == 0 || children[len(children)-1] != child) {
			children = append(children, child)
		}
		return true
	})
	return children
}

func (fs *FileSystem) DoAddJunction(ctx context.Context, point *name.FileName, target provider.FileObject) error {
	fs.mu.Lock()
	for current := point; current != nil; current = current.Parent() {
		if _, exists := fs.junctions.Get(current.Path()); exists {
			fs.mu.Unlock()
			return errors.NestedJunction(nil, point.FriendlyURI())
		}
	}
	fs.junctions.Set(point.Path(), target)
	fs.mu.Unlock()

	if delegate, ok := fs.cachedDelegate(point); ok {
		delegate.SetFile(target)
	}

	// Placeholders created from now on derive their children from the
	// junction table. Cached ones are updated up to the first folder
	// that already existed.
	for child := point; child.Parent() != nil; child = child.Parent() {
		delegate, ok := fs.cachedDelegate(child.Parent())
		if !ok {
			continue
		}

		exists, err := delegate.Exists(ctx)
		if err != nil {
			return err
		}

		delegate.AttachChild(child.BaseName())
		if exists {
			break
		}
	}

	fs.Logger().Debug("added junction '%s' to '%s'", point.Path(), target.Name().FriendlyURI())
	return nil
}

func (fs *FileSystem) DoRemoveJunction(_ context.Context, point *name.FileName) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.junctions.Delete(point.Path())
	return nil
}

func (fs *FileSystem) cachedDelegate(n *name.FileName) (*provider.DelegateFileObject, bool) {
	file := fs.FileFromCache(n)
	if file == nil {
		return nil, false
	}

	delegate, ok := provider.Undecorate(file).(*provider.DelegateFileObject)
	return delegate, ok
}

// Junctions returns the junction points in path order.
func (fs *FileSystem) Junctions() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	points := make([]string, 0, fs.junctions.Len())
	fs.junctions.Scan(func(point string, _ provider.FileObject) bool {
		points = append(points, point)
		return true
	})
	return points
}
