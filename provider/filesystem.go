package provider

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/name"
	"golang.org/x/sync/singleflight"
)

// FileSystemBackend is implemented by concrete file systems built on
// BaseFileSystem.
type FileSystemBackend interface {
	// CreateFile builds a fresh, undecorated file object for n.
	CreateFile(ctx context.Context, n *name.FileName) (FileObject, error)

	// AddCapabilities appends the capabilities of the file system.
	AddCapabilities(caps *data.Capabilities)
}

// FileSystemDoCloser is implemented by backends holding connections or
// other resources released on Close.
type FileSystemDoCloser interface {
	DoClose() error
}

// JunctionBackend is implemented by backends supporting junctions.
type JunctionBackend interface {
	DoAddJunction(ctx context.Context, point *name.FileName, target FileObject) error
	DoRemoveJunction(ctx context.Context, point *name.FileName) error
}

// BaseFileSystem implements the shared parts of FileSystem: identity,
// capabilities, cache lookups and at most one CreateFile per name under
// concurrent resolution.
type BaseFileSystem struct {
	id          string
	cctx        ComponentContext
	root        *name.FileName
	parentLayer FileObject
	opts        *data.FileSystemOptions
	impl        FileSystemBackend
	self        FileSystem
	log         *log.Logger

	group singleflight.Group

	capsOnce sync.Once
	caps     *data.Capabilities

	closeOnce sync.Once
	closeErr  error
}

// NewBaseFileSystem returns the base for self, the concrete file system
// embedding it.
func NewBaseFileSystem(cctx ComponentContext, root *name.FileName, parentLayer FileObject, opts *data.FileSystemOptions, self interface {
	FileSystem
	FileSystemBackend
}) *BaseFileSystem {
	if opts == nil {
		opts = data.NewFileSystemOptions()
	}

	id := uuid.Must(uuid.NewV7()).String()
	logger := cctx.Logger().Named(root.Scheme()).With("fs", id)

	return &BaseFileSystem{
		id:          id,
		cctx:        cctx,
		root:        root,
		parentLayer: parentLayer,
		opts:        opts,
		impl:        self,
		self:        self,
		log:         logger,
	}
}

func (fs *BaseFileSystem) ID() string {
	return fs.id
}

func (fs *BaseFileSystem) RootName() *name.FileName {
	return fs.root
}

func (fs *BaseFileSystem) RootURI() string {
	return fs.root.RootURI()
}

func (fs *BaseFileSystem) ParentLayer() FileObject {
	return fs.parentLayer
}

func (fs *BaseFileSystem) Options() *data.FileSystemOptions {
	return fs.opts
}

func (fs *BaseFileSystem) Context() ComponentContext {
	return fs.cctx
}

// Logger returns the logger scoped to this file system.
func (fs *BaseFileSystem) Logger() *log.Logger {
	return fs.log
}

func (fs *BaseFileSystem) Capabilities() *data.Capabilities {
	fs.capsOnce.Do(func() {
		caps := data.NewCapabilities()
		fs.impl.AddCapabilities(caps)
		fs.caps = caps
	})
	return fs.caps
}

func (fs *BaseFileSystem) HasCapability(c data.Capability) bool {
	return fs.Capabilities().Contains(c)
}

func (fs *BaseFileSystem) Root(ctx context.Context) (FileObject, error) {
	return fs.self.ResolveFile(ctx, fs.root)
}

func (fs *BaseFileSystem) ResolvePath(ctx context.Context, path string) (FileObject, error) {
	n, err := fs.cctx.ResolveName(fs.root, path, data.ScopeFileSystem)
	if err != nil {
		return nil, err
	}
	return fs.self.ResolveFile(ctx, n)
}

func (fs *BaseFileSystem) ResolveFile(ctx context.Context, n *name.FileName) (FileObject, error) {
	if n.RootURI() != fs.root.RootURI() {
		return nil, errors.MismatchedFileSystem(nil, n.FriendlyURI(), fs.root.FriendlyURI())
	}

	if file := fs.self.FileFromCache(n); file != nil {
		return fs.afterResolve(ctx, file)
	}

	v, err, _ := fs.group.Do(n.Key(), func() (any, error) {
		if file := fs.self.FileFromCache(n); file != nil {
			return file, nil
		}

		// The result is shared by every waiting caller.
		file, err := fs.impl.CreateFile(context.WithoutCancel(ctx), n)
		if err != nil {
			return nil, err
		}

		file = fs.decorate(file)
		fs.self.PutFileToCache(file)

		fs.log.Debug("created file object for '%s'", n.FriendlyURI())
		return file, nil
	})
	if err != nil {
		return nil, err
	}

	return fs.afterResolve(ctx, v.(FileObject))
}

func (fs *BaseFileSystem) decorate(file FileObject) FileObject {
	if fs.cctx.CacheStrategy() == data.CacheOnCall {
		file = NewOnCallRefreshFileObject(file)
	}
	if decorator := fs.cctx.Decorator(); decorator != nil {
		file = decorator(file)
	}
	return file
}

func (fs *BaseFileSystem) afterResolve(ctx context.Context, file FileObject) (FileObject, error) {
	if fs.cctx.CacheStrategy() == data.CacheOnResolve {
		if err := file.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return file, nil
}

func (fs *BaseFileSystem) AddJunction(ctx context.Context, point string, target FileObject) error {
	junctions, ok := fs.impl.(JunctionBackend)
	if !ok {
		return errors.JunctionsNotSupported(nil, fs.root.FriendlyURI())
	}

	n, err := fs.cctx.ResolveName(fs.root, point, data.ScopeFileSystem)
	if err != nil {
		return err
	}
	return junctions.DoAddJunction(ctx, n, target)
}

func (fs *BaseFileSystem) RemoveJunction(ctx context.Context, point string) error {
	junctions, ok := fs.impl.(JunctionBackend)
	if !ok {
		return errors.JunctionsNotSupported(nil, fs.root.FriendlyURI())
	}

	n, err := fs.cctx.ResolveName(fs.root, point, data.ScopeFileSystem)
	if err != nil {
		return err
	}
	return junctions.DoRemoveJunction(ctx, n)
}

func (fs *BaseFileSystem) FileFromCache(n *name.FileName) FileObject {
	return fs.cctx.FilesCache().GetFile(fs.self, n)
}

func (fs *BaseFileSystem) PutFileToCache(file FileObject) {
	fs.cctx.FilesCache().PutFile(file)
}

func (fs *BaseFileSystem) RemoveFileFromCache(n *name.FileName) {
	fs.cctx.FilesCache().RemoveFile(fs.self, n)
}

func (fs *BaseFileSystem) Close() error {
	fs.closeOnce.Do(func() {
		if closer, ok := fs.impl.(FileSystemDoCloser); ok {
			fs.closeErr = closer.DoClose()
		}
		fs.log.Debug("closed file system '%s'", fs.root.FriendlyURI())
	})
	return fs.closeErr
}
