//go:generate mockgen -destination mock/provider.go -package mock . Provider,OperationProvider

package provider

import (
	"context"
	"io"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/name"
)

// FileObject is a live handle on a named node of a FileSystem.
// Instances are shared: every caller resolving the same name in the same
// file system receives the same object while it is cached.
type FileObject interface {
	// Name returns the canonical name of the node.
	Name() *name.FileName

	// FileSystem returns the owning file system.
	FileSystem() FileSystem

	// Ref returns the identity token held by caches. It stays reachable
	// exactly as long as the file object itself.
	Ref() *Ref

	// Exists reports whether the node exists.
	Exists(ctx context.Context) (bool, error)

	// Type returns the type of the node, computing it on first use.
	Type(ctx context.Context) (data.FileType, error)

	// IsAttached reports whether the type has been computed since the
	// last refresh.
	IsAttached() bool

	// Refresh drops every lazily computed attribute.
	Refresh(ctx context.Context) error

	// Parent returns the containing folder, or nil for the root.
	Parent(ctx context.Context) (FileObject, error)

	// Children lists the direct children.
	// Fails with a not-a-folder error if the node cannot have children.
	Children(ctx context.Context) ([]FileObject, error)

	// Child returns the direct child called baseName.
	Child(ctx context.Context, baseName string) (FileObject, error)

	// ResolveFile resolves path relative to this node under scope.
	ResolveFile(ctx context.Context, path string, scope data.NameScope) (FileObject, error)

	// CreateFolder creates the node and any missing ancestors as folders.
	CreateFolder(ctx context.Context) error

	// CreateFile creates the node as an empty file, creating ancestors.
	CreateFile(ctx context.Context) error

	// Delete removes the node if it is a file or an empty folder and
	// reports whether anything was removed.
	Delete(ctx context.Context) (bool, error)

	// Close releases resources held by the handle. The object stays usable.
	Close() error
}

// FileSystem is a root-scoped container of file objects sharing one
// provider, root URI and option set.
type FileSystem interface {
	// ID returns the unique identity of this instance.
	ID() string

	// RootName returns the name of the root folder.
	RootName() *name.FileName

	// RootURI returns the URI of the root folder.
	RootURI() string

	// Root resolves the root folder.
	Root(ctx context.Context) (FileObject, error)

	// ParentLayer returns the file this file system is layered on, if any.
	ParentLayer() FileObject

	// Options returns the options the file system was created with.
	Options() *data.FileSystemOptions

	// Capabilities returns what the file system supports.
	Capabilities() *data.Capabilities

	// HasCapability checks a single capability.
	HasCapability(c data.Capability) bool

	// ResolveFile returns the file object for n, creating and caching it
	// on a miss. n must belong to this file system.
	ResolveFile(ctx context.Context, n *name.FileName) (FileObject, error)

	// ResolvePath resolves an absolute or root relative path.
	ResolvePath(ctx context.Context, path string) (FileObject, error)

	// AddJunction mounts target at the absolute path point.
	AddJunction(ctx context.Context, point string, target FileObject) error

	// RemoveJunction removes the junction at point.
	RemoveJunction(ctx context.Context, point string) error

	// FileFromCache returns the cached object for n, or nil.
	FileFromCache(n *name.FileName) FileObject

	// PutFileToCache caches file.
	PutFileToCache(file FileObject)

	// RemoveFileFromCache evicts the object for n.
	RemoveFileFromCache(n *name.FileName)

	// Context returns the manager services the file system runs with.
	Context() ComponentContext

	// Close releases backend resources. It is safe to call more than once.
	Close() error
}

// Provider resolves URIs of one or more schemes into file objects.
type Provider interface {
	// Init hands the provider the manager services. It is called once
	// when the provider is registered.
	Init(cctx ComponentContext) error

	// FindFile locates the file for an absolute uri.
	FindFile(ctx context.Context, base FileObject, uri string, opts *data.FileSystemOptions) (FileObject, error)

	// ParseURI parses an absolute uri into a name of this provider.
	ParseURI(base *name.FileName, uri string) (*name.FileName, error)

	// CreateFileSystem layers a new file system of scheme on file and
	// returns its root.
	CreateFileSystem(ctx context.Context, scheme string, file FileObject, opts *data.FileSystemOptions) (FileObject, error)

	// Capabilities returns what file systems of this provider support.
	Capabilities() *data.Capabilities

	// ConfigBuilder returns the typed option builder, or nil.
	ConfigBuilder() data.ConfigBuilder

	// Close shuts the provider down and closes its file systems.
	Close() error
}

// FileSystemCloser is implemented by providers that can release a single
// file system.
type FileSystemCloser interface {
	CloseFileSystem(fs FileSystem) error
}

// LocalProvider serves plain local paths that carry no scheme.
type LocalProvider interface {
	Provider

	// IsAbsoluteLocalName reports whether name is an absolute local path.
	IsAbsoluteLocalName(name string) bool

	// FindLocalFile resolves an absolute local path.
	FindLocalFile(ctx context.Context, path string) (FileObject, error)
}

// FilesCache maps (file system, name) to file objects.
type FilesCache interface {
	// GetFile returns the cached object or nil on a miss.
	GetFile(fs FileSystem, n *name.FileName) FileObject

	// PutFile stores file, replacing any previous entry.
	PutFile(file FileObject)

	// PutFileIfAbsent stores file unless an entry exists and reports
	// whether it was stored.
	PutFileIfAbsent(file FileObject) bool

	// RemoveFile evicts the entry for n.
	RemoveFile(fs FileSystem, n *name.FileName)

	// Clear evicts every entry of fs.
	Clear(fs FileSystem)

	// Close evicts everything.
	Close()
}

// Decorator wraps every file object a file system creates.
type Decorator func(FileObject) FileObject

// OperationProvider contributes named operations to file objects of the
// schemes it is registered for.
type OperationProvider interface {
	// Operations returns the operations available on file.
	Operations(ctx context.Context, file FileObject) ([]string, error)
}

// ComponentContext is the view of the manager given to providers and
// file systems.
type ComponentContext interface {
	ResolveName(base *name.FileName, path string, scope data.NameScope) (*name.FileName, error)
	ResolveURI(uri string) (*name.FileName, error)
	ResolveFile(ctx context.Context, base FileObject, uri string, opts *data.FileSystemOptions) (FileObject, error)
	FilesCache() FilesCache
	CacheStrategy() data.CacheStrategy
	Decorator() Decorator
	Logger() *log.Logger
}

// ContentOpener is implemented by file objects whose content can be read.
// Layered file systems use it to open the file they are built on.
type ContentOpener interface {
	OpenContent(ctx context.Context) (io.ReadCloser, error)
}
