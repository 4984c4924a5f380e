package vfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// ResolveFile resolves uri against the base file of the manager.
func (m *Manager) ResolveFile(ctx context.Context, uri string) (provider.FileObject, error) {
	return m.ResolveFileWithOptions(ctx, m.BaseFile(), uri, nil)
}

// ResolveFileFrom resolves uri relative to base.
func (m *Manager) ResolveFileFrom(ctx context.Context, base provider.FileObject, uri string) (provider.FileObject, error) {
	return m.ResolveFileWithOptions(ctx, base, uri, nil)
}

// ResolveFileInDir resolves path relative to the local directory dir.
func (m *Manager) ResolveFileInDir(ctx context.Context, dir, path string) (provider.FileObject, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: base directory is empty", data.ErrInvalidArgument)
	}

	_, local := m.defaultAndLocal()
	if local == nil {
		return nil, errors.NoLocalProvider(nil, dir)
	}

	base, err := local.FindLocalFile(ctx, dir)
	if err != nil {
		return nil, err
	}
	return m.ResolveFileWithOptions(ctx, base, path, nil)
}

// ResolveFileWithOptions resolves uri. Absolute URIs go to the provider
// of their scheme, absolute local paths to the local provider, URIs of an
// unknown scheme to the default provider. Anything else is resolved
// relative to base.
func (m *Manager) ResolveFileWithOptions(ctx context.Context, base provider.FileObject, uri string, opts *data.FileSystemOptions) (provider.FileObject, error) {
	m.mu.RLock()
	state := m.state
	uriStyle := m.uriStyle
	m.mu.RUnlock()

	switch state {
	case stateUninitialized:
		return nil, errors.NotInited(nil)
	case stateClosed:
		return newClosedFileObject(uri), nil
	}

	if uri == "" {
		return nil, errors.InvalidURI(nil, uri)
	}

	realBase := base
	if base != nil && uriStyle && base.Name().IsFile() {
		parent, err := base.Parent(ctx)
		if err != nil {
			return nil, err
		}
		realBase = parent
	}

	if err := name.CheckURIEncoding(uri); err != nil {
		return nil, err
	}

	scheme, _, hasScheme := name.ExtractSchemeFrom(m.Schemes(), uri)
	if hasScheme {
		if p := m.providerFor(scheme); p != nil {
			return p.FindFile(ctx, realBase, uri, opts)
		}
	}

	defaultProvider, local := m.defaultAndLocal()
	if local != nil && local.IsAbsoluteLocalName(uri) {
		return local.FindLocalFile(ctx, uri)
	}

	if hasScheme {
		if defaultProvider == nil {
			return nil, errors.UnknownScheme(nil, scheme, uri)
		}
		return defaultProvider.FindFile(ctx, realBase, uri, opts)
	}

	if realBase == nil {
		return nil, errors.FindRelativeFile(nil, uri)
	}
	return realBase.ResolveFile(ctx, uri, data.ScopeFileSystem)
}

// ResolveURI parses an absolute uri into a name without resolving a file.
func (m *Manager) ResolveURI(uri string) (*name.FileName, error) {
	if err := name.CheckURIEncoding(uri); err != nil {
		return nil, err
	}

	scheme, _, ok := name.ExtractSchemeFrom(m.Schemes(), uri)
	if !ok {
		_, local := m.defaultAndLocal()
		if local == nil || !local.IsAbsoluteLocalName(uri) {
			return nil, errors.InvalidAbsoluteURI(nil, uri)
		}
		return local.ParseURI(nil, uri)
	}

	if p := m.providerFor(scheme); p != nil {
		return p.ParseURI(nil, uri)
	}

	defaultProvider, _ := m.defaultAndLocal()
	if defaultProvider == nil {
		return nil, errors.UnknownScheme(nil, scheme, uri)
	}
	return defaultProvider.ParseURI(nil, uri)
}

// ResolveName resolves path against base under scope. A path starting
// with a separator is absolute within the file system of base; any other
// path is relative to base.
func (m *Manager) ResolveName(base *name.FileName, path string, scope data.NameScope) (*name.FileName, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: base name is nil", data.ErrInvalidArgument)
	}

	m.mu.RLock()
	uriStyle := m.uriStyle
	m.mu.RUnlock()

	realBase := base
	if uriStyle && base.IsFile() {
		realBase = base.Parent()
	}

	fixed, _ := name.FixSeparators(path)
	if _, _, ok := name.ExtractSchemeFrom(m.Schemes(), fixed); ok {
		return m.resolveAbsoluteName(realBase, fixed, scope)
	}

	if fixed == "" || !strings.HasPrefix(fixed, name.Separator) {
		if realBase.Path() == name.RootPath {
			fixed = name.RootPath + fixed
		} else {
			fixed = realBase.Path() + name.Separator + fixed
		}
	}

	normalised, typ, err := name.NormalisePath(fixed)
	if err != nil {
		return nil, err
	}

	if !name.CheckName(realBase.Path(), normalised, scope) {
		return nil, errors.InvalidDescendentName(nil, path)
	}

	full := strings.TrimSuffix(realBase.RootURI(), name.Separator) + normalised
	if typ == data.FileTypeFolder && normalised != name.RootPath {
		full += name.Separator
	}

	scheme := realBase.Scheme()
	if p := m.providerFor(scheme); p != nil {
		return p.ParseURI(realBase, full)
	}
	return realBase.CreateName(normalised, typ), nil
}

// resolveAbsoluteName parses a path carrying its own scheme and checks it
// against scope.
func (m *Manager) resolveAbsoluteName(base *name.FileName, uri string, scope data.NameScope) (*name.FileName, error) {
	n, err := m.ResolveURI(uri)
	if err != nil {
		return nil, err
	}

	if scope == data.ScopeFileSystem {
		return n, nil
	}
	if n.RootURI() != base.RootURI() || !name.CheckName(base.Path(), n.Path(), scope) {
		return nil, errors.InvalidDescendentName(nil, uri)
	}
	return n, nil
}

// CloseFileSystem evicts every cached file of fs and lets its provider
// release the backend. Closing twice is harmless.
func (m *Manager) CloseFileSystem(fs provider.FileSystem) error {
	if fs == nil {
		return fmt.Errorf("%w: file system is nil", data.ErrInvalidArgument)
	}

	if filesCache := m.FilesCache(); filesCache != nil {
		filesCache.Clear(fs)
	}

	m.mu.RLock()
	p, _ := m.providers.Get(fs.RootName().Scheme())
	virtualProvider := m.virtualProvider
	m.mu.RUnlock()

	closer, ok := p.(provider.FileSystemCloser)
	if !ok || fs.HasCapability(data.CapabilityVirtual) {
		if virtualProvider == nil {
			return fs.Close()
		}
		closer = virtualProvider
	}
	return closer.CloseFileSystem(fs)
}
