package virtual

import (
	"context"
	"strings"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// Scheme is used for virtual roots created from a URI without a scheme.
const Scheme = "vfs"

// Provider creates virtual file systems. It is not bound to a scheme:
// file systems are only created explicitly and never found by URI.
type Provider struct {
	mu          sync.Mutex
	cctx        provider.ComponentContext
	fileSystems []*FileSystem
}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Init(cctx provider.ComponentContext) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cctx = cctx
	return nil
}

func (p *Provider) FindFile(_ context.Context, _ provider.FileObject, uri string, _ *data.FileSystemOptions) (provider.FileObject, error) {
	return nil, errors.NotSupported(nil, "find-file", uri)
}

func (p *Provider) ParseURI(_ *name.FileName, uri string) (*name.FileName, error) {
	return nil, errors.NotSupported(nil, "parse-uri", uri)
}

// CreateFileSystem creates a virtual file system sharing the root of file
// with a junction from its root to file. scheme is ignored.
func (p *Provider) CreateFileSystem(ctx context.Context, _ string, file provider.FileObject, _ *data.FileSystemOptions) (provider.FileObject, error) {
	return p.CreateFromFile(ctx, file)
}

// CreateFromFile creates a virtual file system whose root is a junction
// to rootFile.
func (p *Provider) CreateFromFile(ctx context.Context, rootFile provider.FileObject) (provider.FileObject, error) {
	cctx := p.Context()

	root, err := cctx.ResolveName(rootFile.Name(), name.RootPath, data.ScopeFileSystem)
	if err != nil {
		return nil, err
	}

	fs := p.add(NewFileSystem(cctx, root, rootFile.FileSystem().Options()))
	if err := fs.AddJunction(ctx, name.RootPath, rootFile); err != nil {
		return nil, err
	}
	return fs.Root(ctx)
}

// CreateFromURI creates an empty virtual file system rooted at rootURI,
// such as "vfs:".
func (p *Provider) CreateFromURI(ctx context.Context, rootURI string) (provider.FileObject, error) {
	scheme, _, ok := name.ExtractScheme(rootURI)
	if !ok {
		scheme = Scheme
		rootURI = Scheme + ":" + rootURI
	}

	root := name.NewFileName(name.NewPrefixRoot(scheme, strings.TrimSuffix(rootURI, name.Separator)), name.RootPath, data.FileTypeFolder)

	fs := p.add(NewFileSystem(p.Context(), root, nil))
	return fs.Root(ctx)
}

func (p *Provider) add(fs *FileSystem) *FileSystem {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fileSystems = append(p.fileSystems, fs)
	return fs
}

// Context returns the manager services handed over by Init.
func (p *Provider) Context() provider.ComponentContext {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cctx
}

func (p *Provider) Capabilities() *data.Capabilities {
	return data.NewCapabilities(data.CapabilityVirtual, data.CapabilityJunctions)
}

func (p *Provider) ConfigBuilder() data.ConfigBuilder {
	return nil
}

func (p *Provider) CloseFileSystem(fs provider.FileSystem) error {
	p.mu.Lock()
	for i, candidate := range p.fileSystems {
		if provider.FileSystem(candidate) == fs {
			p.fileSystems = append(p.fileSystems[:i], p.fileSystems[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	return fs.Close()
}

func (p *Provider) Close() error {
	p.mu.Lock()
	fileSystems := p.fileSystems
	p.fileSystems = nil
	p.mu.Unlock()

	errs := &data.Errors{}
	for _, fs := range fileSystems {
		errs.Add(fs.Close())
	}
	return errs.Errors()
}
