package provider

import (
	"context"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
)

// FileSystemFactory creates the file system for a root name.
type FileSystemFactory func(ctx context.Context, root *name.FileName, parentLayer FileObject, opts *data.FileSystemOptions) (FileSystem, error)

type fileSystemEntry struct {
	fs   FileSystem
	opts *data.FileSystemOptions
}

// BaseProvider implements Provider for schemes whose file systems are
// keyed by root URI and option set. Concrete providers embed it and
// supply a parser and a factory.
type BaseProvider struct {
	parser name.Parser
	create FileSystemFactory
	caps   *data.Capabilities

	cmu  sync.RWMutex
	cctx ComponentContext

	mu          sync.Mutex
	fileSystems map[string][]fileSystemEntry
}

// NewBaseProvider returns a provider parsing with parser and creating file
// systems with create.
func NewBaseProvider(parser name.Parser, create FileSystemFactory, caps ...data.Capability) *BaseProvider {
	return &BaseProvider{
		parser:      parser,
		create:      create,
		caps:        data.NewCapabilities(caps...),
		fileSystems: make(map[string][]fileSystemEntry),
	}
}

func (p *BaseProvider) Init(cctx ComponentContext) error {
	p.cmu.Lock()
	defer p.cmu.Unlock()

	p.cctx = cctx
	return nil
}

// Context returns the manager services handed over by Init.
func (p *BaseProvider) Context() ComponentContext {
	p.cmu.RLock()
	defer p.cmu.RUnlock()

	return p.cctx
}

// Parser returns the name parser of the provider.
func (p *BaseProvider) Parser() name.Parser {
	return p.parser
}

func (p *BaseProvider) ParseURI(base *name.FileName, uri string) (*name.FileName, error) {
	return p.parser.ParseURI(base, uri)
}

func (p *BaseProvider) FindFile(ctx context.Context, base FileObject, uri string, opts *data.FileSystemOptions) (FileObject, error) {
	var baseName *name.FileName
	if base != nil {
		baseName = base.Name()
	}

	n, err := p.parser.ParseURI(baseName, uri)
	if err != nil {
		return nil, errors.InvalidAbsoluteURI(err, uri)
	}

	return p.FindFileByName(ctx, n, opts)
}

// FindFileByName resolves an already parsed name.
func (p *BaseProvider) FindFileByName(ctx context.Context, n *name.FileName, opts *data.FileSystemOptions) (FileObject, error) {
	fs, err := p.FileSystemFor(ctx, n.RootName(), nil, opts)
	if err != nil {
		return nil, err
	}
	return fs.ResolveFile(ctx, n)
}

// FileSystemFor returns the file system for root and opts, creating it on
// first use. Equal option sets share one instance.
func (p *BaseProvider) FileSystemFor(ctx context.Context, root *name.FileName, parentLayer FileObject, opts *data.FileSystemOptions) (FileSystem, error) {
	if opts == nil {
		opts = data.NewFileSystemOptions()
	}

	key := root.RootURI()
	if fs := p.lookup(key, opts); fs != nil {
		return fs, nil
	}

	// Created outside the lock so that factories may resolve files of
	// this provider, as layered file systems do.
	fs, err := p.create(ctx, root, parentLayer, opts)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	for _, entry := range p.fileSystems[key] {
		if entry.opts.Equal(opts) {
			p.mu.Unlock()
			// Lost the race against a concurrent caller.
			fs.Close()
			return entry.fs, nil
		}
	}
	p.fileSystems[key] = append(p.fileSystems[key], fileSystemEntry{
		fs:   fs,
		opts: opts,
	})
	p.mu.Unlock()

	return fs, nil
}

func (p *BaseProvider) lookup(key string, opts *data.FileSystemOptions) FileSystem {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, entry := range p.fileSystems[key] {
		if entry.opts.Equal(opts) {
			return entry.fs
		}
	}
	return nil
}

// FileSystems returns every open file system of the provider.
func (p *BaseProvider) FileSystems() []FileSystem {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]FileSystem, 0, len(p.fileSystems))
	for _, entries := range p.fileSystems {
		for _, entry := range entries {
			result = append(result, entry.fs)
		}
	}
	return result
}

func (p *BaseProvider) CreateFileSystem(_ context.Context, scheme string, file FileObject, _ *data.FileSystemOptions) (FileObject, error) {
	return nil, errors.NotSupported(nil, "create-file-system:"+scheme, file.Name().FriendlyURI())
}

func (p *BaseProvider) Capabilities() *data.Capabilities {
	return p.caps
}

func (p *BaseProvider) ConfigBuilder() data.ConfigBuilder {
	return nil
}

// CloseFileSystem forgets fs and closes it.
func (p *BaseProvider) CloseFileSystem(fs FileSystem) error {
	p.mu.Lock()
	key := fs.RootURI()
	entries := p.fileSystems[key]
	for i, entry := range entries {
		if entry.fs == fs {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(p.fileSystems, key)
	} else {
		p.fileSystems[key] = entries
	}
	p.mu.Unlock()

	return fs.Close()
}

func (p *BaseProvider) Close() error {
	p.mu.Lock()
	fileSystems := p.fileSystems
	p.fileSystems = make(map[string][]fileSystemEntry)
	p.mu.Unlock()

	errs := &data.Errors{}
	for _, entries := range fileSystems {
		for _, entry := range entries {
			errs.Add(entry.fs.Close())
		}
	}
	return errs.Errors()
}
