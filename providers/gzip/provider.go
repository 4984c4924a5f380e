// Package gzip provides the layered "gz" scheme: a read-only file system
// holding the decompressed content of a gzip file.
package gzip

import (
	"context"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
	"github.com/mwantia/vfsname/providers/store"
)

const Scheme = "gz"

// Provider layers gzip file systems on files of other providers.
type Provider struct {
	*provider.BaseProvider

	parser *name.LayeredParser
}

func NewProvider() *Provider {
	p := &Provider{
		parser: name.NewLayeredParser(nil),
	}
	p.BaseProvider = provider.NewBaseProvider(p.parser, p.createFileSystem,
		data.CapabilityGetType,
		data.CapabilityListChildren,
		data.CapabilityReadContent,
		data.CapabilityCompress,
	)

	return p
}

func (p *Provider) Init(cctx provider.ComponentContext) error {
	p.parser.Outer = cctx.ResolveURI
	return p.BaseProvider.Init(cctx)
}

func (p *Provider) FindFile(ctx context.Context, base provider.FileObject, uri string, opts *data.FileSystemOptions) (provider.FileObject, error) {
	var baseName *name.FileName
	if base != nil {
		baseName = base.Name()
	}

	n, err := p.parser.ParseURI(baseName, uri)
	if err != nil {
		return nil, err
	}

	return p.FindFileByName(ctx, n, opts)
}

// CreateFileSystem opens file as a gzip file system of scheme.
func (p *Provider) CreateFileSystem(ctx context.Context, scheme string, file provider.FileObject, opts *data.FileSystemOptions) (provider.FileObject, error) {
	root := name.NewFileName(name.NewLayeredRoot(scheme, file.Name()), name.RootPath, data.FileTypeFolder)

	fs, err := p.FileSystemFor(ctx, root, file, opts)
	if err != nil {
		return nil, err
	}
	return fs.Root(ctx)
}

func (p *Provider) createFileSystem(ctx context.Context, root *name.FileName, parentLayer provider.FileObject, opts *data.FileSystemOptions) (provider.FileSystem, error) {
	layered, ok := root.Root().(*name.LayeredRoot)
	if !ok || layered.Outer == nil {
		return nil, errors.InvalidLayeredURI(nil, root.URI())
	}

	cctx := p.Context()
	if parentLayer == nil {
		outer, err := cctx.ResolveFile(ctx, nil, layered.Outer.URI(), nil)
		if err != nil {
			return nil, err
		}
		parentLayer = outer
	}

	content, err := provider.OpenContent(ctx, parentLayer)
	if err != nil {
		return nil, errors.Backend(err, "open-content", parentLayer.Name().FriendlyURI())
	}
	defer content.Close()

	s, err := NewStore(content, parentLayer.Name().BaseName())
	if err != nil {
		return nil, errors.Backend(err, "open-gzip", parentLayer.Name().FriendlyURI())
	}

	fs := store.NewFileSystem(cctx, root, parentLayer, opts, s, data.CapabilityCompress)
	fs.Logger().Debug("opened gzip entry '%s' of '%s'", s.entry, parentLayer.Name().FriendlyURI())
	return fs, nil
}
