package store

import (
	"context"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// Opener creates the store for a file system root.
type Opener func(ctx context.Context, root *name.FileName, opts *data.FileSystemOptions) (Store, error)

// Provider creates one store backed file system per root and option set.
type Provider struct {
	*provider.BaseProvider

	builder data.ConfigBuilder
}

// NewProvider returns a provider parsing names with parser and opening a
// store per file system. builder may be nil.
func NewProvider(parser name.Parser, open Opener, builder data.ConfigBuilder, caps ...data.Capability) *Provider {
	p := &Provider{builder: builder}
	p.BaseProvider = provider.NewBaseProvider(parser, func(ctx context.Context, root *name.FileName, parentLayer provider.FileObject, opts *data.FileSystemOptions) (provider.FileSystem, error) {
		store, err := open(ctx, root, opts)
		if err != nil {
			return nil, err
		}
		if err := store.Open(ctx); err != nil {
			return nil, err
		}

		fs := NewFileSystem(p.Context(), root, parentLayer, opts, store, caps...)
		fs.Logger().Debug("opened %s store for '%s'", store.Name(), root.FriendlyURI())
		return fs, nil
	}, append([]data.Capability{
		data.CapabilityGetType,
		data.CapabilityListChildren,
		data.CapabilityCreate,
		data.CapabilityDelete,
	}, caps...)...)

	return p
}

func (p *Provider) ConfigBuilder() data.ConfigBuilder {
	return p.builder
}

// Config returns the typed options of namespace in opts, falling back to
// the default of the builder.
func Config[T any](opts *data.FileSystemOptions, builder data.ConfigBuilder) T {
	if cfg, ok := data.GetConfig[T](opts, builder.Namespace()); ok {
		return cfg
	}
	if cfg, ok := builder.DefaultConfig().(T); ok {
		return cfg
	}

	var zero T
	return zero
}
