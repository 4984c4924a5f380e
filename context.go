package vfs

import (
	"context"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
)

// componentContext is the view of a Manager handed to providers.
type componentContext struct {
	m *Manager
}

var _ provider.ComponentContext = (*componentContext)(nil)

func (c *componentContext) ResolveName(base *name.FileName, path string, scope data.NameScope) (*name.FileName, error) {
	return c.m.ResolveName(base, path, scope)
}

func (c *componentContext) ResolveURI(uri string) (*name.FileName, error) {
	return c.m.ResolveURI(uri)
}

func (c *componentContext) ResolveFile(ctx context.Context, base provider.FileObject, uri string, opts *data.FileSystemOptions) (provider.FileObject, error) {
	return c.m.ResolveFileWithOptions(ctx, base, uri, opts)
}

func (c *componentContext) FilesCache() provider.FilesCache {
	return c.m.FilesCache()
}

func (c *componentContext) CacheStrategy() data.CacheStrategy {
	return c.m.CacheStrategy()
}

func (c *componentContext) Decorator() provider.Decorator {
	return c.m.Decorator()
}

func (c *componentContext) Logger() *log.Logger {
	return c.m.log
}
