// Package postgres provides the "postgres" scheme: file systems persisted
// as rows of a PostgreSQL table.
package postgres

import (
	"context"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

const (
	Scheme      = "postgres"
	DefaultPort = 5432
)

// NewProvider returns a provider connecting to the server named by the
// root of each file system.
func NewProvider() *store.Provider {
	builder := Builder{}
	return store.NewProvider(name.NewHostParser(DefaultPort), func(ctx context.Context, root *name.FileName, opts *data.FileSystemOptions) (store.Store, error) {
		cfg := store.Config[Config](opts, builder)
		return NewStore(ctx, cfg.connString(root.Root()), cfg.Table)
	}, builder)
}
