// Package sqlite provides the "sqlite" scheme: file systems persisted as
// rows of a SQLite table.
package sqlite

import (
	"context"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

const Scheme = "sqlite"

// NewProvider returns a provider opening the database named by the
// sqlite options of each file system.
func NewProvider() *store.Provider {
	builder := Builder{}
	return store.NewProvider(name.NewPrefixParser(), func(_ context.Context, _ *name.FileName, opts *data.FileSystemOptions) (store.Store, error) {
		return NewStore(store.Config[Config](opts, builder))
	}, builder)
}
