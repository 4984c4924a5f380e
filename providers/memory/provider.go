// Package memory provides the "ram" scheme: volatile file systems kept in
// process memory.
package memory

import (
	"context"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

const Scheme = "ram"

// NewProvider returns a provider creating an empty store for every file
// system root.
func NewProvider() *store.Provider {
	return store.NewProvider(name.NewPrefixParser(), func(_ context.Context, _ *name.FileName, _ *data.FileSystemOptions) (store.Store, error) {
		return NewStore(), nil
	}, nil)
}
