package standard

import (
	"github.com/mwantia/vfsname/provider"
	"github.com/mwantia/vfsname/providers/consul"
	"github.com/mwantia/vfsname/providers/gzip"
	"github.com/mwantia/vfsname/providers/local"
	"github.com/mwantia/vfsname/providers/memory"
	"github.com/mwantia/vfsname/providers/postgres"
	"github.com/mwantia/vfsname/providers/s3"
	"github.com/mwantia/vfsname/providers/sqlite"
)

// ProviderFactory builds a new provider instance.
type ProviderFactory func() (provider.Provider, error)

// OperationFactory builds a new operation provider instance.
type OperationFactory func() (provider.OperationProvider, error)

// Factories returns the provider factories known by name.
func Factories() map[string]ProviderFactory {
	return map[string]ProviderFactory{
		local.Scheme: func() (provider.Provider, error) {
			return local.NewProvider(), nil
		},
		memory.Scheme: func() (provider.Provider, error) {
			return memory.NewProvider(), nil
		},
		sqlite.Scheme: func() (provider.Provider, error) {
			return sqlite.NewProvider(), nil
		},
		postgres.Scheme: func() (provider.Provider, error) {
			return postgres.NewProvider(), nil
		},
		consul.Scheme: func() (provider.Provider, error) {
			return consul.NewProvider(), nil
		},
		s3.Scheme: func() (provider.Provider, error) {
			return s3.NewProvider(), nil
		},
		gzip.Scheme: func() (provider.Provider, error) {
			return gzip.NewProvider(), nil
		},
	}
}

// OperationFactories returns the operation provider factories known by
// name.
func OperationFactories() map[string]OperationFactory {
	return map[string]OperationFactory{
		gzip.Scheme: func() (provider.OperationProvider, error) {
			return gzip.Operations{}, nil
		},
	}
}
