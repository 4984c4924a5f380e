package vfs

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/provider"
)

type operationRegistry struct {
	mu        sync.RWMutex
	providers map[string][]provider.OperationProvider
}

func newOperationRegistry() *operationRegistry {
	return &operationRegistry{
		providers: make(map[string][]provider.OperationProvider),
	}
}

func (r *operationRegistry) add(op provider.OperationProvider, schemes []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, scheme := range schemes {
		for _, existing := range r.providers[scheme] {
			if existing == op {
				return errors.OperationProviderExists(nil, scheme)
			}
		}
	}

	for _, scheme := range schemes {
		r.providers[scheme] = append(r.providers[scheme], op)
	}
	return nil
}

func (r *operationRegistry) get(scheme string) []provider.OperationProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := r.providers[scheme]
	if len(providers) == 0 {
		return nil
	}
	return append([]provider.OperationProvider(nil), providers...)
}

func (r *operationRegistry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.providers)
}

// AddOperationProvider registers op for schemes. Adding the same provider
// twice for a scheme fails and registers nothing.
func (m *Manager) AddOperationProvider(op provider.OperationProvider, schemes ...string) error {
	if op == nil || len(schemes) == 0 {
		return fmt.Errorf("%w: operation provider and at least one scheme are required", data.ErrInvalidArgument)
	}
	return m.operations.add(op, schemes)
}

// OperationProviders returns the operation providers of scheme.
func (m *Manager) OperationProviders(scheme string) []provider.OperationProvider {
	return m.operations.get(scheme)
}

// Operations collects the distinct operations every provider registered
// for the scheme of file offers on it.
func (m *Manager) Operations(ctx context.Context, file provider.FileObject) ([]string, error) {
	seen := make(map[string]struct{})
	for _, op := range m.operations.get(file.Name().Scheme()) {
		names, err := op.Operations(ctx, file)
		if err != nil {
			return nil, err
		}
		for _, operation := range names {
			seen[operation] = struct{}{}
		}
	}

	operations := make([]string, 0, len(seen))
	for operation := range seen {
		operations = append(operations, operation)
	}
	sort.Strings(operations)

	return operations, nil
}
