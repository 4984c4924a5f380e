package vfs

import (
	"fmt"
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/provider"
)

// fileSystemLister is implemented by providers that can enumerate their
// open file systems.
type fileSystemLister interface {
	FileSystems() []provider.FileSystem
}

// AddProvider registers p for every scheme in schemes. Nothing is
// registered if any scheme is already taken. A provider that is also a
// LocalProvider becomes the local provider unless one is set.
func (m *Manager) AddProvider(p provider.Provider, schemes ...string) error {
	if p == nil || len(schemes) == 0 {
		return fmt.Errorf("%w: provider and at least one scheme are required", data.ErrInvalidArgument)
	}

	m.mu.RLock()
	if m.state == stateClosed {
		m.mu.RUnlock()
		return fmt.Errorf("%w: manager", data.ErrClosed)
	}
	if err := m.checkSchemesFree(schemes); err != nil {
		m.mu.RUnlock()
		return err
	}
	known := m.isRegistered(p)
	m.mu.RUnlock()

	if !known {
		if err := p.Init(m.cctx); err != nil {
			return errors.CreateProvider(err, strings.Join(schemes, ","))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkSchemesFree(schemes); err != nil {
		return err
	}
	for _, scheme := range schemes {
		m.providers.Set(scheme, p)
	}

	if local, ok := p.(provider.LocalProvider); ok && m.localProvider == nil {
		m.localProvider = local
	}

	m.log.Debug("added provider '%T' for schemes %v", p, schemes)
	return nil
}

func (m *Manager) checkSchemesFree(schemes []string) error {
	for _, scheme := range schemes {
		if _, exists := m.providers.Get(scheme); exists {
			return errors.MultipleProviders(nil, scheme)
		}
	}
	return nil
}

// isBound reports whether p serves at least one scheme.
func (m *Manager) isBound(p provider.Provider) bool {
	found := false
	m.providers.Scan(func(_ string, candidate provider.Provider) bool {
		found = candidate == p
		return !found
	})
	return found
}

func (m *Manager) isRegistered(p provider.Provider) bool {
	return m.isBound(p) || p == m.defaultProvider || provider.Provider(m.localProvider) == p
}

// RemoveProvider unbinds scheme. The provider is closed once no other
// scheme is bound to it; it then stops serving as the local or default
// provider as well.
func (m *Manager) RemoveProvider(scheme string) error {
	m.mu.Lock()
	p, ok := m.providers.Delete(scheme)
	if !ok {
		m.mu.Unlock()
		return nil
	}

	if m.isBound(p) {
		m.mu.Unlock()
		m.log.Debug("removed scheme '%s', provider '%T' still bound", scheme, p)
		return nil
	}

	if provider.Provider(m.localProvider) == p {
		m.localProvider = nil
	}
	if m.defaultProvider == p {
		m.defaultProvider = nil
	}
	filesCache := m.filesCache
	m.mu.Unlock()

	if lister, ok := p.(fileSystemLister); ok && filesCache != nil {
		for _, fs := range lister.FileSystems() {
			filesCache.Clear(fs)
		}
	}

	m.log.Debug("removed scheme '%s', closing provider '%T'", scheme, p)
	return p.Close()
}

// HasProvider reports whether a provider is bound to scheme.
func (m *Manager) HasProvider(scheme string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.providers.Get(scheme)
	return ok
}

// Schemes returns the registered schemes in sorted order.
func (m *Manager) Schemes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.schemes()
}

func (m *Manager) schemes() []string {
	schemes := make([]string, 0, m.providers.Len())
	m.providers.Scan(func(scheme string, _ provider.Provider) bool {
		schemes = append(schemes, scheme)
		return true
	})
	return schemes
}

func (m *Manager) providerFor(scheme string) provider.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, _ := m.providers.Get(scheme)
	return p
}

// ProviderCapabilities returns the capabilities of the provider for scheme.
func (m *Manager) ProviderCapabilities(scheme string) (*data.Capabilities, error) {
	p := m.providerFor(scheme)
	if p == nil {
		return nil, errors.UnknownProvider(nil, scheme)
	}
	return p.Capabilities(), nil
}

// ConfigBuilder returns the option builder of the provider for scheme. It
// is nil for providers without typed options.
func (m *Manager) ConfigBuilder(scheme string) (data.ConfigBuilder, error) {
	p := m.providerFor(scheme)
	if p == nil {
		return nil, errors.UnknownProvider(nil, scheme)
	}
	return p.ConfigBuilder(), nil
}

// SetDefaultProvider sets the provider for URIs whose scheme has no
// provider of its own.
func (m *Manager) SetDefaultProvider(p provider.Provider) error {
	if err := m.setupProvider(p); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.defaultProvider = p
	return nil
}

// SetLocalProvider sets the provider for absolute local paths.
func (m *Manager) SetLocalProvider(p provider.LocalProvider) error {
	if err := m.setupProvider(p); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.localProvider = p
	return nil
}

func (m *Manager) setupProvider(p provider.Provider) error {
	if p == nil {
		return fmt.Errorf("%w: provider is nil", data.ErrInvalidArgument)
	}

	m.mu.RLock()
	closed := m.state == stateClosed
	known := m.isRegistered(p)
	m.mu.RUnlock()

	if closed {
		return fmt.Errorf("%w: manager", data.ErrClosed)
	}
	if known {
		return nil
	}
	if err := p.Init(m.cctx); err != nil {
		return errors.CreateProvider(err, fmt.Sprintf("%T", p))
	}
	return nil
}

func (m *Manager) defaultAndLocal() (provider.Provider, provider.LocalProvider) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.defaultProvider, m.localProvider
}
