package standard

import (
	"fmt"

	vfs "github.com/mwantia/vfsname"
	"github.com/mwantia/vfsname/data/errors"
)

// Loader applies configs using its factory tables.
type Loader struct {
	Factories          map[string]ProviderFactory
	OperationFactories map[string]OperationFactory
}

// Apply registers everything cfg declares with m. Entries whose
// requirements are not met are skipped.
func (l *Loader) Apply(m *vfs.Manager, cfg *Config) error {
	for _, pc := range cfg.Providers {
		if !l.available(m, pc.IfAvailable) {
			m.Logger().Debug("skipping provider '%s' for schemes %v", pc.Factory, pc.Schemes)
			continue
		}

		factory, ok := l.Factories[pc.Factory]
		if !ok {
			return errors.CreateProvider(fmt.Errorf("unknown factory"), pc.Factory)
		}
		p, err := factory()
		if err != nil {
			return errors.CreateProvider(err, pc.Factory)
		}
		if err := m.AddProvider(p, pc.Schemes...); err != nil {
			return err
		}
	}

	if pc := cfg.DefaultProvider; pc != nil && l.available(m, pc.IfAvailable) {
		factory, ok := l.Factories[pc.Factory]
		if !ok {
			return errors.CreateProvider(fmt.Errorf("unknown factory"), pc.Factory)
		}
		p, err := factory()
		if err != nil {
			return errors.CreateProvider(err, pc.Factory)
		}
		if err := m.SetDefaultProvider(p); err != nil {
			return err
		}
	}

	for _, mapping := range cfg.ExtensionMap {
		m.AddExtensionMap(mapping.Extension, mapping.Scheme)
	}
	for _, mapping := range cfg.MimeTypeMap {
		m.AddMimeTypeMap(mapping.MimeType, mapping.Scheme)
	}

	for _, oc := range cfg.OperationProviders {
		if !l.available(m, oc.IfAvailable) {
			m.Logger().Debug("skipping operation provider '%s' for schemes %v", oc.Factory, oc.Schemes)
			continue
		}

		factory, ok := l.OperationFactories[oc.Factory]
		if !ok {
			return errors.CreateProvider(fmt.Errorf("unknown operation factory"), oc.Factory)
		}
		op, err := factory()
		if err != nil {
			return errors.CreateProvider(err, oc.Factory)
		}
		if err := m.AddOperationProvider(op, oc.Schemes...); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loader) available(m *vfs.Manager, req *Requirements) bool {
	if req == nil {
		return true
	}
	for _, scheme := range req.Schemes {
		if !m.HasProvider(scheme) {
			return false
		}
	}
	for _, name := range req.Factories {
		if _, ok := l.Factories[name]; !ok {
			return false
		}
	}
	return true
}
