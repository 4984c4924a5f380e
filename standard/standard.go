// Package standard builds managers from declarative provider configs and
// holds the process wide default manager.
package standard

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	vfs "github.com/mwantia/vfsname"
	"github.com/mwantia/vfsname/data/errors"
)

//go:embed providers.json
var defaultConfig []byte

// DefaultConfig returns the embedded config registering the bundled
// providers and the gzip mappings.
func DefaultConfig() (*Config, error) {
	return LoadConfig(bytes.NewReader(defaultConfig), "providers.json")
}

type options struct {
	noDefault          bool
	configs            []*Config
	configFiles        []string
	factories          map[string]ProviderFactory
	operationFactories map[string]OperationFactory
	managerOptions     []vfs.ManagerOption
}

type Option func(*options) error

// WithConfig applies cfg after the default config.
func WithConfig(cfg *Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}
		o.configs = append(o.configs, cfg)
		return nil
	}
}

// WithConfigFile applies the config document at path after the default
// config.
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configFiles = append(o.configFiles, path)
		return nil
	}
}

// WithoutDefaultConfig skips the embedded config.
func WithoutDefaultConfig() Option {
	return func(o *options) error {
		o.noDefault = true
		return nil
	}
}

// WithFactory adds or replaces the provider factory called name.
func WithFactory(name string, factory ProviderFactory) Option {
	return func(o *options) error {
		if factory == nil {
			return fmt.Errorf("factory '%s' is nil", name)
		}
		o.factories[name] = factory
		return nil
	}
}

// WithOperationFactory adds or replaces the operation factory called name.
func WithOperationFactory(name string, factory OperationFactory) Option {
	return func(o *options) error {
		if factory == nil {
			return fmt.Errorf("operation factory '%s' is nil", name)
		}
		o.operationFactories[name] = factory
		return nil
	}
}

// WithManagerOptions passes opts to the created manager.
func WithManagerOptions(opts ...vfs.ManagerOption) Option {
	return func(o *options) error {
		o.managerOptions = append(o.managerOptions, opts...)
		return nil
	}
}

// NewManager creates a manager, applies the default config and every
// extra config, then initialises it.
func NewManager(opts ...Option) (*vfs.Manager, error) {
	options := &options{
		factories:          Factories(),
		operationFactories: OperationFactories(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	configs := make([]*Config, 0, len(options.configs)+len(options.configFiles)+1)
	if !options.noDefault {
		cfg, err := DefaultConfig()
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	configs = append(configs, options.configs...)
	for _, path := range options.configFiles {
		cfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	m, err := vfs.NewManager(options.managerOptions...)
	if err != nil {
		return nil, err
	}

	loader := &Loader{
		Factories:          options.factories,
		OperationFactories: options.operationFactories,
	}
	for _, cfg := range configs {
		if err := loader.Apply(m, cfg); err != nil {
			return nil, closeOnError(m, err)
		}
	}

	if err := m.Init(); err != nil {
		return nil, closeOnError(m, err)
	}
	return m, nil
}

func closeOnError(m *vfs.Manager, err error) error {
	if cerr := m.Close(); cerr != nil {
		m.Logger().Warn("failed to close manager: %v", cerr)
	}
	return err
}

var (
	defaultMu      sync.Mutex
	defaultManager *vfs.Manager
)

// Default returns the process wide manager, creating it from the default
// config on first use.
func Default() (*vfs.Manager, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager == nil {
		m, err := NewManager()
		if err != nil {
			return nil, errors.CreateProvider(err, "default")
		}
		defaultManager = m
	}
	return defaultManager, nil
}

// SetDefault replaces the process wide manager. The previous manager is
// not closed.
func SetDefault(m *vfs.Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultManager = m
}

// Close closes and forgets the process wide manager.
func Close() error {
	defaultMu.Lock()
	m := defaultManager
	defaultManager = nil
	defaultMu.Unlock()

	if m == nil {
		return nil
	}
	return m.Close()
}
