// Package vfs resolves names and URIs into shared file objects served by
// pluggable scheme providers.
package vfs

import (
	"fmt"
	"sync"

	"github.com/mwantia/vfsname/cache"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/provider"
	"github.com/mwantia/vfsname/virtual"
	"github.com/tidwall/btree"
)

type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
	stateClosed
)

func (s managerState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateInitialized:
		return "initialized"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Manager is the entry point for resolving files. It owns the scheme
// registry, the files cache and the lifecycle of every provider added to
// it. A Manager must be initialised with Init before files are resolved.
type Manager struct {
	mu    sync.RWMutex
	state managerState
	log   *log.Logger
	cctx  *componentContext

	providers       *btree.Map[string, provider.Provider]
	defaultProvider provider.Provider
	localProvider   provider.LocalProvider
	virtualProvider *virtual.Provider
	baseFile        provider.FileObject
	types           *typeMap
	operations      *operationRegistry

	filesCache provider.FilesCache
	strategy   data.CacheStrategy
	decorator  provider.Decorator
	uriStyle   bool
	metrics    *cache.Metrics
}

func NewManager(opts ...ManagerOption) (*Manager, error) {
	options := newDefaultManagerOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger("vfs", options.LogLevel, options.LogFile, options.NoTerminalLog)
	}

	m := &Manager{
		log:        logger,
		providers:  btree.NewMap[string, provider.Provider](0),
		types:      newTypeMap(),
		operations: newOperationRegistry(),
		filesCache: options.FilesCache,
		strategy:   options.CacheStrategy,
		decorator:  options.Decorator,
		uriStyle:   options.URIStyle,
	}
	m.cctx = &componentContext{m: m}

	if options.Registerer != nil {
		metrics, err := cache.NewMetrics(options.Registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register cache metrics: %w", err)
		}
		m.metrics = metrics
	}

	return m, nil
}

// Init installs defaults for everything not configured and makes the
// manager ready for resolution: the soft files cache, the on-resolve
// cache strategy and the virtual provider.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case stateInitialized:
		return errors.AlreadyInited(nil, "init")
	case stateClosed:
		return fmt.Errorf("%w: manager", data.ErrClosed)
	}

	if m.filesCache == nil {
		m.filesCache = cache.NewSoftCache()
	}
	if m.metrics != nil {
		m.filesCache = cache.Instrument(m.filesCache, fmt.Sprintf("%T", m.filesCache), m.metrics)
	}

	m.virtualProvider = virtual.NewProvider()
	if err := m.virtualProvider.Init(m.cctx); err != nil {
		return errors.CreateProvider(err, "virtual")
	}

	m.state = stateInitialized
	m.log.Debug("initialized manager with cache '%T' and strategy '%s'", m.filesCache, m.strategy)
	return nil
}

// Close shuts down every provider exactly once and clears the cache. A
// closed manager answers ResolveFile with files that do not exist.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.state == stateClosed {
		m.mu.Unlock()
		return nil
	}

	closing := make([]provider.Provider, 0, m.providers.Len()+3)
	if m.virtualProvider != nil {
		closing = append(closing, m.virtualProvider)
	}
	m.providers.Scan(func(_ string, p provider.Provider) bool {
		closing = append(closing, p)
		return true
	})
	if m.defaultProvider != nil {
		closing = append(closing, m.defaultProvider)
	}
	if m.localProvider != nil {
		closing = append(closing, m.localProvider)
	}

	filesCache := m.filesCache

	m.providers.Clear()
	m.defaultProvider = nil
	m.localProvider = nil
	m.virtualProvider = nil
	m.baseFile = nil
	m.types.clear()
	m.operations.clear()
	m.state = stateClosed
	m.mu.Unlock()

	errs := &data.Errors{}
	closed := make(map[provider.Provider]struct{}, len(closing))
	for _, p := range closing {
		if _, done := closed[p]; done {
			continue
		}
		closed[p] = struct{}{}

		if err := p.Close(); err != nil {
			m.log.Warn("failed to close provider '%T': %v", p, err)
			errs.Add(err)
		}
	}

	if filesCache != nil {
		filesCache.Close()
	}

	m.log.Debug("closed manager")
	return errs.Errors()
}

// Logger returns the root logger of the manager.
func (m *Manager) Logger() *log.Logger {
	return m.log
}

func (m *Manager) checkConfigurable(setting string) error {
	switch m.state {
	case stateInitialized:
		return errors.AlreadyInited(nil, setting)
	case stateClosed:
		return fmt.Errorf("%w: manager", data.ErrClosed)
	}
	return nil
}

func (m *Manager) checkInitialized() error {
	switch m.state {
	case stateUninitialized:
		return errors.NotInited(nil)
	case stateClosed:
		return fmt.Errorf("%w: manager", data.ErrClosed)
	}
	return nil
}

// SetFilesCache replaces the files cache. Only legal before Init.
func (m *Manager) SetFilesCache(filesCache provider.FilesCache) error {
	if filesCache == nil {
		return fmt.Errorf("%w: files cache is nil", data.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkConfigurable("files-cache"); err != nil {
		return err
	}
	m.filesCache = filesCache
	return nil
}

// FilesCache returns the files cache, or nil before Init.
func (m *Manager) FilesCache() provider.FilesCache {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filesCache
}

// SetCacheStrategy changes when cached files are refreshed. Only legal
// before Init.
func (m *Manager) SetCacheStrategy(strategy data.CacheStrategy) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkConfigurable("cache-strategy"); err != nil {
		return err
	}
	m.strategy = strategy
	return nil
}

func (m *Manager) CacheStrategy() data.CacheStrategy {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.strategy
}

// SetDecorator installs a wrapper for every file object. Only legal
// before Init.
func (m *Manager) SetDecorator(decorator provider.Decorator) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkConfigurable("decorator"); err != nil {
		return err
	}
	m.decorator = decorator
	return nil
}

func (m *Manager) Decorator() provider.Decorator {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.decorator
}

// SetBaseFile sets the file relative names are resolved against when no
// base is passed.
func (m *Manager) SetBaseFile(file provider.FileObject) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baseFile = file
}

func (m *Manager) BaseFile() provider.FileObject {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.baseFile
}
