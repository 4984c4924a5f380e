package vfs

import (
	"fmt"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/provider"
	"github.com/prometheus/client_golang/prometheus"
)

type ManagerOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	Logger        *log.Logger

	FilesCache    provider.FilesCache
	CacheStrategy data.CacheStrategy
	Decorator     provider.Decorator
	URIStyle      bool

	Registerer prometheus.Registerer
}

type ManagerOption func(*ManagerOptions) error

func newDefaultManagerOptions() *ManagerOptions {
	return &ManagerOptions{
		LogLevel:      log.Info,
		CacheStrategy: data.CacheOnResolve,
	}
}

func WithLogLevel(logLevel log.LogLevel) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithoutTerminalLog() ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

// WithLogger replaces the logger built from the log options.
func WithLogger(logger *log.Logger) ManagerOption {
	return func(opts *ManagerOptions) error {
		if logger == nil {
			return fmt.Errorf("%w: logger is nil", data.ErrInvalidArgument)
		}
		opts.Logger = logger
		return nil
	}
}

// WithFilesCache sets the cache installed on Init instead of the soft cache.
func WithFilesCache(cache provider.FilesCache) ManagerOption {
	return func(opts *ManagerOptions) error {
		if cache == nil {
			return fmt.Errorf("%w: files cache is nil", data.ErrInvalidArgument)
		}
		opts.FilesCache = cache
		return nil
	}
}

func WithCacheStrategy(strategy data.CacheStrategy) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.CacheStrategy = strategy
		return nil
	}
}

// WithDecorator wraps every file object the manager hands out.
func WithDecorator(decorator provider.Decorator) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.Decorator = decorator
		return nil
	}
}

// WithURIStyle resolves relative names against the parent of a file base,
// as URIs do.
func WithURIStyle() ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.URIStyle = true
		return nil
	}
}

// WithMetrics counts files cache operations in reg.
func WithMetrics(reg prometheus.Registerer) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.Registerer = reg
		return nil
	}
}
