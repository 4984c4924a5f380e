package data

import (
	"maps"
	"reflect"
	"slices"
)

// FileSystemOptions carries per-provider configuration into resolution.
// Each provider stores one typed config value under its own namespace.
// The core never looks inside the values; it only clones option sets and
// compares them by value to decide whether a file system can be reused.
type FileSystemOptions struct {
	configs map[string]any
}

// NewFileSystemOptions returns an empty option set.
func NewFileSystemOptions() *FileSystemOptions {
	return &FileSystemOptions{
		configs: make(map[string]any),
	}
}

// With returns a copy of the options with config stored under namespace.
// The receiver is left untouched so handed-out option sets stay stable.
func (o *FileSystemOptions) With(namespace string, config any) *FileSystemOptions {
	clone := o.Clone()
	clone.configs[namespace] = config
	return clone
}

// Without returns a copy of the options with namespace removed.
func (o *FileSystemOptions) Without(namespace string) *FileSystemOptions {
	clone := o.Clone()
	delete(clone.configs, namespace)
	return clone
}

// Config returns the raw value stored under namespace.
func (o *FileSystemOptions) Config(namespace string) (any, bool) {
	if o == nil {
		return nil, false
	}
	config, ok := o.configs[namespace]
	return config, ok
}

// Namespaces lists the namespaces holding a config, sorted.
func (o *FileSystemOptions) Namespaces() []string {
	if o == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(o.configs))
}

// Len returns the number of stored configs.
func (o *FileSystemOptions) Len() int {
	if o == nil {
		return 0
	}
	return len(o.configs)
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (o *FileSystemOptions) Clone() *FileSystemOptions {
	clone := NewFileSystemOptions()
	if o != nil {
		maps.Copy(clone.configs, o.configs)
	}
	return clone
}

// Equal compares two option sets by content. A nil set equals an empty one.
func (o *FileSystemOptions) Equal(other *FileSystemOptions) bool {
	if o == other {
		return true
	}
	if o.Len() != other.Len() {
		return false
	}
	for namespace, config := range o.configsOrEmpty() {
		theirs, ok := other.Config(namespace)
		if !ok || !reflect.DeepEqual(config, theirs) {
			return false
		}
	}
	return true
}

func (o *FileSystemOptions) configsOrEmpty() map[string]any {
	if o == nil {
		return nil
	}
	return o.configs
}

// ConfigBuilder is implemented by providers that accept typed options.
type ConfigBuilder interface {
	// Namespace returns the key the provider's config is stored under.
	Namespace() string
	// DefaultConfig returns the config used when none is set.
	DefaultConfig() any
}

// GetConfig returns the config of type T stored under namespace.
func GetConfig[T any](opts *FileSystemOptions, namespace string) (T, bool) {
	var zero T
	raw, ok := opts.Config(namespace)
	if !ok {
		return zero, false
	}
	config, ok := raw.(T)
	return config, ok
}
