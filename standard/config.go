package standard

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/mwantia/vfsname/data/errors"
)

// Config declares the providers and mappings a manager is set up with.
type Config struct {
	Providers          []ProviderConfig  `json:"providers"`
	DefaultProvider    *ProviderConfig   `json:"default_provider,omitempty"`
	ExtensionMap       []ExtensionMap    `json:"extension_map"`
	MimeTypeMap        []MimeTypeMap     `json:"mime_type_map"`
	OperationProviders []OperationConfig `json:"operation_providers"`
}

// ProviderConfig registers the provider built by Factory for Schemes.
type ProviderConfig struct {
	Factory     string        `json:"factory"`
	Schemes     []string      `json:"schemes"`
	IfAvailable *Requirements `json:"if_available,omitempty"`
}

// Requirements skip an entry unless every scheme is registered and every
// factory is known.
type Requirements struct {
	Schemes   []string `json:"schemes"`
	Factories []string `json:"factories"`
}

type ExtensionMap struct {
	Extension string `json:"extension"`
	Scheme    string `json:"scheme"`
}

type MimeTypeMap struct {
	MimeType string `json:"mime_type"`
	Scheme   string `json:"scheme"`
}

// OperationConfig registers the operation provider built by Factory.
type OperationConfig struct {
	Factory     string        `json:"factory"`
	Schemes     []string      `json:"schemes"`
	IfAvailable *Requirements `json:"if_available,omitempty"`
}

// LoadConfig decodes a config document. source names r in errors.
func LoadConfig(r io.Reader, source string) (*Config, error) {
	cfg := &Config{}

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.LoadConfig(err, source)
	}
	return cfg, nil
}

// LoadConfigFile decodes the config document at path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.LoadConfig(err, path)
	}
	defer f.Close()

	return LoadConfig(f, path)
}
