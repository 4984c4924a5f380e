package standard_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vfs "github.com/mwantia/vfsname"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/provider"
	"github.com/mwantia/vfsname/providers/gzip"
	"github.com/mwantia/vfsname/providers/memory"
	"github.com/mwantia/vfsname/standard"
)

func quiet() standard.Option {
	return standard.WithManagerOptions(vfs.WithLogger(log.Discard()))
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := standard.DefaultConfig()
	require.NoError(t, err)

	factories := make([]string, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		factories = append(factories, pc.Factory)
	}
	assert.ElementsMatch(t, []string{"file", "ram", "sqlite", "gz", "postgres", "consul", "s3"}, factories)
	assert.Len(t, cfg.ExtensionMap, 2)
	assert.Len(t, cfg.OperationProviders, 1)
}

func TestLoadConfig(t *testing.T) {
	tests := map[string]bool{
		`{"providers": [{"factory": "ram", "schemes": ["ram"]}]}`: true,
		`{"providers": [{"factory": "ram", "scheme": "ram"}]}`:    false,
		`{"providers": [`: false,
	}

	for doc, valid := range tests {
		cfg, err := standard.LoadConfig(strings.NewReader(doc), "test")
		if !valid {
			assert.ErrorIs(t, err, errors.ErrLoadConfig, doc)
			continue
		}
		require.NoError(t, err, doc)
		require.Len(t, cfg.Providers, 1)
		assert.Equal(t, []string{"ram"}, cfg.Providers[0].Schemes)
	}

	_, err := standard.LoadConfigFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, errors.ErrLoadConfig)
}

func TestNewManager(t *testing.T) {
	ctx := t.Context()

	m, err := standard.NewManager(quiet())
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	for _, scheme := range []string{"file", "ram", "sqlite", "gz", "postgres", "consul", "s3"} {
		assert.True(t, m.HasProvider(scheme), scheme)
	}

	file, err := m.ResolveFile(ctx, "ram:///archive.gz")
	require.NoError(t, err)
	require.NoError(t, file.CreateFile(ctx))

	ok, err := m.CanCreateFileSystem(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	operations, err := m.Operations(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, []string{gzip.OperationDecompress}, operations)
}

func TestNewManager_SkipsUnavailable(t *testing.T) {
	cfg := &standard.Config{
		Providers: []standard.ProviderConfig{
			{Factory: "ram", Schemes: []string{"ram"}},
			{
				Factory:     "ram",
				Schemes:     []string{"mem"},
				IfAvailable: &standard.Requirements{Schemes: []string{"missing"}},
			},
			{
				Factory:     "unknown",
				Schemes:     []string{"unknown"},
				IfAvailable: &standard.Requirements{Factories: []string{"unknown"}},
			},
		},
		OperationProviders: []standard.OperationConfig{
			{
				Factory:     "gz",
				Schemes:     []string{"ram"},
				IfAvailable: &standard.Requirements{Schemes: []string{"gz"}},
			},
		},
	}

	m, err := standard.NewManager(quiet(), standard.WithoutDefaultConfig(), standard.WithConfig(cfg))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	assert.Equal(t, []string{"ram"}, m.Schemes())
	assert.Empty(t, m.OperationProviders("ram"))
}

func TestNewManager_Errors(t *testing.T) {
	cfg := &standard.Config{
		Providers: []standard.ProviderConfig{
			{Factory: "unknown", Schemes: []string{"x"}},
		},
	}

	_, err := standard.NewManager(quiet(), standard.WithoutDefaultConfig(), standard.WithConfig(cfg))
	assert.ErrorIs(t, err, errors.ErrCreateProvider)

	// The default config already binds "ram".
	dup := &standard.Config{
		Providers: []standard.ProviderConfig{
			{Factory: "ram", Schemes: []string{"ram"}},
		},
	}
	_, err = standard.NewManager(quiet(), standard.WithConfig(dup))
	assert.ErrorIs(t, err, errors.ErrMultipleProviders)

	_, err = standard.NewManager(quiet(), standard.WithConfig(nil))
	assert.Error(t, err)
}

func TestNewManager_FactoriesAndFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vfs.json")
	doc := `{
		"providers": [{"factory": "custom", "schemes": ["custom"]}],
		"default_provider": {"factory": "custom", "schemes": []}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	created := 0
	m, err := standard.NewManager(quiet(),
		standard.WithoutDefaultConfig(),
		standard.WithConfigFile(path),
		standard.WithFactory("custom", func() (provider.Provider, error) {
			created++
			return memory.NewProvider(), nil
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	assert.Equal(t, 2, created)
	assert.True(t, m.HasProvider("custom"))

	file, err := m.ResolveFile(t.Context(), "other:///a")
	require.NoError(t, err)
	assert.Equal(t, "other", file.Name().Scheme())
}

func TestDefault(t *testing.T) {
	t.Cleanup(func() { standard.Close() })

	m, err := standard.NewManager(quiet(), standard.WithoutDefaultConfig())
	require.NoError(t, err)

	standard.SetDefault(m)
	got, err := standard.Default()
	require.NoError(t, err)
	assert.Same(t, m, got)

	require.NoError(t, standard.Close())
	require.NoError(t, standard.Close())

	// A closed manager hands out files that never exist.
	file, err := m.ResolveFile(t.Context(), "ram:///a")
	require.NoError(t, err)
	exists, err := file.Exists(t.Context())
	require.NoError(t, err)
	assert.False(t, exists)
}
