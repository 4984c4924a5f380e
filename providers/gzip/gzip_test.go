package gzip_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vfs "github.com/mwantia/vfsname"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/provider"
	gz "github.com/mwantia/vfsname/providers/gzip"
	"github.com/mwantia/vfsname/providers/local"
	"github.com/mwantia/vfsname/providers/memory"
	"github.com/mwantia/vfsname/providers/store"
)

func compress(t *testing.T, entry string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Name = entry
	_, err := zw.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestEntryName(t *testing.T) {
	tests := []struct {
		header, outer, want string
	}{
		{"", "data.txt.gz", "data.txt"},
		{"", "archive.tgz", "archive.tar"},
		{"", "notes.GZIP", "notes"},
		{"", "plain", "plain"},
		{"", ".gz", ".gz"},
		{"inner.txt", "data.gz", "inner.txt"},
		{"dir/inner.txt", "data.gz", "inner.txt"},
		{`dir\inner.txt`, "data.gz", "inner.txt"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, gz.EntryName(test.header, test.outer), "%q %q", test.header, test.outer)
	}
}

func TestStore(t *testing.T) {
	ctx := t.Context()
	content := []byte("hello gzip")

	s, err := gz.NewStore(bytes.NewReader(compress(t, "", content)), "hello.txt.gz")
	require.NoError(t, err)
	assert.True(t, s.ReadOnly())

	children, err := s.List(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello.txt"}, children)

	got, err := s.ReadContent(ctx, "/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	assert.ErrorIs(t, s.Create(ctx, store.NewEntry("/x", data.FileTypeFile)), data.ErrNotSupported)
	assert.ErrorIs(t, s.Delete(ctx, "/hello.txt"), data.ErrNotSupported)

	_, err = gz.NewStore(bytes.NewReader([]byte("not gzip")), "broken.gz")
	assert.Error(t, err)
}

func TestProvider_LocalFile(t *testing.T) {
	ctx := t.Context()
	content := []byte("from disk")

	dir := t.TempDir()
	path := filepath.Join(dir, "disk.txt.gz")
	require.NoError(t, os.WriteFile(path, compress(t, "", content), 0o644))

	m, err := vfs.NewManager(vfs.WithLogger(log.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	require.NoError(t, m.AddProvider(local.NewProvider(), local.Scheme))
	require.NoError(t, m.AddProvider(gz.NewProvider(), gz.Scheme))
	require.NoError(t, m.Init())

	outer, err := m.ResolveFile(ctx, path)
	require.NoError(t, err)

	root, err := m.ResolveFile(ctx, "gz:"+outer.Name().URI()+"!/")
	require.NoError(t, err)
	assert.Equal(t, data.FileTypeFolder, root.Name().Type())

	caps := root.FileSystem().Capabilities()
	assert.True(t, caps.Contains(data.CapabilityReadContent))
	assert.False(t, caps.Contains(data.CapabilityCreate))
	assert.False(t, caps.Contains(data.CapabilityDelete))

	entry, err := root.Child(ctx, "disk.txt")
	require.NoError(t, err)
	exists, err := entry.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := provider.OpenContent(ctx, entry)
	require.NoError(t, err)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// The layer is read-only.
	created, err := root.ResolveFile(ctx, "new.txt", data.ScopeChild)
	require.NoError(t, err)
	assert.ErrorIs(t, created.CreateFile(ctx), errors.ErrNotSupported)
}

func TestProvider_MissingOuter(t *testing.T) {
	ctx := t.Context()

	m, err := vfs.NewManager(vfs.WithLogger(log.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	require.NoError(t, m.AddProvider(memory.NewProvider(), memory.Scheme))
	require.NoError(t, m.AddProvider(gz.NewProvider(), gz.Scheme))
	require.NoError(t, m.Init())

	_, err = m.ResolveFile(ctx, "gz:ram:///missing.gz!/")
	assert.Error(t, err)

	_, err = m.ResolveFile(ctx, "gz:!/")
	assert.Error(t, err)
}

func TestOperations(t *testing.T) {
	ctx := t.Context()

	m, err := vfs.NewManager(vfs.WithLogger(log.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	require.NoError(t, m.AddProvider(memory.NewProvider(), memory.Scheme))
	require.NoError(t, m.Init())

	tests := map[string][]string{
		"ram:///a.gz":   {gz.OperationDecompress},
		"ram:///a.GZIP": {gz.OperationDecompress},
		"ram:///a.tgz":  {gz.OperationDecompress},
		"ram:///a.zip":  nil,
	}

	for uri, want := range tests {
		file, err := m.ResolveFile(ctx, uri)
		require.NoError(t, err)
		require.NoError(t, file.CreateFile(ctx))

		got, err := gz.Operations{}.Operations(ctx, file)
		require.NoError(t, err)
		assert.Equal(t, want, got, uri)
	}

	folder, err := m.ResolveFile(ctx, "ram:///folder.gz")
	require.NoError(t, err)
	require.NoError(t, folder.CreateFolder(ctx))

	got, err := gz.Operations{}.Operations(ctx, folder)
	require.NoError(t, err)
	assert.Empty(t, got)
}
