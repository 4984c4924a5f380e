package provider_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vfs "github.com/mwantia/vfsname"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/log"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
	"github.com/mwantia/vfsname/providers/memory"
	"github.com/mwantia/vfsname/providers/store"
)

func newManager(t *testing.T, opts ...vfs.ManagerOption) *vfs.Manager {
	t.Helper()

	m, err := vfs.NewManager(append([]vfs.ManagerOption{vfs.WithLogger(log.Discard())}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, m.AddProvider(memory.NewProvider(), memory.Scheme))
	require.NoError(t, m.Init())
	t.Cleanup(func() { m.Close() })

	return m
}

func memoryStore(t *testing.T, file provider.FileObject) *memory.Store {
	t.Helper()

	fs, ok := provider.Undecorate(file).FileSystem().(*store.FileSystem)
	require.True(t, ok)
	s, ok := fs.Store().(*memory.Store)
	require.True(t, ok)
	return s
}

// TestFileObject_CreateAndDelete verifies creation of missing parents,
// deletion and the non-empty folder guard.
func TestFileObject_CreateAndDelete(t *testing.T) {
	ctx := t.Context()
	m := newManager(t)

	file, err := m.ResolveFile(ctx, "ram:///a/b/file.txt")
	require.NoError(t, err)

	exists, err := file.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, file.CreateFile(ctx))
	typ, err := file.Type(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.FileTypeFile, typ)

	parent, err := file.Parent(ctx)
	require.NoError(t, err)
	typ, err = parent.Type(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.FileTypeFolder, typ)

	// Creating twice is a no-op, creating a folder over a file is not.
	assert.NoError(t, file.CreateFile(ctx))
	assert.ErrorIs(t, file.CreateFolder(ctx), data.ErrExist)

	_, err = parent.Delete(ctx)
	assert.ErrorIs(t, err, data.ErrNotEmpty)

	deleted, err := file.Delete(ctx)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = file.Delete(ctx)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = parent.Delete(ctx)
	require.NoError(t, err)
	assert.True(t, deleted)
}

// TestFileObject_Children verifies listing and the not-a-folder error.
func TestFileObject_Children(t *testing.T) {
	ctx := t.Context()
	m := newManager(t)

	for _, uri := range []string{"ram:///dir/b.txt", "ram:///dir/a.txt", "ram:///dir/sub/c.txt"} {
		file, err := m.ResolveFile(ctx, uri)
		require.NoError(t, err)
		require.NoError(t, file.CreateFile(ctx))
	}

	dir, err := m.ResolveFile(ctx, "ram:///dir")
	require.NoError(t, err)

	children, err := dir.Children(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name().BaseName())
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names)

	_, err = children[0].Children(ctx)
	assert.ErrorIs(t, err, errors.ErrNotFolder)

	child, err := dir.Child(ctx, "sub")
	require.NoError(t, err)
	assert.Same(t, children[2], child)

	root, err := m.ResolveFile(ctx, "ram:///")
	require.NoError(t, err)
	parent, err := root.Parent(ctx)
	require.NoError(t, err)
	assert.Nil(t, parent)
}

// TestFileObject_ResolveScope verifies scope checks on relative names.
func TestFileObject_ResolveScope(t *testing.T) {
	ctx := t.Context()
	m := newManager(t)

	dir, err := m.ResolveFile(ctx, "ram:///dir")
	require.NoError(t, err)

	_, err = dir.ResolveFile(ctx, "a/b", data.ScopeChild)
	assert.ErrorIs(t, err, errors.ErrInvalidDescendentName)

	_, err = dir.ResolveFile(ctx, "../other", data.ScopeDescendent)
	assert.ErrorIs(t, err, errors.ErrInvalidDescendentName)

	_, err = dir.ResolveFile(ctx, ".", data.ScopeDescendent)
	assert.ErrorIs(t, err, errors.ErrInvalidDescendentName)

	self, err := dir.ResolveFile(ctx, ".", data.ScopeDescendentOrSelf)
	require.NoError(t, err)
	assert.Same(t, dir, self)

	other, err := dir.ResolveFile(ctx, "../other", data.ScopeFileSystem)
	require.NoError(t, err)
	assert.Equal(t, "/other", other.Name().Path())
}

// TestFileObject_Refresh verifies that the type is cached until refreshed
// under the manual strategy.
func TestFileObject_Refresh(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, vfs.WithCacheStrategy(data.CacheManual))

	file, err := m.ResolveFile(ctx, "ram:///file.txt")
	require.NoError(t, err)

	exists, err := file.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.True(t, file.IsAttached())

	memoryStore(t, file).WriteContent("/file.txt", []byte("content"))

	exists, err = file.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, file.Refresh(ctx))
	assert.False(t, file.IsAttached())

	exists, err = file.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestOnCallRefresh verifies that the on-call strategy observes backend
// changes without an explicit refresh.
func TestOnCallRefresh(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, vfs.WithCacheStrategy(data.CacheOnCall))

	file, err := m.ResolveFile(ctx, "ram:///file.txt")
	require.NoError(t, err)
	assert.IsType(t, &provider.OnCallRefreshFileObject{}, file)

	exists, err := file.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	memoryStore(t, file).WriteContent("/file.txt", []byte("content"))

	exists, err = file.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestSynchronizedDecorator verifies that the decorator wraps every file
// object and keeps cache identity.
func TestSynchronizedDecorator(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, vfs.WithDecorator(provider.Synchronized))

	file, err := m.ResolveFile(ctx, "ram:///dir/file.txt")
	require.NoError(t, err)
	assert.IsType(t, &provider.SynchronizedFileObject{}, file)
	assert.IsType(t, &store.FileObject{}, provider.Undecorate(file))

	again, err := m.ResolveFile(ctx, "ram:///dir/file.txt")
	require.NoError(t, err)
	assert.Same(t, file, again)
	assert.Same(t, file, file.Ref().File())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, file.CreateFile(ctx))
		}()
	}
	wg.Wait()

	exists, err := file.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	parent, err := file.Parent(ctx)
	require.NoError(t, err)
	assert.IsType(t, &provider.SynchronizedFileObject{}, parent)
}

// TestFileSystem_Capabilities verifies the capabilities of a store backed
// file system.
func TestFileSystem_Capabilities(t *testing.T) {
	ctx := t.Context()
	m := newManager(t)

	file, err := m.ResolveFile(ctx, "ram:///")
	require.NoError(t, err)

	fs := file.FileSystem()
	assert.True(t, fs.HasCapability(data.CapabilityCreate))
	assert.True(t, fs.HasCapability(data.CapabilityReadContent))
	assert.False(t, fs.HasCapability(data.CapabilityJunctions))
	assert.True(t, fs.Capabilities().ContainsExtra("store:memory"))

	other := name.NewFileName(name.NewPrefixRoot("other", "other://"), "/x", data.FileTypeFile)
	_, err = fs.ResolveFile(ctx, other)
	assert.ErrorIs(t, err, errors.ErrMismatchedFileSystem)
}
