package store_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/providers/consul"
	"github.com/mwantia/vfsname/providers/local"
	"github.com/mwantia/vfsname/providers/memory"
	"github.com/mwantia/vfsname/providers/postgres"
	"github.com/mwantia/vfsname/providers/s3"
	"github.com/mwantia/vfsname/providers/sqlite"
	"github.com/mwantia/vfsname/providers/store"
)

// TestStoreFactory creates a new store instance for testing.
type TestStoreFactory func(t *testing.T) (store.Store, error)

// GetTestStoreFactories returns every store implementation to test. Stores
// of external services only run when their environment is configured.
func GetTestStoreFactories() map[string]TestStoreFactory {
	return map[string]TestStoreFactory{
		"memory": func(t *testing.T) (store.Store, error) {
			return memory.NewStore(), nil
		},
		"sqlite": func(t *testing.T) (store.Store, error) {
			return sqlite.NewStore(sqlite.Config{Path: ":memory:", Table: "vfs_entries"})
		},
		"local": func(t *testing.T) (store.Store, error) {
			return local.NewStore(t.TempDir()), nil
		},
		"postgres": func(t *testing.T) (store.Store, error) {
			connString := os.Getenv("VFS_TEST_POSTGRES")
			if connString == "" {
				t.Skip("VFS_TEST_POSTGRES not set")
			}
			table := fmt.Sprintf("vfs_test_%d", time.Now().UnixNano())
			return postgres.NewStore(t.Context(), connString, table)
		},
		"consul": func(t *testing.T) (store.Store, error) {
			address := os.Getenv("VFS_TEST_CONSUL")
			if address == "" {
				t.Skip("VFS_TEST_CONSUL not set")
			}
			return consul.NewStore(address, consul.Config{
				Token:  os.Getenv("VFS_TEST_CONSUL_TOKEN"),
				Prefix: fmt.Sprintf("vfs-test/%d/", time.Now().UnixNano()),
			})
		},
		"s3": func(t *testing.T) (store.Store, error) {
			endpoint := os.Getenv("VFS_TEST_S3")
			if endpoint == "" {
				t.Skip("VFS_TEST_S3 not set")
			}
			return s3.NewStore(endpoint, s3.Config{
				Bucket:    os.Getenv("VFS_TEST_S3_BUCKET"),
				AccessKey: os.Getenv("VFS_TEST_S3_ACCESS_KEY"),
				SecretKey: os.Getenv("VFS_TEST_S3_SECRET_KEY"),
			})
		},
	}
}

func openStore(t *testing.T, factory TestStoreFactory) store.Store {
	t.Helper()

	s, err := factory(t)
	require.NoError(t, err)
	require.NoError(t, s.Open(t.Context()))
	t.Cleanup(func() { s.Close(t.Context()) })

	return s
}

// TestAllStores_Entries verifies create, stat, list and delete across all
// store implementations.
func TestAllStores_Entries(t *testing.T) {
	for name, factory := range GetTestStoreFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			s := openStore(tst, factory)

			_, err := s.Stat(ctx, "/a")
			require.ErrorIs(tst, err, data.ErrNotExist)

			require.NoError(tst, s.Create(ctx, store.NewEntry("/a", data.FileTypeFolder)))
			require.NoError(tst, s.Create(ctx, store.NewEntry("/a/b.txt", data.FileTypeFile)))
			require.NoError(tst, s.Create(ctx, store.NewEntry("/a/c", data.FileTypeFolder)))
			assert.ErrorIs(tst, s.Create(ctx, store.NewEntry("/a/b.txt", data.FileTypeFile)), data.ErrExist)

			entry, err := s.Stat(ctx, "/a")
			require.NoError(tst, err)
			assert.Equal(tst, data.FileTypeFolder, entry.Type)

			entry, err = s.Stat(ctx, "/a/b.txt")
			require.NoError(tst, err)
			assert.Equal(tst, data.FileTypeFile, entry.Type)
			assert.NotEmpty(tst, entry.ID)

			children, err := s.List(ctx, "/")
			require.NoError(tst, err)
			assert.Equal(tst, []string{"a"}, children)

			children, err = s.List(ctx, "/a")
			require.NoError(tst, err)
			assert.ElementsMatch(tst, []string{"b.txt", "c"}, children)

			require.NoError(tst, s.Delete(ctx, "/a/b.txt"))
			_, err = s.Stat(ctx, "/a/b.txt")
			assert.ErrorIs(tst, err, data.ErrNotExist)

			children, err = s.List(ctx, "/a")
			require.NoError(tst, err)
			assert.Equal(tst, []string{"c"}, children)
		})
	}
}

// TestAllStores_Content verifies that content readers return empty content
// for new files and fail for missing ones.
func TestAllStores_Content(t *testing.T) {
	for name, factory := range GetTestStoreFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			s := openStore(tst, factory)

			reader, ok := s.(store.ContentReader)
			if !ok {
				tst.Skipf("%s does not read content", s.Name())
			}

			require.NoError(tst, s.Create(ctx, store.NewEntry("/empty.txt", data.FileTypeFile)))
			content, err := reader.ReadContent(ctx, "/empty.txt")
			require.NoError(tst, err)
			assert.Empty(tst, content)

			_, err = reader.ReadContent(ctx, "/missing.txt")
			assert.ErrorIs(tst, err, data.ErrNotExist)
		})
	}
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "/", store.ChildPrefix("/"))
	assert.Equal(t, "/a/", store.ChildPrefix("/a"))

	child, ok := store.ChildName("/a/", "/a/b")
	assert.True(t, ok)
	assert.Equal(t, "b", child)

	child, ok = store.ChildName("/a/", "/a/b/c")
	assert.True(t, ok)
	assert.Equal(t, "b", child)

	_, ok = store.ChildName("/a/", "/ab")
	assert.False(t, ok)

	assert.Equal(t, "/a", store.ParentKey("/a/b"))
	assert.Equal(t, "/", store.ParentKey("/a"))
}
