package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

const metaID = "Vfs-Id"

// Store maps files to objects and folders to empty "key/" marker
// objects. Prefixes without a marker count as folders too.
type Store struct {
	client     *minio.Client
	bucketName string
}

func NewStore(endpoint string, cfg Config) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		client:     client,
		bucketName: cfg.Bucket,
	}, nil
}

// Returns the identifier name defined for this store
func (*Store) Name() string {
	return "s3"
}

func (s *Store) Open(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: bucket '%s'", data.ErrNotExist, s.bucketName)
	}

	return nil
}

func (s *Store) Close(_ context.Context) error {
	return nil
}

func objectKey(key string) string {
	return strings.TrimPrefix(key, name.Separator)
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

func (s *Store) Stat(ctx context.Context, key string) (*store.Entry, error) {
	obj := objectKey(key)

	info, err := s.client.StatObject(ctx, s.bucketName, obj, minio.StatObjectOptions{})
	if err == nil {
		return entryOf(key, data.FileTypeFile, info), nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	info, err = s.client.StatObject(ctx, s.bucketName, obj+name.Separator, minio.StatObjectOptions{})
	if err == nil {
		return entryOf(key, data.FileTypeFolder, info), nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range s.client.ListObjects(listCtx, s.bucketName, minio.ListObjectsOptions{
		Prefix:  obj + name.Separator,
		MaxKeys: 1,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		return store.NewEntry(key, data.FileTypeFolder), nil
	}

	return nil, data.ErrNotExist
}

func entryOf(key string, typ data.FileType, info minio.ObjectInfo) *store.Entry {
	entry := store.NewEntry(key, typ)
	if id := info.UserMetadata[metaID]; id != "" {
		entry.ID = id
	}
	entry.CreateTime = info.LastModified
	entry.ModifyTime = info.LastModified

	return entry
}

func (s *Store) Create(ctx context.Context, entry *store.Entry) error {
	if _, err := s.Stat(ctx, entry.Key); err == nil {
		return fmt.Errorf("%w: %s", data.ErrExist, entry.Key)
	}

	obj := objectKey(entry.Key)
	if entry.Type == data.FileTypeFolder {
		obj += name.Separator
	}

	_, err := s.client.PutObject(ctx, s.bucketName, obj, bytes.NewReader(nil), 0, minio.PutObjectOptions{
		UserMetadata: map[string]string{metaID: entry.ID},
	})
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	entry, err := s.Stat(ctx, key)
	if err != nil {
		return err
	}

	obj := objectKey(key)
	if entry.Type == data.FileTypeFolder {
		obj += name.Separator
	}
	return s.client.RemoveObject(ctx, s.bucketName, obj, minio.RemoveObjectOptions{})
}

func (s *Store) List(ctx context.Context, key string) ([]string, error) {
	prefix := ""
	if key != name.RootPath {
		prefix = objectKey(key) + name.Separator
	}

	children := make([]string, 0)
	for object := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix: prefix,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}

		child := strings.TrimSuffix(strings.TrimPrefix(object.Key, prefix), name.Separator)
		if child != "" {
			children = append(children, child)
		}
	}

	return children, nil
}

func (s *Store) ReadContent(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, objectKey(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if isNotFound(err) {
		return nil, data.ErrNotExist
	}
	return content, err
}
