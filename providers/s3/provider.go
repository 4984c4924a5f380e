// Package s3 provides the "s3" scheme: file systems kept in a bucket of
// an S3 compatible object store.
package s3

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

const (
	Scheme      = "s3"
	DefaultPort = 443
)

// NewProvider returns a provider connecting to the endpoint named by the
// root of each file system.
func NewProvider() *store.Provider {
	builder := Builder{}
	return store.NewProvider(name.NewHostParser(DefaultPort), func(_ context.Context, root *name.FileName, opts *data.FileSystemOptions) (store.Store, error) {
		cfg := store.Config[Config](opts, builder)

		host, ok := root.Root().(*name.HostRoot)
		if !ok {
			return nil, fmt.Errorf("%w: '%s' has no endpoint", data.ErrInvalidArgument, root.FriendlyURI())
		}
		if host.User != "" {
			cfg.AccessKey, cfg.SecretKey = host.User, host.Password
		}

		return NewStore(net.JoinHostPort(host.Host, strconv.Itoa(host.Port)), cfg)
	}, builder)
}
