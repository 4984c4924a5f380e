// Package consul provides the "consul" scheme: file system trees kept in
// the Consul KV store of the agent named by the root.
package consul

import (
	"context"
	"net"
	"strconv"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

const (
	Scheme      = "consul"
	DefaultPort = 8500
)

func NewProvider() *store.Provider {
	builder := Builder{}
	return store.NewProvider(name.NewHostParser(DefaultPort), func(_ context.Context, root *name.FileName, opts *data.FileSystemOptions) (store.Store, error) {
		address := "127.0.0.1:" + strconv.Itoa(DefaultPort)
		if host, ok := root.Root().(*name.HostRoot); ok {
			address = net.JoinHostPort(host.Host, strconv.Itoa(host.Port))
		}
		return NewStore(address, store.Config[Config](opts, builder))
	}, builder)
}
