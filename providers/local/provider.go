// Package local provides the "file" scheme on the host file system. It
// also serves plain absolute paths that carry no scheme.
package local

import (
	"context"
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
	"github.com/mwantia/vfsname/providers/store"
)

const Scheme = "file"

// Provider is the local file provider.
type Provider struct {
	*store.Provider

	parser *name.LocalParser
}

var _ provider.LocalProvider = (*Provider)(nil)

func NewProvider() *Provider {
	parser := name.NewLocalParser(Scheme)
	return &Provider{
		Provider: store.NewProvider(parser, func(_ context.Context, root *name.FileName, _ *data.FileSystemOptions) (store.Store, error) {
			return NewStore(hostRoot(root)), nil
		}, nil),
		parser: parser,
	}
}

// hostRoot returns the host prefix of root: a drive or UNC share on
// windows, empty on unix.
func hostRoot(root *name.FileName) string {
	prefix := strings.TrimPrefix(root.RootURI(), root.Scheme()+"://")
	prefix = strings.TrimSuffix(prefix, name.Separator)
	// "/C:" is the drive "C:", "///server/share" the share "//server/share".
	return strings.TrimPrefix(prefix, name.Separator)
}

func (p *Provider) IsAbsoluteLocalName(name string) bool {
	return p.parser.IsAbsoluteName(name)
}

func (p *Provider) FindLocalFile(ctx context.Context, path string) (provider.FileObject, error) {
	return p.FindFile(ctx, nil, path, nil)
}
