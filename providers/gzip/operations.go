package gzip

import (
	"context"
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/provider"
)

// OperationDecompress opens a gzip file as a gz file system.
const OperationDecompress = "decompress"

// Operations offers OperationDecompress on gzip compressed files.
type Operations struct{}

func (Operations) Operations(ctx context.Context, file provider.FileObject) ([]string, error) {
	typ, err := file.Type(ctx)
	if err != nil {
		return nil, err
	}
	if typ != data.FileTypeFile {
		return nil, nil
	}

	switch strings.ToLower(file.Name().Extension()) {
	case "gz", "gzip", "tgz":
		return []string{OperationDecompress}, nil
	}
	return nil, nil
}
