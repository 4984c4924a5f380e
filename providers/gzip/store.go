package gzip

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/memory"
	"github.com/mwantia/vfsname/providers/store"
)

// Store exposes the single decompressed entry of a gzip file.
type Store struct {
	*memory.Store

	entry string
}

// NewStore decompresses r. The entry is named after the gzip header or,
// when the header carries no name, after outer without its extension.
func NewStore(r io.Reader, outer string) (*Store, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	content, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip stream: %w", err)
	}

	entry := EntryName(zr.Name, outer)
	s := &Store{
		Store: memory.NewStore(),
		entry: entry,
	}
	s.WriteContent(name.Separator+entry, content)

	return s, nil
}

// EntryName picks the name of the decompressed entry.
func EntryName(header, outer string) string {
	if header != "" {
		if pos := strings.LastIndexAny(header, `/\`); pos >= 0 {
			header = header[pos+1:]
		}
		if header != "" {
			return header
		}
	}

	lower := strings.ToLower(outer)
	switch {
	case strings.HasSuffix(lower, ".tgz"):
		return outer[:len(outer)-4] + ".tar"
	case strings.HasSuffix(lower, ".gzip"):
		return outer[:len(outer)-5]
	case strings.HasSuffix(lower, ".gz") && len(outer) > 3:
		return outer[:len(outer)-3]
	}
	return outer
}

func (*Store) Name() string {
	return "gzip"
}

func (*Store) ReadOnly() bool {
	return true
}

func (s *Store) Create(_ context.Context, _ *store.Entry) error {
	return data.ErrNotSupported
}

func (s *Store) Delete(_ context.Context, _ string) error {
	return data.ErrNotSupported
}
