package name

import (
	"strings"

	"github.com/mwantia/vfsname/data/errors"
)

// LayeredParser parses "scheme:<outer-uri>!/path" URIs of file systems
// nested inside another file.
type LayeredParser struct {
	// Outer parses the URI of the containing file.
	Outer func(uri string) (*FileName, error)
}

// NewLayeredParser returns a parser delegating the outer URI to outer.
func NewLayeredParser(outer func(uri string) (*FileName, error)) *LayeredParser {
	return &LayeredParser{Outer: outer}
}

func (p *LayeredParser) EncodeCharacter(ch byte) bool {
	return ch == '!'
}

func (p *LayeredParser) ParseURI(_ *FileName, uri string) (*FileName, error) {
	scheme, rest, ok := ExtractScheme(uri)
	if !ok {
		return nil, errors.InvalidLayeredURI(nil, uri)
	}

	outerURI, path := rest, ""
	if pos := strings.LastIndexByte(rest, '!'); pos >= 0 {
		outerURI, path = rest[:pos], rest[pos+1:]
	}
	if outerURI == "" || p.Outer == nil {
		return nil, errors.InvalidLayeredURI(nil, uri)
	}

	outer, err := p.Outer(outerURI)
	if err != nil {
		return nil, errors.InvalidLayeredURI(err, uri)
	}

	path, typ, err := parsePath(path, p)
	if err != nil {
		return nil, err
	}

	return NewFileName(NewLayeredRoot(scheme, outer), path, typ), nil
}
