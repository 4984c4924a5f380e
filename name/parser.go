package name

import (
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
)

// Parser turns an absolute URI into a FileName for one family of schemes.
type Parser interface {
	// ParseURI parses uri. base may be nil and is only a hint.
	ParseURI(base *FileName, uri string) (*FileName, error)
	// EncodeCharacter reports whether ch must stay percent-encoded in a
	// path of this family.
	EncodeCharacter(ch byte) bool
}

// PrefixParser parses "scheme:[//]path" URIs that carry no authority,
// producing names under a "scheme://" prefix root.
type PrefixParser struct {
	// Encode lists characters kept encoded in paths.
	Encode []byte
}

// NewPrefixParser returns a parser keeping '?' and '#' encoded.
func NewPrefixParser() *PrefixParser {
	return &PrefixParser{Encode: []byte{'?', '#'}}
}

func (p *PrefixParser) EncodeCharacter(ch byte) bool {
	return strings.IndexByte(string(p.Encode), ch) >= 0
}

func (p *PrefixParser) ParseURI(_ *FileName, uri string) (*FileName, error) {
	scheme, rest, ok := ExtractScheme(uri)
	if !ok {
		return nil, errors.InvalidAbsoluteURI(nil, uri)
	}

	rest = strings.TrimPrefix(rest, "//")
	path, typ, err := parsePath(rest, p)
	if err != nil {
		return nil, err
	}

	return NewFileName(NewPrefixRoot(scheme, scheme+"://"), path, typ), nil
}

// parsePath canonicalises, fixes and normalises the path part of a URI.
func parsePath(path string, parser Parser) (string, data.FileType, error) {
	path, err := CanonicalizePath(path, parser.EncodeCharacter)
	if err != nil {
		return "", 0, err
	}

	path, _ = FixSeparators(path)
	if !strings.HasPrefix(path, Separator) {
		path = Separator + path
	}

	return NormalisePath(path)
}
