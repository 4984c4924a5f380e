package name

import (
	"runtime"
	"strings"

	"github.com/mwantia/vfsname/data/errors"
)

// LocalParser parses local file names, with or without a "file:" scheme.
// On windows the root carries a drive letter or UNC share.
type LocalParser struct {
	Scheme  string
	Windows bool
}

// NewLocalParser returns a parser for the host platform.
func NewLocalParser(scheme string) *LocalParser {
	return &LocalParser{
		Scheme:  scheme,
		Windows: runtime.GOOS == "windows",
	}
}

func (p *LocalParser) EncodeCharacter(ch byte) bool {
	return ch == '?' || ch == '#'
}

// IsAbsoluteName reports whether name is an absolute local path.
func (p *LocalParser) IsAbsoluteName(name string) bool {
	name, _ = FixSeparators(name)
	if !p.Windows {
		return strings.HasPrefix(name, Separator)
	}
	_, _, err := p.extractWindowsRoot(name, name)
	return err == nil
}

func (p *LocalParser) ParseURI(_ *FileName, uri string) (*FileName, error) {
	rest := uri
	if scheme, remaining, ok := ExtractSchemeFrom([]string{p.Scheme}, uri); ok {
		if scheme != p.Scheme {
			return nil, errors.NotLocalFile(nil, uri)
		}
		rest = remaining
	}

	rest, err := CanonicalizePath(rest, p.EncodeCharacter)
	if err != nil {
		return nil, err
	}
	rest, _ = FixSeparators(rest)

	prefix := p.Scheme + "://"
	if p.Windows {
		var drive string
		if drive, rest, err = p.extractWindowsRoot(uri, rest); err != nil {
			return nil, err
		}
		prefix += "/" + drive
	} else {
		rest, err = p.extractUnixRoot(uri, rest)
		if err != nil {
			return nil, err
		}
	}

	path, typ, err := NormalisePath(rest)
	if err != nil {
		return nil, err
	}

	return NewFileName(NewPrefixRoot(p.Scheme, prefix), path, typ), nil
}

func (p *LocalParser) extractUnixRoot(uri, name string) (string, error) {
	if !strings.HasPrefix(name, Separator) {
		return "", errors.NotLocalFile(nil, uri)
	}
	// "file:///tmp" and "file:/tmp" both denote /tmp.
	if strings.HasPrefix(name, "///") {
		name = name[2:]
	}
	return name, nil
}

// extractWindowsRoot splits a drive ("C:") or UNC ("//server/share")
// prefix off name.
func (p *LocalParser) extractWindowsRoot(uri, name string) (string, string, error) {
	start := 0
	for start < min(4, len(name)) && name[start] == separatorChar {
		start++
	}
	rest := name[start:]

	if len(rest) >= 3 && rest[0] != ':' && rest[1] == ':' && rest[2] == separatorChar {
		return rest[:2], rest[2:], nil
	}
	if len(rest) == 2 && rest[1] == ':' {
		return rest, Separator, nil
	}

	if start < 2 {
		return "", "", errors.NotLocalFile(nil, uri)
	}

	server, after, ok := strings.Cut(rest, Separator)
	if !ok || server == "" {
		return "", "", errors.NotLocalFile(nil, uri)
	}
	share, after, _ := strings.Cut(after, Separator)
	if share == "" {
		return "", "", errors.NotLocalFile(nil, uri)
	}

	return "//" + server + "/" + share, Separator + after, nil
}
