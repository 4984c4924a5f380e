package name

import (
	"strconv"
	"strings"

	"github.com/mwantia/vfsname/data/errors"
)

// HostParser parses "scheme://[user[:password]@]host[:port][/path][?query]"
// URIs into names under a HostRoot.
type HostParser struct {
	DefaultPort int
	// Query keeps the query string out of the path when set.
	Query bool
}

// NewHostParser returns a parser for URIs whose port defaults to
// defaultPort.
func NewHostParser(defaultPort int) *HostParser {
	return &HostParser{DefaultPort: defaultPort}
}

func (p *HostParser) EncodeCharacter(ch byte) bool {
	return ch == '?' && !p.Query
}

func (p *HostParser) ParseURI(_ *FileName, uri string) (*FileName, error) {
	root, rest, err := p.ParseAuthority(uri)
	if err != nil {
		return nil, err
	}

	var query string
	if p.Query {
		rest, query, _ = ExtractQueryString(rest)
	}

	path, typ, err := parsePath(rest, p)
	if err != nil {
		return nil, err
	}

	return NewFileNameWithQuery(root, path, typ, query), nil
}

// ParseAuthority extracts the root of uri and returns the remaining path.
func (p *HostParser) ParseAuthority(uri string) (*HostRoot, string, error) {
	scheme, rest, ok := ExtractScheme(uri)
	if !ok {
		return nil, "", errors.InvalidAbsoluteURI(nil, uri)
	}

	if !strings.HasPrefix(rest, "//") {
		return nil, "", errors.MissingDoubleSlashes(nil, uri)
	}
	rest = rest[2:]

	var user, password string
	if userInfo, remaining, ok := extractUserInfo(rest); ok {
		rest = remaining

		rawUser, rawPassword, _ := strings.Cut(userInfo, ":")
		var err error
		if user, err = Decode(rawUser); err != nil {
			return nil, "", err
		}
		if password, err = Decode(rawPassword); err != nil {
			return nil, "", err
		}
	}

	host, rest, err := extractHostName(rest, uri)
	if err != nil {
		return nil, "", err
	}
	if host == "" || host == "[]" {
		return nil, "", errors.MissingHostname(nil, uri)
	}

	port, rest, err := extractPort(rest, uri)
	if err != nil {
		return nil, "", err
	}

	if rest != "" && rest[0] != separatorChar {
		return nil, "", errors.MissingHostTerminator(nil, uri)
	}

	root := NewHostRoot(scheme, strings.ToLower(host), port, p.DefaultPort, user, password)
	return root, rest, nil
}

func extractUserInfo(name string) (userInfo, rest string, ok bool) {
	for pos := 0; pos < len(name); pos++ {
		switch name[pos] {
		case '@':
			return name[:pos], name[pos+1:], true
		case '/', '?':
			return "", name, false
		}
	}
	return "", name, false
}

func extractHostName(name, uri string) (host, rest string, err error) {
	if strings.HasPrefix(name, "[") {
		// IPv6 literal, kept with its brackets.
		end := strings.IndexByte(name, ']')
		if end < 0 {
			return "", name, errors.UnterminatedIPv6(nil, uri)
		}
		return name[:end+1], name[end+1:], nil
	}

	pos := 0
	for ; pos < len(name); pos++ {
		if strings.IndexByte("/;?:@&=+$,", name[pos]) >= 0 {
			break
		}
	}
	return name[:pos], name[pos:], nil
}

func extractPort(name, uri string) (int, string, error) {
	if name == "" || name[0] != ':' {
		return -1, name, nil
	}

	pos := 1
	for pos < len(name) && isDigit(name[pos]) {
		pos++
	}

	digits := name[1:pos]
	if digits == "" {
		return -1, name, errors.MissingPort(nil, uri)
	}

	port, err := strconv.Atoi(digits)
	if err != nil {
		return -1, name, errors.MissingPort(err, uri)
	}
	return port, name[pos:], nil
}
