package name_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
)

// TestExtractScheme verifies scheme character rules.
func TestExtractScheme(t *testing.T) {
	tests := []struct {
		uri    string
		scheme string
		rest   string
		ok     bool
	}{
		{"file:///tmp", "file", "///tmp", true},
		{"svn+ssh://host/x", "svn+ssh", "//host/x", true},
		{"x-y.z:/a", "x-y.z", "/a", true},
		{"/tmp/a:b", "", "/tmp/a:b", false},
		{"1abc:/x", "", "1abc:/x", false},
		{":/x", "", ":/x", false},
		{"relative/path", "", "relative/path", false},
		{"gz:file:///a.gz!/a", "gz", "file:///a.gz!/a", true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(tst *testing.T) {
			scheme, rest, ok := name.ExtractScheme(tt.uri)
			assert.Equal(tst, tt.ok, ok)
			assert.Equal(tst, tt.scheme, scheme)
			assert.Equal(tst, tt.rest, rest)
		})
	}
}

// TestExtractSchemeFrom verifies that known schemes win over the generic rules.
func TestExtractSchemeFrom(t *testing.T) {
	scheme, rest, ok := name.ExtractSchemeFrom([]string{"ram"}, "RAM:/a")
	require.True(t, ok)
	assert.Equal(t, "ram", scheme)
	assert.Equal(t, "/a", rest)
}

// TestDecode verifies escape decoding and malformed sequences.
func TestDecode(t *testing.T) {
	decoded, err := name.Decode("/a%20b%2Fc")
	require.NoError(t, err)
	assert.Equal(t, "/a b/c", decoded)

	for _, bad := range []string{"%", "%2", "/a%zz", "%g0/x"} {
		_, err := name.Decode(bad)
		assert.ErrorIs(t, err, errors.ErrInvalidEscapeSequence, bad)
		assert.ErrorIs(t, name.CheckURIEncoding(bad), errors.ErrInvalidEscapeSequence, bad)
	}
}

// TestEncode verifies that '%' and reserved bytes are escaped.
func TestEncode(t *testing.T) {
	assert.Equal(t, "a%25b", name.Encode("a%b"))
	assert.Equal(t, "a%3fb%21", name.Encode("a?b!", '?', '!'))
	assert.Equal(t, "plain", name.Encode("plain", '?'))
}

// TestCanonicalizePath verifies that equivalent spellings collapse.
func TestCanonicalizePath(t *testing.T) {
	reserved := func(ch byte) bool { return ch == '?' }

	path, err := name.CanonicalizePath("/a%62c/d?e/%3f/%25", reserved)
	require.NoError(t, err)
	assert.Equal(t, "/abc/d%3fe/%3f/%25", path)

	_, err = name.CanonicalizePath("/a%2", reserved)
	assert.ErrorIs(t, err, errors.ErrInvalidEscapeSequence)
}

// TestExtractElements verifies first element and query extraction.
func TestExtractElements(t *testing.T) {
	first, rest := name.ExtractFirstElement("/a/b/c")
	assert.Equal(t, "a", first)
	assert.Equal(t, "/b/c", rest)

	first, rest = name.ExtractFirstElement("single")
	assert.Equal(t, "single", first)
	assert.Equal(t, "", rest)

	path, query, ok := name.ExtractQueryString("/a/b?x=1&y=2")
	require.True(t, ok)
	assert.Equal(t, "/a/b", path)
	assert.Equal(t, "x=1&y=2", query)
}
