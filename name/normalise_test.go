package name_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
	"github.com/mwantia/vfsname/name"
)

// TestNormalisePath verifies segment handling and FILE/FOLDER classification.
func TestNormalisePath(t *testing.T) {
	tests := []struct {
		input string
		path  string
		typ   data.FileType
	}{
		{"", "/", data.FileTypeFolder},
		{"/", "/", data.FileTypeFolder},
		{".", "/", data.FileTypeFolder},
		{"/a/b", "/a/b", data.FileTypeFile},
		{"/a/b/", "/a/b", data.FileTypeFolder},
		{"/a//b///c", "/a/b/c", data.FileTypeFile},
		{`\a\b\`, "/a/b", data.FileTypeFolder},
		{"/a/./b", "/a/b", data.FileTypeFile},
		{"/a/b/..", "/a", data.FileTypeFolder},
		{"/a/b/.", "/a/b", data.FileTypeFolder},
		{"/a/b/../c/./d/", "/a/c/d", data.FileTypeFolder},
		{"/a/../Descendant Folder/../File.", "/File.", data.FileTypeFile},
		{"/a/File..", "/a/File..", data.FileTypeFile},
		{"/a/..b", "/a/..b", data.FileTypeFile},
		{"a/b/../c", "a/c", data.FileTypeFile},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(tst *testing.T) {
			path, typ, err := name.NormalisePath(tt.input)
			require.NoError(tst, err)
			assert.Equal(tst, tt.path, path)
			assert.Equal(tst, tt.typ, typ)
		})
	}
}

// TestNormalisePathEscapingRoot verifies that ".." past the first segment fails.
func TestNormalisePathEscapingRoot(t *testing.T) {
	for _, input := range []string{"..", "/..", "/a/../..", "../a", "a/../../b"} {
		t.Run(input, func(tst *testing.T) {
			_, _, err := name.NormalisePath(input)
			require.Error(tst, err)
			assert.ErrorIs(tst, err, errors.ErrInvalidRelativePath)
		})
	}
}

// TestNormalisePathIdempotent verifies that normalising twice changes nothing.
func TestNormalisePathIdempotent(t *testing.T) {
	inputs := []string{
		"", "/", ".", "./", "/a", "/a/", "a", "a/b/", "/a/./b/../c",
		`\x\\y\.\z`, "/File.", "/a/File..", "//", "/a/b/.", "/a/..b/c.d",
	}

	for _, input := range inputs {
		t.Run(input, func(tst *testing.T) {
			once, _, err := name.NormalisePath(input)
			require.NoError(tst, err)

			twice, _, err := name.NormalisePath(once)
			require.NoError(tst, err)
			assert.Equal(tst, once, twice)
		})
	}
}

// TestCheckName verifies every scope against direct, deep and sibling paths.
func TestCheckName(t *testing.T) {
	tests := []struct {
		base  string
		path  string
		scope data.NameScope
		want  bool
	}{
		{"/a", "/x/y", data.ScopeFileSystem, true},
		{"/a", "/a/b", data.ScopeChild, true},
		{"/a", "/a/b/c", data.ScopeChild, false},
		{"/a", "/a", data.ScopeChild, false},
		{"/a", "/ab", data.ScopeChild, false},
		{"/", "/a", data.ScopeChild, true},
		{"/", "/a/b", data.ScopeChild, false},
		{"/", "/", data.ScopeChild, false},
		{"/a", "/a/b/c", data.ScopeDescendent, true},
		{"/a", "/a", data.ScopeDescendent, false},
		{"/a", "/ab/c", data.ScopeDescendent, false},
		{"/", "/a/b", data.ScopeDescendent, true},
		{"/a", "/a", data.ScopeDescendentOrSelf, true},
		{"/a", "/a/b", data.ScopeDescendentOrSelf, true},
		{"/a", "/ab", data.ScopeDescendentOrSelf, false},
		{"/a", "/", data.ScopeDescendentOrSelf, false},
		{"/", "/", data.ScopeDescendentOrSelf, true},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String()+tt.base+"->"+tt.path, func(tst *testing.T) {
			assert.Equal(tst, tt.want, name.CheckName(tt.base, tt.path, tt.scope))
		})
	}
}
