package name

import (
	"strings"

	"github.com/mwantia/vfsname/data"
)

// FileName is the immutable, canonical name of a node: a root URI plus
// an absolute path. It says nothing about whether the node exists.
// Equality and ordering are defined over the full URI.
type FileName struct {
	root  Root
	path  string
	typ   data.FileType
	query string

	rootBase string
	uri      string
	friendly string
}

// NewFileName returns a name for the normalised absolute path under root.
func NewFileName(root Root, path string, typ data.FileType) *FileName {
	return newFileName(root, path, typ, "")
}

// NewFileNameWithQuery is NewFileName with a query string kept outside
// the path.
func NewFileNameWithQuery(root Root, path string, typ data.FileType, query string) *FileName {
	return newFileName(root, path, typ, query)
}

func newFileName(root Root, path string, typ data.FileType, query string) *FileName {
	if path == "" {
		path = RootPath
	}

	n := &FileName{
		root:  root,
		path:  path,
		typ:   typ,
		query: query,
	}

	var b strings.Builder
	root.AppendURI(&b, true)
	n.rootBase = b.String()
	n.uri = n.rootBase + path + n.trailer()

	b.Reset()
	root.AppendURI(&b, false)
	n.friendly = b.String() + path + n.trailer()

	return n
}

func (n *FileName) trailer() string {
	if n.query == "" {
		return ""
	}
	return "?" + n.query
}

// Scheme returns the URI scheme, such as "file" or "ram".
func (n *FileName) Scheme() string {
	return n.root.Scheme()
}

// Root returns the root this name belongs to.
func (n *FileName) Root() Root {
	return n.root
}

// RootURI returns the URI of the file system root, ending in a separator.
func (n *FileName) RootURI() string {
	return n.rootBase + Separator
}

// RootName returns the name of the file system root.
func (n *FileName) RootName() *FileName {
	if n.path == RootPath {
		return n
	}
	return NewFileName(n.root, RootPath, data.FileTypeFolder)
}

// Path returns the absolute, encoded path.
func (n *FileName) Path() string {
	return n.path
}

// PathDecoded returns the absolute path with escapes decoded.
func (n *FileName) PathDecoded() (string, error) {
	return Decode(n.path)
}

// Query returns the query string, without the leading '?'.
func (n *FileName) Query() string {
	return n.query
}

// Type returns the type derived while parsing the name.
func (n *FileName) Type() data.FileType {
	return n.typ
}

// IsFile reports whether the name was parsed as a file.
func (n *FileName) IsFile() bool {
	return n.typ == data.FileTypeFile
}

// URI returns the full URI including credentials.
func (n *FileName) URI() string {
	return n.uri
}

// FriendlyURI returns the URI with any password masked.
func (n *FileName) FriendlyURI() string {
	return n.friendly
}

// Key identifies the name in caches and maps.
func (n *FileName) Key() string {
	return n.uri
}

func (n *FileName) String() string {
	return n.friendly
}

// BaseName returns the last path element, or "" for the root.
func (n *FileName) BaseName() string {
	if n.path == RootPath {
		return ""
	}
	return n.path[strings.LastIndexByte(n.path, separatorChar)+1:]
}

// Extension returns the part of the base name after the last dot. Names
// starting or ending with the dot have no extension.
func (n *FileName) Extension() string {
	base := n.BaseName()
	pos := strings.LastIndexByte(base, '.')
	if pos < 1 || pos == len(base)-1 {
		return ""
	}
	return base[pos+1:]
}

// Depth returns the number of path elements; the root has depth zero.
func (n *FileName) Depth() int {
	if n.path == RootPath {
		return 0
	}
	return strings.Count(n.path, Separator)
}

// Parent returns the name of the containing folder, or nil for the root.
func (n *FileName) Parent() *FileName {
	if n.path == RootPath {
		return nil
	}

	pos := strings.LastIndexByte(n.path, separatorChar)
	if pos <= 0 {
		return NewFileName(n.root, RootPath, data.FileTypeFolder)
	}
	return NewFileName(n.root, n.path[:pos], data.FileTypeFolder)
}

// CreateName returns a name with the same root and the given path.
func (n *FileName) CreateName(path string, typ data.FileType) *FileName {
	return NewFileName(n.root, path, typ)
}

// WithType returns a copy of the name with a different type.
func (n *FileName) WithType(typ data.FileType) *FileName {
	if typ == n.typ {
		return n
	}
	return newFileName(n.root, n.path, typ, n.query)
}

// Equal reports whether both names denote the same URI.
func (n *FileName) Equal(other *FileName) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.uri == other.uri
}

// Compare orders names by URI.
func (n *FileName) Compare(other *FileName) int {
	return strings.Compare(n.uri, other.uri)
}

// IsAncestor reports whether ancestor is a strict ancestor of n.
func (n *FileName) IsAncestor(ancestor *FileName) bool {
	if ancestor == nil || ancestor.RootURI() != n.RootURI() {
		return false
	}
	return CheckName(ancestor.path, n.path, data.ScopeDescendent)
}

// IsDescendent reports whether descendent lies within n under scope.
func (n *FileName) IsDescendent(descendent *FileName, scope data.NameScope) bool {
	if descendent == nil || descendent.RootURI() != n.RootURI() {
		return false
	}
	return CheckName(n.path, descendent.path, scope)
}

// RelativeName returns the path of other relative to n, using "../"
// steps where other is not below n.
func (n *FileName) RelativeName(other *FileName) string {
	base := n.path
	path := other.path

	if len(base) == 1 && len(path) == 1 {
		return "."
	}
	if len(base) == 1 {
		return path[1:]
	}

	maxlen := min(len(base), len(path))
	pos := 0
	for pos < maxlen && base[pos] == path[pos] {
		pos++
	}

	if pos == len(base) && pos == len(path) {
		return "."
	}
	if pos == len(base) && pos < len(path) && path[pos] == separatorChar {
		return path[pos+1:]
	}

	var tail string
	if len(path) > 1 && (pos < len(path) || base[pos] != separatorChar) {
		// Not a direct ancestor; back up to the last common separator.
		pos = strings.LastIndexByte(base[:min(pos+1, len(base))], separatorChar)
		tail = path[pos:]
	}

	rel := ".." + tail
	for next := indexFrom(base, pos+1); next != -1; next = indexFrom(base, next+1) {
		rel = "../" + rel
	}

	return rel
}

func indexFrom(s string, from int) int {
	if from >= len(s) {
		return -1
	}
	if pos := strings.IndexByte(s[from:], separatorChar); pos >= 0 {
		return pos + from
	}
	return -1
}
