package data

// FileType identifies the kind of node a file name refers to.
type FileType int

// File type constants. The zero value is FileTypeImaginary so an
// unresolved node never claims to exist.
const (
	FileTypeImaginary    FileType = iota // Does not exist
	FileTypeFile                         // Has content, no children
	FileTypeFolder                       // Has children, no content
	FileTypeFileOrFolder                 // Has both
)

func (t FileType) String() string {
	switch t {
	case FileTypeImaginary:
		return "imaginary"
	case FileTypeFile:
		return "file"
	case FileTypeFolder:
		return "folder"
	case FileTypeFileOrFolder:
		return "file-or-folder"
	default:
		return "unknown"
	}
}

// HasChildren reports whether nodes of this type may contain children.
func (t FileType) HasChildren() bool {
	return t == FileTypeFolder || t == FileTypeFileOrFolder
}

// HasContent reports whether nodes of this type carry content.
func (t FileType) HasContent() bool {
	return t == FileTypeFile || t == FileTypeFileOrFolder
}

// Exists reports whether the type denotes an existing node.
func (t FileType) Exists() bool {
	return t != FileTypeImaginary
}
