package name

import (
	"strings"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/data/errors"
)

const (
	// Separator is the path separator used in every file name.
	Separator = "/"
	// RootPath is the path of a file system root.
	RootPath = "/"

	separatorChar      = '/'
	transSeparatorChar = '\\'
)

// FixSeparators replaces backslashes with forward slashes and reports
// whether anything changed.
func FixSeparators(path string) (string, bool) {
	if !strings.ContainsRune(path, transSeparatorChar) {
		return path, false
	}
	return strings.ReplaceAll(path, `\`, Separator), true
}

// NormalisePath converts path into its canonical form and classifies it.
//
// Separators are fixed and collapsed, "." segments are dropped and ".."
// removes the preceding segment. A ".." without a preceding segment
// fails with an invalid-relative-path error. The result is a folder if
// the input is empty (yielding the root), ends with a separator, or ends with a "." or ".."
// segment; anything else is a file. Trailing separators are removed
// except for the root.
func NormalisePath(path string) (string, data.FileType, error) {
	path, _ = FixSeparators(path)
	if path == "" {
		return RootPath, data.FileTypeFolder, nil
	}

	fileType := data.FileTypeFile
	if strings.HasSuffix(path, Separator) {
		fileType = data.FileTypeFolder
	}

	absolute := path[0] == separatorChar
	if absolute && len(path) == 1 {
		return path, data.FileTypeFolder, nil
	}

	segments := strings.Split(path, Separator)
	if last := segments[len(segments)-1]; last == "." || last == ".." {
		fileType = data.FileTypeFolder
	}

	stack := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "", ".":
			continue
		case "..":
			if len(stack) == 0 {
				return "", data.FileTypeImaginary, errors.InvalidRelativePath(nil, path)
			}
			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, segment)
		}
	}

	normalised := strings.Join(stack, Separator)
	if absolute || normalised == "" {
		normalised = Separator + normalised
	}

	return normalised, fileType, nil
}

// CheckName reports whether path satisfies scope relative to basePath.
// Both paths must be normalised.
func CheckName(basePath, path string, scope data.NameScope) bool {
	if scope == data.ScopeFileSystem {
		return true
	}

	if !strings.HasPrefix(path, basePath) {
		return false
	}

	baseLen := len(basePath)
	if basePath == RootPath {
		// The root is a prefix of everything; compare past its separator.
		baseLen = 0
	}

	switch scope {
	case data.ScopeChild:
		if len(path) <= baseLen+1 || path[baseLen] != separatorChar {
			return false
		}
		return !strings.Contains(path[baseLen+1:], Separator)
	case data.ScopeDescendent:
		return len(path) > baseLen+1 && path[baseLen] == separatorChar
	case data.ScopeDescendentOrSelf:
		return len(path) == len(basePath) || (len(path) > baseLen && path[baseLen] == separatorChar)
	}

	return false
}
