package data

import "strings"

// Mime types the type map can infer from a file extension. Only formats
// that a layered file system can be built on, plus the generic fallback.
const (
	MimeTypeGZip   = "application/gzip"
	MimeTypeZip    = "application/zip"
	MimeTypeTar    = "application/x-tar"
	MimeTypeJar    = "application/java-archive"
	MimeTypeBZip2  = "application/x-bzip2"
	MimeTypeXZ     = "application/x-xz"
	MimeTypeSQLite = "application/vnd.sqlite3"
	MimeTypeStream = "application/octet-stream"
)

var extensionMimeTypes = map[string]string{
	"gz":      MimeTypeGZip,
	"tgz":     MimeTypeGZip,
	"zip":     MimeTypeZip,
	"tar":     MimeTypeTar,
	"jar":     MimeTypeJar,
	"bz2":     MimeTypeBZip2,
	"xz":      MimeTypeXZ,
	"db":      MimeTypeSQLite,
	"sqlite":  MimeTypeSQLite,
	"sqlite3": MimeTypeSQLite,
}

// MimeTypeOf returns the mime type for an extension without the leading
// dot, or MimeTypeStream for unknown ones.
func MimeTypeOf(extension string) string {
	if mimeType, ok := extensionMimeTypes[strings.ToLower(extension)]; ok {
		return mimeType
	}
	return MimeTypeStream
}
