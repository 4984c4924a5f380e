package errors

const (
	CodeInvalidURI              Code = "invalid-uri"
	CodeInvalidEscapeSequence   Code = "invalid-escape-sequence"
	CodeInvalidRelativePath     Code = "invalid-relative-path"
	CodeInvalidDescendentName   Code = "invalid-descendent-name"
	CodeInvalidAbsoluteURI      Code = "invalid-absolute-uri"
	CodeInvalidLayeredURI       Code = "invalid-layered-uri"
	CodeMissingDoubleSlashes    Code = "missing-double-slashes"
	CodeMissingHostname         Code = "missing-hostname"
	CodeMissingPort             Code = "missing-port"
	CodeMissingHostTerminator   Code = "missing-hostname-terminator"
	CodeUnterminatedIPv6        Code = "unterminated-ipv6-hostname"
	CodeNotLocalFile            Code = "not-local-file"
	CodeUnknownScheme           Code = "unknown-scheme"
	CodeFindRelativeFile        Code = "find-rel-file"
	CodeNoProviderForFile       Code = "no-provider-for-file"
	CodeUnknownProvider         Code = "unknown-provider"
	CodeMultipleProviders       Code = "multiple-providers-for-scheme"
	CodeOperationProviderExists Code = "operation-provider-already-added"
	CodeAlreadyInited           Code = "already-inited"
	CodeNotInited               Code = "not-inited"
	CodeNoLocalProvider         Code = "no-local-provider"
	CodeMismatchedFileSystem    Code = "mismatched-fs-for-name"
	CodeJunctionsNotSupported   Code = "junctions-not-supported"
	CodeNestedJunction          Code = "nested-junction"
	CodeNotSupported            Code = "not-supported"
	CodeNotFolder               Code = "not-a-folder"
	CodeCreateProvider          Code = "create-provider"
	CodeLoadConfig              Code = "load-config"
	CodeBackend                 Code = "backend"
)

var messages = map[Code]string{
	CodeInvalidURI:              "invalid URI '%s'",
	CodeInvalidEscapeSequence:   "invalid URI escape sequence in '%s'",
	CodeInvalidRelativePath:     "invalid relative path '%s'",
	CodeInvalidDescendentName:   "invalid descendent file name '%s'",
	CodeInvalidAbsoluteURI:      "invalid absolute URI '%s'",
	CodeInvalidLayeredURI:       "invalid layered URI '%s'",
	CodeMissingDoubleSlashes:    "expecting // to follow the scheme in URI '%s'",
	CodeMissingHostname:         "hostname missing from URI '%s'",
	CodeMissingPort:             "port number missing from URI '%s'",
	CodeMissingHostTerminator:   "expecting / to follow the hostname in URI '%s'",
	CodeUnterminatedIPv6:        "unterminated IPv6 hostname in URI '%s'",
	CodeNotLocalFile:            "URI '%s' is not an absolute local file name",
	CodeUnknownScheme:           "unknown scheme '%s' in URI '%s'",
	CodeFindRelativeFile:        "could not find file with URI '%s' because it is a relative path, and no base URI was provided",
	CodeNoProviderForFile:       "could not find a file system provider which can handle file '%s'",
	CodeUnknownProvider:         "no file system provider is registered for scheme '%s'",
	CodeMultipleProviders:       "multiple providers registered for scheme '%s'",
	CodeOperationProviderExists: "operation provider already added for scheme '%s'",
	CodeAlreadyInited:           "cannot change '%s' after the manager has been initialised",
	CodeNotInited:               "the manager has not been initialised",
	CodeNoLocalProvider:         "no local file provider is configured to resolve '%s'",
	CodeMismatchedFileSystem:    "file name '%s' is not within file system '%s'",
	CodeJunctionsNotSupported:   "file system '%s' does not support junctions",
	CodeNestedJunction:          "cannot add junction '%s': nested junctions are not supported",
	CodeNotSupported:            "operation '%s' is not supported on '%s'",
	CodeNotFolder:               "could not list the contents of '%s' because it is not a folder",
	CodeCreateProvider:          "could not create provider '%s'",
	CodeLoadConfig:              "could not load configuration '%s'",
	CodeBackend:                 "backend operation '%s' failed for '%s'",
}

// Sentinels for errors.Is. They match any error with the same code.
var (
	ErrInvalidURI              = &FileSystemError{Code: CodeInvalidURI}
	ErrInvalidEscapeSequence   = &FileSystemError{Code: CodeInvalidEscapeSequence}
	ErrInvalidRelativePath     = &FileSystemError{Code: CodeInvalidRelativePath}
	ErrInvalidDescendentName   = &FileSystemError{Code: CodeInvalidDescendentName}
	ErrInvalidAbsoluteURI      = &FileSystemError{Code: CodeInvalidAbsoluteURI}
	ErrInvalidLayeredURI       = &FileSystemError{Code: CodeInvalidLayeredURI}
	ErrMissingDoubleSlashes    = &FileSystemError{Code: CodeMissingDoubleSlashes}
	ErrMissingHostname         = &FileSystemError{Code: CodeMissingHostname}
	ErrMissingPort             = &FileSystemError{Code: CodeMissingPort}
	ErrMissingHostTerminator   = &FileSystemError{Code: CodeMissingHostTerminator}
	ErrUnterminatedIPv6        = &FileSystemError{Code: CodeUnterminatedIPv6}
	ErrNotLocalFile            = &FileSystemError{Code: CodeNotLocalFile}
	ErrUnknownScheme           = &FileSystemError{Code: CodeUnknownScheme}
	ErrFindRelativeFile        = &FileSystemError{Code: CodeFindRelativeFile}
	ErrNoProviderForFile       = &FileSystemError{Code: CodeNoProviderForFile}
	ErrUnknownProvider         = &FileSystemError{Code: CodeUnknownProvider}
	ErrMultipleProviders       = &FileSystemError{Code: CodeMultipleProviders}
	ErrOperationProviderExists = &FileSystemError{Code: CodeOperationProviderExists}
	ErrAlreadyInited           = &FileSystemError{Code: CodeAlreadyInited}
	ErrNotInited               = &FileSystemError{Code: CodeNotInited}
	ErrNoLocalProvider         = &FileSystemError{Code: CodeNoLocalProvider}
	ErrMismatchedFileSystem    = &FileSystemError{Code: CodeMismatchedFileSystem}
	ErrJunctionsNotSupported   = &FileSystemError{Code: CodeJunctionsNotSupported}
	ErrNestedJunction          = &FileSystemError{Code: CodeNestedJunction}
	ErrNotSupported            = &FileSystemError{Code: CodeNotSupported}
	ErrNotFolder               = &FileSystemError{Code: CodeNotFolder}
	ErrCreateProvider          = &FileSystemError{Code: CodeCreateProvider}
	ErrLoadConfig              = &FileSystemError{Code: CodeLoadConfig}
	ErrBackend                 = &FileSystemError{Code: CodeBackend}
)
