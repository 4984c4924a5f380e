package errors

func MismatchedFileSystem(err error, name, root string) error {
	return newError(err, CodeMismatchedFileSystem, name, root)
}

func JunctionsNotSupported(err error, root string) error {
	return newError(err, CodeJunctionsNotSupported, root)
}

func NestedJunction(err error, point string) error {
	return newError(err, CodeNestedJunction, point)
}

func NotSupported(err error, op, uri string) error {
	return newError(err, CodeNotSupported, op, uri)
}

func NotFolder(err error, uri string) error {
	return newError(err, CodeNotFolder, uri)
}
