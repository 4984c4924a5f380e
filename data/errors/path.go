package errors

func InvalidURI(err error, uri string) error {
	return newError(err, CodeInvalidURI, uri)
}

func InvalidEscapeSequence(err error, uri string) error {
	return newError(err, CodeInvalidEscapeSequence, uri)
}

func InvalidRelativePath(err error, path string) error {
	return newError(err, CodeInvalidRelativePath, path)
}

func InvalidDescendentName(err error, name string) error {
	return newError(err, CodeInvalidDescendentName, name)
}

func InvalidAbsoluteURI(err error, uri string) error {
	return newError(err, CodeInvalidAbsoluteURI, uri)
}

func InvalidLayeredURI(err error, uri string) error {
	return newError(err, CodeInvalidLayeredURI, uri)
}

func MissingDoubleSlashes(err error, uri string) error {
	return newError(err, CodeMissingDoubleSlashes, uri)
}

func MissingHostname(err error, uri string) error {
	return newError(err, CodeMissingHostname, uri)
}

func MissingPort(err error, uri string) error {
	return newError(err, CodeMissingPort, uri)
}

func MissingHostTerminator(err error, uri string) error {
	return newError(err, CodeMissingHostTerminator, uri)
}

func UnterminatedIPv6(err error, uri string) error {
	return newError(err, CodeUnterminatedIPv6, uri)
}

func NotLocalFile(err error, uri string) error {
	return newError(err, CodeNotLocalFile, uri)
}

func FindRelativeFile(err error, uri string) error {
	return newError(err, CodeFindRelativeFile, uri)
}
