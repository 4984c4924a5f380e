package errors

func UnknownScheme(err error, scheme, uri string) error {
	return newError(err, CodeUnknownScheme, scheme, uri)
}

func NoProviderForFile(err error, uri string) error {
	return newError(err, CodeNoProviderForFile, uri)
}

func UnknownProvider(err error, scheme string) error {
	return newError(err, CodeUnknownProvider, scheme)
}

func MultipleProviders(err error, scheme string) error {
	return newError(err, CodeMultipleProviders, scheme)
}

func OperationProviderExists(err error, scheme string) error {
	return newError(err, CodeOperationProviderExists, scheme)
}

func AlreadyInited(err error, setting string) error {
	return newError(err, CodeAlreadyInited, setting)
}

func CreateProvider(err error, name string) error {
	return newError(err, CodeCreateProvider, name)
}

func LoadConfig(err error, source string) error {
	return newError(err, CodeLoadConfig, source)
}

func Backend(err error, op, uri string) error {
	return newError(err, CodeBackend, op, uri)
}

func NotInited(err error) error {
	return newError(err, CodeNotInited)
}

func NoLocalProvider(err error, path string) error {
	return newError(err, CodeNoLocalProvider, path)
}
