package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the kind of a FileSystemError.
type Code string

// FileSystemError is the single error kind surfaced for expected failures.
// It carries a code, the context needed to describe the failure, and an
// optional cause.
type FileSystemError struct {
	Code Code
	Args []any
	Err  error
}

func (e *FileSystemError) Error() string {
	text := e.message()
	if e.Err != nil {
		text = fmt.Sprintf("%s: %v", text, e.Err)
	}

	return "vfs: " + text
}

func (e *FileSystemError) message() string {
	format, ok := messages[e.Code]
	if !ok {
		if len(e.Args) == 0 {
			return string(e.Code)
		}
		return fmt.Sprintf("%s %v", e.Code, e.Args)
	}

	// Missing args render as empty strings instead of %!s(MISSING).
	args := e.Args
	if want := strings.Count(format, "%"); len(args) < want {
		args = append([]any{}, args...)
		for len(args) < want {
			args = append(args, "")
		}
	}
	return fmt.Sprintf(format, args...)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// Is matches any FileSystemError carrying the same code, so the package
// level sentinels work with errors.Is.
func (e *FileSystemError) Is(target error) bool {
	var other *FileSystemError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// Arg returns the positional argument at i as a string.
func (e *FileSystemError) Arg(i int) string {
	if i < 0 || i >= len(e.Args) {
		return ""
	}
	return fmt.Sprint(e.Args[i])
}

// CodeOf returns the code of the first FileSystemError in err's chain.
func CodeOf(err error) (Code, bool) {
	var fsErr *FileSystemError
	if errors.As(err, &fsErr) {
		return fsErr.Code, true
	}
	return "", false
}

func newError(err error, code Code, args ...any) error {
	return &FileSystemError{
		Code: code,
		Args: args,
		Err:  err,
	}
}
