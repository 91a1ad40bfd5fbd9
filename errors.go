package textfile

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for branching with errors.Is. A classified *Error matches
// the sentinel corresponding to its code.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermission indicates the file exists but access was denied.
	ErrPermission = errors.New("permission denied")
)

// Error is a classified load failure. It carries the failing operation, the
// caller-supplied path, and the underlying cause, which remains reachable
// through errors.Is and errors.As.
type Error struct {
	Code ErrorCode // failure category
	Op   string    // operation that failed: "open", "create", "read"
	Path string    // path as supplied by the caller
	Err  error     // underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("textfile: %s %q: %s: %v", e.Op, e.Path, e.Code, e.Err)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether e matches one of the package sentinels based on its code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrPermission:
		return e.Code == CodePermission
	}
	return false
}

// Classify wraps err in an *Error with a code derived from the standard
// filesystem sentinels: fs.ErrNotExist maps to CodeNotFound, fs.ErrPermission
// to CodePermission, and everything else to CodeIO.
func Classify(op, path string, err error) *Error {
	code := CodeIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		code = CodePermission
	}
	return &Error{Code: code, Op: op, Path: path, Err: err}
}

// CodeOf extracts the ErrorCode from an error chain. It returns CodeUnknown
// when the chain contains no *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
