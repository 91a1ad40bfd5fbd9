// Package fsys defines the filesystem abstraction the textfile loader reads
// through. Implementations must surface the standard io/fs error sentinels
// (fs.ErrNotExist, fs.ErrPermission) in their error chains so callers can
// classify failures.
package fsys

import (
	"io/fs"
	"os"
)

// File represents an open file handle supporting basic I/O operations.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
}

// FS is the filesystem contract used by the loader.
type FS interface {
	// Open opens the named file for reading.
	Open(name string) (File, error)

	// Create creates or truncates the named file and opens it for
	// reading and writing.
	Create(name string) (File, error)

	// Stat returns file info for the named file.
	Stat(name string) (os.FileInfo, error)

	// Exists reports whether the named file exists.
	Exists(name string) (bool, error)

	// ReadFile reads the entire named file.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// MkdirAll creates the named directory and any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes the named file.
	Remove(name string) error
}
