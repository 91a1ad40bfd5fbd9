// Package billy adapts go-billy filesystems to the fsys.FS contract.
package billy

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/forgekit/textfile/fsys"
)

// FS implements fsys.FS using go-billy.
type FS struct {
	fs billy.Filesystem
}

// Open implements fsys.FS.Open.
//
//nolint:ireturn // API returns the fsys.File interface by design.
func (b *FS) Open(name string) (fsys.File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return &File{file: f, fs: b}, nil
}

// Create implements fsys.FS.Create.
//
//nolint:ireturn // API returns the fsys.File interface by design.
func (b *FS) Create(name string) (fsys.File, error) {
	f, err := b.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("billy: create %q: %w", name, err)
	}
	return &File{file: f, fs: b}, nil
}

// Stat implements fsys.FS.Stat.
func (b *FS) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

// Exists implements fsys.FS.Exists.
func (b *FS) Exists(name string) (bool, error) {
	_, err := b.fs.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("billy: stat %q: %w", name, err)
	}
}

// ReadFile implements fsys.FS.ReadFile.
func (b *FS) ReadFile(name string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, name)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", name, err)
	}
	return bts, nil
}

// WriteFile implements fsys.FS.WriteFile.
func (b *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, name, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", name, err)
	}
	return nil
}

// MkdirAll implements fsys.FS.MkdirAll.
func (b *FS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// Remove implements fsys.FS.Remove.
func (b *FS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("billy: remove %q: %w", name, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // returning an interface here exposes the adapter target.
func (b *FS) Raw() billy.Filesystem {
	return b.fs
}

// NewFS creates a new FS using the given go-billy filesystem.
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{fs: fsys}
}

// NewInMemoryFS creates a new in-memory filesystem.
func NewInMemoryFS() *FS {
	return &FS{fs: memfs.New()}
}

// NewOSFS creates a new OS filesystem rooted at path.
func NewOSFS(path string) *FS {
	return &FS{fs: osfs.New(path)}
}

// NewHostFS creates a new OS filesystem that acts like the native filesystem,
// accepting both absolute and working-directory-relative paths.
func NewHostFS() *FS {
	return &FS{fs: &hostOS{}}
}

// hostOS is a billy.Filesystem that acts like the native filesystem.
type hostOS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature dictated by upstream.
func (h *hostOS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (h *hostOS) Root() string {
	return "/"
}
