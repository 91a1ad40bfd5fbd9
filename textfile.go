// Package textfile loads the full contents of text files through a pluggable
// filesystem, classifying every failure into an ErrorCode the caller can
// branch on.
//
// Two loading styles are provided. Load propagates every failure to the
// caller as a classified *Error. LoadOrCreate recovers from a missing file by
// creating an empty one, and treats every other open or create failure as
// unrecoverable: it logs the category and cause and terminates the process.
package textfile

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/forgekit/textfile/fsys"
	"github.com/forgekit/textfile/fsys/billy"
	"github.com/forgekit/textfile/result"
)

// FatalFunc is invoked on unrecoverable failures. The default implementation
// logs the message and key/value pairs and exits the process.
type FatalFunc func(msg any, keyvals ...any)

// Loader reads text files through an fsys.FS. The zero value is not usable;
// construct with New.
type Loader struct {
	fs    fsys.FS
	root  string
	log   *log.Logger
	fatal FatalFunc
}

// Option is a functional option for configuring a Loader.
type Option func(*Loader)

// WithFS configures the loader to read through the given filesystem instead
// of the host OS filesystem.
func WithFS(filesystem fsys.FS) Option {
	return func(l *Loader) {
		l.fs = filesystem
	}
}

// WithRoot confines all paths beneath dir. Paths are joined to dir with
// lexical traversal and symlink escapes neutralized, so "../../etc/passwd"
// cannot reach outside the root.
func WithRoot(dir string) Option {
	return func(l *Loader) {
		l.root = dir
	}
}

// WithLogger configures the logger used for diagnostics and, unless
// overridden by WithFatalFunc, for the unrecoverable termination path.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		l.log = logger
	}
}

// WithFatalFunc replaces the process-terminating path taken by LoadOrCreate
// on unrecoverable failures. This is primarily a test seam; the replacement
// should not return if it wants to preserve LoadOrCreate's contract, but if
// it does, LoadOrCreate returns the classified error.
func WithFatalFunc(fn FatalFunc) Option {
	return func(l *Loader) {
		l.fatal = fn
	}
}

// New creates a Loader. Without options it reads from the host OS filesystem
// and logs through the default charm logger.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:  billy.NewHostFS(),
		log: log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fatal == nil {
		l.fatal = l.log.Fatal
	}
	return l
}

// Load opens the file at path and returns its full contents. Every failure,
// including a missing file, is returned as a classified *Error; Load never
// terminates the process and has no side effects.
func (l *Loader) Load(path string) (string, error) {
	p, err := l.resolve(path)
	if err != nil {
		return "", err
	}
	f, err := l.fs.Open(p)
	if err != nil {
		return "", Classify("open", path, err)
	}
	defer f.Close()
	return readAll(f, path)
}

// LoadOrCreate opens the file at path and returns its full contents. If the
// file does not exist it is created empty and "" is returned. Any other open
// failure, and any failure to create, is unrecoverable: the category and
// cause are logged and the process terminates. A read failure after a
// successful open is returned to the caller, never escalated.
func (l *Loader) LoadOrCreate(path string) (string, error) {
	p, err := l.resolve(path)
	if err != nil {
		return "", err
	}
	f, err := l.fs.Open(p)
	if err != nil {
		cerr := Classify("open", path, err)
		if cerr.Code != CodeNotFound {
			l.fatal("cannot open file", "path", path, "code", cerr.Code, "cause", cerr.Err)
			return "", cerr
		}
		f, err = l.fs.Create(p)
		if err != nil {
			cerr = Classify("create", path, err)
			l.fatal("cannot create file", "path", path, "code", cerr.Code, "cause", cerr.Err)
			return "", cerr
		}
		l.log.Debug("created missing file", "path", path)
	}
	defer f.Close()
	return readAll(f, path)
}

// MustLoad is like Load but panics on any failure. Use it only when the file
// is known to exist and be readable, such as test fixtures.
func (l *Loader) MustLoad(path string) string {
	text, err := l.Load(path)
	if err != nil {
		panic(err)
	}
	return text
}

// LoadEach strictly loads every path and collects the per-path outcome. A
// failing path does not stop the remaining loads.
func (l *Loader) LoadEach(paths ...string) map[string]result.Of[string] {
	out := make(map[string]result.Of[string], len(paths))
	for _, p := range paths {
		text, err := l.Load(p)
		if err != nil {
			out[p] = result.Error[string](err)
			continue
		}
		out[p] = result.Value(text)
	}
	return out
}

// resolve validates the caller-supplied path and applies root confinement.
func (l *Loader) resolve(path string) (string, error) {
	if path == "" {
		return "", &Error{Code: CodeInvalidInput, Op: "load", Path: path, Err: errors.New("path is empty")}
	}
	if l.root == "" {
		return path, nil
	}
	p, err := securejoin.SecureJoin(l.root, path)
	if err != nil {
		return "", &Error{Code: CodeInvalidInput, Op: "load", Path: path, Err: err}
	}
	return p, nil
}

// readAll drains f into a string, classifying read failures.
func readAll(f fsys.File, path string) (string, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return "", Classify("read", path, err)
	}
	return string(b), nil
}
