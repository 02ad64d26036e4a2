package javadoc

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/meigma/javadoc/internal/zipfs"
)

// Library is a handle onto one javadoc zip archive.
//
// The handle is identified by the archive's canonical filesystem path
// (symlinks resolved at construction) and carries the descriptor
// metadata loaded once at that time. It holds no open file between
// operations: every call that touches the archive opens its own
// short-lived view and closes it before returning.
//
// A Library is immutable after construction. Two handles over two
// different archive files may be used concurrently; concurrent use of
// one handle should be serialized by the caller.
type Library struct {
	path   string
	meta   Metadata
	logger *slog.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for debug output.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// Open creates a handle for the javadoc archive at path.
//
// The path is canonicalized immediately and the descriptor metadata is
// read from the archive. Opening fails if the path cannot be resolved
// or the archive cannot be read.
func Open(path string, opts ...Option) (*Library, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	l := &Library{path: canonical}
	for _, opt := range opts {
		opt(l)
	}

	err = l.withArchive(func(fsys *zipfs.FS) error {
		meta, err := loadMetadata(fsys)
		if err != nil {
			return err
		}
		l.meta = meta
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log().Debug("opened library", "path", canonical)
	return l, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (l *Library) log() *slog.Logger {
	if l.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.logger
}

// withArchive runs fn against a freshly opened archive view and closes
// the view on all exit paths. A close failure is reported only when fn
// itself succeeded, so it never masks the primary error.
func (l *Library) withArchive(fn func(*zipfs.FS) error) error {
	fsys, err := zipfs.Open(l.path)
	if err != nil {
		return err
	}
	ferr := fn(fsys)
	cerr := fsys.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}

// Path returns the canonical path of the archive file.
func (l *Library) Path() string {
	return l.path
}

// Metadata returns the descriptor metadata loaded at construction.
func (l *Library) Metadata() Metadata {
	return l.meta
}

// Name returns the library name from the descriptor.
func (l *Library) Name() (string, bool) { return l.meta.Name() }

// BaseURL returns the documentation base URL from the descriptor.
func (l *Library) BaseURL() (string, bool) { return l.meta.BaseURL() }

// ProjectURL returns the project page URL from the descriptor.
func (l *Library) ProjectURL() (string, bool) { return l.meta.ProjectURL() }

// Version returns the library version from the descriptor.
func (l *Library) Version() (string, bool) { return l.meta.Version() }

// URL resolves the documentation URL for the named class.
//
// With a URL pattern in the descriptor the pattern is expanded and
// frames is ignored. Otherwise the URL is built from the base URL by
// convention; frames selects the variant with the navigation-frame
// index. ok is false when the descriptor defines neither a pattern nor
// a base URL.
func (l *Library) URL(className string, frames bool) (url string, ok bool) {
	return resolveURL(l.meta, className, frames)
}

// Equal reports whether two handles refer to the same archive file.
// Handles are compared by canonical path only.
func (l *Library) Equal(other *Library) bool {
	return other != nil && l.path == other.path
}
