// Package zipfs provides a read-only view onto the internal file tree
// of a zip archive.
//
// The view is deliberately minimal: existence checks, entry streams,
// and root-level listings. Entries nested in directory trees are
// visible to Exists and Open but are never listed; javadoc archives
// keep their files at the root.
package zipfs

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/klauspost/compress/zip"
)

// FS is an open, read-only view of a zip archive.
//
// An FS holds the archive open until Close is called. Callers are
// expected to keep each FS short-lived: open, operate, close.
type FS struct {
	rc      *zip.ReadCloser
	entries map[string]*zip.File
	names   []string // central directory order
}

// Open opens the zip archive at path.
//
// The returned FS must be closed to release the underlying file handle.
func Open(path string) (*FS, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", path, err)
	}

	entries := make(map[string]*zip.File, len(rc.File))
	names := make([]string, 0, len(rc.File))
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := normalize(f.Name)
		if _, ok := entries[name]; !ok {
			names = append(names, name)
		}
		entries[name] = f
	}

	return &FS{rc: rc, entries: entries, names: names}, nil
}

// Close releases the underlying archive handle.
func (z *FS) Close() error {
	if z.rc == nil {
		return nil
	}
	err := z.rc.Close()
	z.rc = nil
	return err
}

// Exists reports whether an entry exists at the given internal path.
func (z *FS) Exists(name string) bool {
	_, ok := z.entries[normalize(name)]
	return ok
}

// OpenEntry opens a byte stream for the entry at the given internal path.
//
// The returned stream is only valid until the FS is closed. A missing
// entry is reported via fs.ErrNotExist.
func (z *FS) OpenEntry(name string) (io.ReadCloser, error) {
	f, ok := z.entries[normalize(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", name, err)
	}
	return rc, nil
}

// Names returns the names of all root-level entries matching pred.
//
// The order follows the archive's central directory.
func (z *FS) Names(pred func(name string) bool) []string {
	var names []string
	for _, name := range z.names {
		if strings.Contains(name, "/") {
			continue
		}
		if pred == nil || pred(name) {
			names = append(names, name)
		}
	}
	return names
}

// normalize strips leading slashes so that "/info.xml" and "info.xml"
// address the same entry.
func normalize(name string) string {
	return strings.TrimLeft(name, "/")
}
