package javadoc

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/meigma/javadoc/internal/xmltree"
	"github.com/meigma/javadoc/internal/zipfs"
)

// Interface compliance.
var _ io.Closer = (*ClassIter)(nil)

// ClassDoc is the raw XML document of one class entry together with a
// back-reference to the library it came from.
//
// The schema of the document body belongs to the consumer; this
// package only locates and parses the entry.
type ClassDoc struct {
	// Name is the fully-qualified class name (e.g. "java.lang.String").
	Name string

	// Root is the document's root element.
	Root *xmltree.Node

	// Library is the handle the document was read from.
	Library *Library
}

// ClassIter enumerates the class names of an archive.
//
// The iterator holds the archive open until it is closed or exhausted.
// It is single-pass and not restartable. Callers that abandon
// iteration early must call Close; calling Next after exhaustion or
// Close is safe and yields nothing.
type ClassIter struct {
	fsys   *zipfs.FS
	names  []string
	pos    int
	closed bool
}

// Next returns the next class name. ok is false when the iterator is
// exhausted, at which point the archive has been released.
func (it *ClassIter) Next() (name string, ok bool) {
	if it.closed || it.pos >= len(it.names) {
		_ = it.Close() // best-effort release at exhaustion
		return "", false
	}
	name = strings.TrimSuffix(it.names[it.pos], extension)
	it.pos++
	return name, true
}

// Close releases the underlying archive handle. It is safe to call
// more than once.
func (it *ClassIter) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	return it.fsys.Close()
}

// All returns the remaining class names as a single-use sequence.
// The archive is released when the sequence ends, including when the
// caller breaks out of the loop early.
func (it *ClassIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		defer it.Close() //nolint:errcheck // release is best-effort once iteration ends
		for {
			name, ok := it.Next()
			if !ok {
				return
			}
			if !yield(name) {
				return
			}
		}
	}
}

// Classes enumerates all classes documented in the archive.
//
// Only root-level ".xml" entries are considered, the descriptor
// excluded; each name is the entry filename minus the extension. The
// returned iterator owns an open archive handle and must be closed
// (iterating to exhaustion also closes it).
func (l *Library) Classes() (*ClassIter, error) {
	// TODO: also surface entries nested in directory trees, the layout
	// ReadClass already falls back to.
	fsys, err := zipfs.Open(l.path)
	if err != nil {
		return nil, err
	}

	names := fsys.Names(func(name string) bool {
		return strings.HasSuffix(name, extension) && name != infoFileName
	})
	l.log().Debug("enumerated classes", "path", l.path, "count", len(names))

	return &ClassIter{fsys: fsys, names: names}, nil
}

// ReadClass reads the XML entry for the named class.
//
// Two entry layouts are tried in order: the flat form
// "java.lang.String.xml" and the nested form "java/lang/String.xml".
// When the class exists under neither, ReadClass returns (nil, nil);
// absence is not an error. Reading or parsing failures propagate.
func (l *Library) ReadClass(fullName string) (*ClassDoc, error) {
	var doc *ClassDoc
	err := l.withArchive(func(fsys *zipfs.FS) error {
		name := fullName + extension
		if !fsys.Exists(name) {
			name = strings.ReplaceAll(fullName, ".", "/") + extension
			if !fsys.Exists(name) {
				l.log().Debug("class not found", "path", l.path, "class", fullName)
				return nil
			}
		}

		rc, err := fsys.OpenEntry(name)
		if err != nil {
			return err
		}
		root, err := xmltree.Parse(rc)
		cerr := rc.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		if cerr != nil {
			return cerr
		}

		doc = &ClassDoc{Name: fullName, Root: root, Library: l}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
