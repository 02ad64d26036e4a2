package javadoc

import (
	"fmt"
	"strings"

	"github.com/meigma/javadoc/internal/xmltree"
	"github.com/meigma/javadoc/internal/zipfs"
)

// Archive entry naming. All class entries use the ".xml" extension and
// the descriptor lives at the archive root under a fixed name.
const (
	extension    = ".xml"
	infoFileName = "info" + extension
)

// optional is a string attribute that distinguishes "not specified"
// from any concrete value.
type optional struct {
	value string
	set   bool
}

// get returns the value and whether it was specified.
func (o optional) get() (string, bool) {
	return o.value, o.set
}

// optionalOf treats the empty string as "not specified".
func optionalOf(s string) optional {
	if s == "" {
		return optional{}
	}
	return optional{value: s, set: true}
}

// Metadata holds the descriptor attributes of a javadoc archive.
//
// Every field is optional; a missing descriptor, or a descriptor
// without an <info> root element, yields all-absent metadata.
// Metadata is immutable once built.
type Metadata struct {
	name       optional
	baseURL    optional
	projectURL optional
	version    optional
	urlPattern optional
}

// Name returns the library name (e.g. "jsoup").
func (m Metadata) Name() (string, bool) { return m.name.get() }

// BaseURL returns the base URL of the library's online documentation.
// When present it always ends with "/".
func (m Metadata) BaseURL() (string, bool) { return m.baseURL.get() }

// ProjectURL returns the URL of the library's project page.
func (m Metadata) ProjectURL() (string, bool) { return m.projectURL.get() }

// Version returns the library version the documentation was built from.
func (m Metadata) Version() (string, bool) { return m.version.get() }

// URLPattern returns the pattern used to build per-class URLs.
func (m Metadata) URLPattern() (string, bool) { return m.urlPattern.get() }

// loadMetadata reads the descriptor entry from an open archive.
//
// A missing descriptor or a root element other than <info> is not an
// error; both produce all-absent metadata. A descriptor that cannot be
// parsed is an I/O fault and propagates.
func loadMetadata(fsys *zipfs.FS) (Metadata, error) {
	if !fsys.Exists(infoFileName) {
		return Metadata{}, nil
	}

	rc, err := fsys.OpenEntry(infoFileName)
	if err != nil {
		return Metadata{}, err
	}
	root, err := xmltree.Parse(rc)
	cerr := rc.Close()
	if err != nil {
		return Metadata{}, fmt.Errorf("parse %s: %w", infoFileName, err)
	}
	if cerr != nil {
		return Metadata{}, cerr
	}

	if root.Name() != "info" {
		return Metadata{}, nil
	}

	attr := func(name string) string {
		v, _ := root.Attr(name)
		return v
	}

	baseURL := attr("baseUrl")
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return Metadata{
		name:       optionalOf(attr("name")),
		baseURL:    optionalOf(baseURL),
		projectURL: optionalOf(attr("projectUrl")),
		version:    optionalOf(attr("version")),
		urlPattern: optionalOf(attr("javadocUrlPattern")),
	}, nil
}
