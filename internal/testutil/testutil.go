// Package testutil provides helpers for building javadoc archives in
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// BuildArchive writes a zip file containing the given entries into a
// temp directory and returns its path. Map keys are entry names, map
// values are entry contents.
func BuildArchive(t *testing.T, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}

	w := zip.NewWriter(f)
	for entryName, content := range entries {
		ew, err := w.Create(entryName)
		if err != nil {
			t.Fatalf("create entry %s: %v", entryName, err)
		}
		if _, err := ew.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", entryName, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return path
}

// InfoXML builds a descriptor entry with the given attributes.
// Attributes not present in the map are omitted entirely.
func InfoXML(attrs map[string]string) string {
	s := "<info"
	for _, name := range []string{"name", "baseUrl", "projectUrl", "version", "javadocUrlPattern"} {
		if v, ok := attrs[name]; ok {
			s += " " + name + `="` + v + `"`
		}
	}
	return s + "/>"
}
