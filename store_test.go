package javadoc

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/javadoc/internal/testutil"
)

func writeArchive(t *testing.T, dir, name string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for entryName, content := range entries {
		ew, err := w.Create(entryName)
		require.NoError(t, err)
		_, err = ew.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestStore_ScanAndGet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArchive(t, dir, "jsoup.zip", map[string]string{
		"info.xml": testutil.InfoXML(map[string]string{"name": "jsoup", "version": "1.8.1"}),
	})
	writeArchive(t, dir, "guava.zip", map[string]string{"c.D.xml": "<class/>"})

	s := NewStore(dir)
	require.NoError(t, s.Scan())
	assert.Equal(t, []string{"guava", "jsoup"}, s.Names())

	lib, err := s.Get("jsoup")
	require.NoError(t, err)
	require.NotNil(t, lib)
	version, ok := lib.Version()
	assert.True(t, ok)
	assert.Equal(t, "1.8.1", version)

	// Case-insensitive, and repeated Gets return the same handle.
	again, err := s.Get("JSOUP")
	require.NoError(t, err)
	assert.Same(t, lib, again)
}

func TestStore_UnknownName(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())
	require.NoError(t, s.Scan())

	lib, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, lib)
}

func TestStore_IgnoresNonZipEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArchive(t, dir, "lib.zip", map[string]string{"a.B.xml": "<class/>"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.zip.d"), 0o755))

	s := NewStore(dir)
	require.NoError(t, s.Scan())
	assert.Equal(t, []string{"lib"}, s.Names())
}

func TestStore_ConcurrentGets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArchive(t, dir, "lib.zip", map[string]string{"a.B.xml": "<class/>"})

	s := NewStore(dir)
	require.NoError(t, s.Scan())

	const goroutines = 8
	libs := make([]*Library, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lib, err := s.Get("lib")
			assert.NoError(t, err)
			libs[i] = lib
		}()
	}
	wg.Wait()

	require.NotNil(t, libs[0])
	for _, lib := range libs[1:] {
		assert.Same(t, libs[0], lib)
	}
}

func TestStore_RescanPicksUpNewArchives(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Scan())
	assert.Empty(t, s.Names())

	writeArchive(t, dir, "late.zip", map[string]string{"a.B.xml": "<class/>"})
	require.NoError(t, s.Scan())
	assert.Equal(t, []string{"late"}, s.Names())
}
