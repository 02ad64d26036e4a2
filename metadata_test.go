package javadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/javadoc/internal/testutil"
	"github.com/meigma/javadoc/internal/zipfs"
)

func loadFromArchive(t *testing.T, entries map[string]string) Metadata {
	t.Helper()

	path := testutil.BuildArchive(t, "lib.zip", entries)
	fsys, err := zipfs.Open(path)
	require.NoError(t, err)
	defer fsys.Close()

	meta, err := loadMetadata(fsys)
	require.NoError(t, err)
	return meta
}

func assertAllAbsent(t *testing.T, meta Metadata) {
	t.Helper()

	_, ok := meta.Name()
	assert.False(t, ok)
	_, ok = meta.BaseURL()
	assert.False(t, ok)
	_, ok = meta.ProjectURL()
	assert.False(t, ok)
	_, ok = meta.Version()
	assert.False(t, ok)
	_, ok = meta.URLPattern()
	assert.False(t, ok)
}

func TestLoadMetadata_AllAttributes(t *testing.T) {
	t.Parallel()

	meta := loadFromArchive(t, map[string]string{
		"info.xml": testutil.InfoXML(map[string]string{
			"name":              "jsoup",
			"baseUrl":           "http://jsoup.org/apidocs",
			"projectUrl":        "http://jsoup.org",
			"version":           "1.8.1",
			"javadocUrlPattern": "{baseUrl}{full /}.html",
		}),
	})

	name, ok := meta.Name()
	assert.True(t, ok)
	assert.Equal(t, "jsoup", name)

	base, ok := meta.BaseURL()
	assert.True(t, ok)
	assert.Equal(t, "http://jsoup.org/apidocs/", base, "baseUrl is normalized to end in a slash")

	project, ok := meta.ProjectURL()
	assert.True(t, ok)
	assert.Equal(t, "http://jsoup.org", project)

	version, ok := meta.Version()
	assert.True(t, ok)
	assert.Equal(t, "1.8.1", version)

	pattern, ok := meta.URLPattern()
	assert.True(t, ok)
	assert.Equal(t, "{baseUrl}{full /}.html", pattern)
}

func TestLoadMetadata_BaseURLNormalizationIdempotent(t *testing.T) {
	t.Parallel()

	meta := loadFromArchive(t, map[string]string{
		"info.xml": testutil.InfoXML(map[string]string{"baseUrl": "http://x.com/docs/"}),
	})

	base, ok := meta.BaseURL()
	assert.True(t, ok)
	assert.Equal(t, "http://x.com/docs/", base)
}

func TestLoadMetadata_MissingDescriptor(t *testing.T) {
	t.Parallel()

	meta := loadFromArchive(t, map[string]string{"a.B.xml": "<class/>"})
	assertAllAbsent(t, meta)
}

func TestLoadMetadata_WrongRootElement(t *testing.T) {
	t.Parallel()

	meta := loadFromArchive(t, map[string]string{"info.xml": "<notinfo name=\"x\"/>"})
	assertAllAbsent(t, meta)
}

func TestLoadMetadata_EmptyAttributesAreAbsent(t *testing.T) {
	t.Parallel()

	meta := loadFromArchive(t, map[string]string{
		"info.xml": `<info name="" baseUrl="" version=""/>`,
	})
	assertAllAbsent(t, meta)
}

func TestLoadMetadata_MalformedXML(t *testing.T) {
	t.Parallel()

	path := testutil.BuildArchive(t, "lib.zip", map[string]string{"info.xml": "<info"})
	fsys, err := zipfs.Open(path)
	require.NoError(t, err)
	defer fsys.Close()

	_, err = loadMetadata(fsys)
	require.Error(t, err)
}
