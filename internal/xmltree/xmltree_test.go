package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader(
		`<info name="jsoup" baseUrl="http://x/"><extra note="n">text</extra></info>`,
	))
	require.NoError(t, err)

	assert.Equal(t, "info", root.Name())

	name, ok := root.Attr("name")
	assert.True(t, ok)
	assert.Equal(t, "jsoup", name)

	_, ok = root.Attr("missing")
	assert.False(t, ok)

	child, ok := root.Child("extra")
	require.True(t, ok)
	assert.Equal(t, "text", child.Text)

	_, ok = root.Child("nope")
	assert.False(t, ok)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("<info"))
	require.Error(t, err)
}
