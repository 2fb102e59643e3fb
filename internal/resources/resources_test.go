package resources

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconIsPNG(t *testing.T) {
	res := Icon()

	assert.Equal(t, IconFilename, res.Name())
	assert.True(t, bytes.HasPrefix(res.Content(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestThemesBundled(t *testing.T) {
	names, err := fs.Glob(Themes(), "*.json")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"theme-dark.json", "theme-light.json"}, names)
}
