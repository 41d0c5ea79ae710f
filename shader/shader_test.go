package shader

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFilters(t *testing.T) {
	assert.Equal(t, FragmentPath, ForFilters(false, false).Fragment)
	assert.Equal(t, GrayscaleFragmentPath, ForFilters(true, false).Fragment)
	assert.Equal(t, PixelateFragmentPath, ForFilters(false, true).Fragment)
	assert.Equal(t, GrayscaleFragmentPath, ForFilters(true, true).Fragment)
	assert.Equal(t, VertexPath, ForFilters(true, true).Vertex)
}

func TestBuiltinSourcesLoad(t *testing.T) {
	for _, p := range []string{VertexPath, FragmentPath, GrayscaleFragmentPath, PixelateFragmentPath} {
		src, err := Load(Sources(), p)
		require.NoError(t, err, p)
		assert.Contains(t, src, "#version 300 es", p)
		assert.Contains(t, src, "void main()", p)
	}
}

func TestLoadFromDirectory(t *testing.T) {
	fsys := fstest.MapFS{"custom.frag": {Data: []byte("void main() {}")}}

	src, err := Load(fsys, "custom.frag")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)

	_, err = Load(fsys, "missing.frag")
	assert.Error(t, err)
}
