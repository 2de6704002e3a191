package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytes(t *testing.T) {
	c, err := LoadBytes([]byte(`
exclude = ['**/.git', '**/node_modules']
color = 'never'
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"**/.git", "**/node_modules"}, c.Exclude)
	assert.Equal(t, "never", c.Color)
}

func TestLoadBytesEmpty(t *testing.T) {
	c, err := LoadBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Exclude)
	assert.Empty(t, c.Color)
}

func TestLoadBytesInvalid(t *testing.T) {
	_, err := LoadBytes([]byte(`color = 'sometimes'`))
	assert.Error(t, err)

	_, err = LoadBytes([]byte(`exclude = ['a\q']`))
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Empty(t, c.Exclude)
}
