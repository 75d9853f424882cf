package pkg

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "abc", BytesToString([]byte("abc")))
	assert.Equal(t, "", BytesToString(nil))
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	filePath := path.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	exists, err := PathExists(filePath, false)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(filePath, true)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = PathExists(dir, true)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(path.Join(dir, "nope"), false)
	require.NoError(t, err)
	assert.False(t, exists)
}
