package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.NotEqual(t, os.Stdout, f)
	assert.FileExists(t, path)
}
