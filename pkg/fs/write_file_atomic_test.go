//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "status.yaml")

	err := fs.WriteFileAtomic(target, []byte("first"), 0644)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "first", string(content))

	// Overwrite is atomic as well
	err = fs.WriteFileAtomic(target, []byte("second"), 0644)
	require.NoError(t, err)

	content, err = os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(content))

	// No stray temporary files left behind
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
