//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Glob(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.py"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "app.py"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "pkg", "util.py"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte(""), 0644))

	matches, err := fs.Glob(tmpDir, "**/*.py")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.py", "src/app.py", "src/pkg/util.py"}, matches)

	matches, err = fs.Glob(tmpDir, "*.md")
	assert.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, matches)
}

func TestFS_Glob_NoMatches(t *testing.T) {
	fs := NewFS()

	matches, err := fs.Glob(t.TempDir(), "**/*.py")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFS_Glob_DirectoriesExcluded(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir.py"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file.py"), []byte(""), 0644))

	matches, err := fs.Glob(tmpDir, "*.py")
	assert.NoError(t, err)
	assert.Equal(t, []string{"file.py"}, matches)
}
