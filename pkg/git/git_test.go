//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test")

	return dir
}

func TestGit_RepositoryRoot(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))

	root, err := git.RepositoryRoot(sub)
	require.NoError(t, err)

	// Resolve symlinks to make macOS /tmp comparisons stable.
	wantRoot, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestGit_RepositoryRoot_NotARepository(t *testing.T) {
	git := NewGit()

	_, err := git.RepositoryRoot(t.TempDir())
	assert.ErrorIs(t, err, ErrNotARepository)
}

func TestGit_StagedFiles(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("x = 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.py"), []byte("y = 2\n"), 0644))

	cmd := exec.Command("git", "add", "a.py")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())

	files, err := git.StagedFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, files)
}

func TestGit_HooksPath(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	hooksPath, err := git.HooksPath(dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(hooksPath))
	assert.Equal(t, "hooks", filepath.Base(hooksPath))
}
