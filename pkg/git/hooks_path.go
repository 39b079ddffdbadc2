package git

import "path/filepath"

// HooksPath returns the absolute path of the hooks directory for the
// repository containing workDir.
func (g *realGit) HooksPath(workDir string) (string, error) {
	output, err := runGit(workDir, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}

	// --git-path may return a path relative to workDir.
	if !filepath.IsAbs(output) {
		output = filepath.Join(workDir, output)
	}

	return filepath.Clean(output), nil
}
