package git

import (
	"fmt"
	"strings"
)

// RepositoryRoot returns the top-level directory of the repository containing workDir.
func (g *realGit) RepositoryRoot(workDir string) (string, error) {
	output, err := runGit(workDir, "rev-parse", "--show-toplevel")
	if err != nil {
		if strings.Contains(err.Error(), "not a git repository") {
			return "", fmt.Errorf("%w: %s", ErrNotARepository, workDir)
		}
		return "", err
	}
	return output, nil
}
