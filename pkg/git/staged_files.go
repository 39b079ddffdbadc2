package git

// StagedFiles lists files staged for commit, relative to the repository root.
// Deleted files are excluded since hooks cannot operate on them.
func (g *realGit) StagedFiles(workDir string) ([]string, error) {
	output, err := runGit(workDir, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}
