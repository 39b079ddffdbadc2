package git

// TrackedFiles lists all files tracked by Git, relative to the repository root.
func (g *realGit) TrackedFiles(workDir string) ([]string, error) {
	output, err := runGit(workDir, "ls-files")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}
