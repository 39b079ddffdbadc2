package git

// Checkout checks out a revision (tag, branch or commit) in detached HEAD mode.
func (g *realGit) Checkout(repoPath, rev string) error {
	_, err := runGit(repoPath, "checkout", "--quiet", "--detach", rev)
	return err
}
