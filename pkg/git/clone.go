package git

// Clone clones a repository to the specified path.
func (g *realGit) Clone(url, path string) error {
	_, err := runGit(".", "clone", "--quiet", url, path)
	return err
}
