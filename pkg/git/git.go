// Package git provides Git command execution capabilities for the hook manager.
package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides Git command execution capabilities.
type Git interface {
	// RepositoryRoot returns the top-level directory of the repository
	// containing workDir.
	RepositoryRoot(workDir string) (string, error)

	// HooksPath returns the absolute path of the hooks directory for the
	// repository containing workDir.
	HooksPath(workDir string) (string, error)

	// StagedFiles lists files staged for commit (added, copied, modified
	// or renamed), relative to the repository root.
	StagedFiles(workDir string) ([]string, error)

	// TrackedFiles lists all files tracked by Git, relative to the
	// repository root.
	TrackedFiles(workDir string) ([]string, error)

	// Clone clones a repository to the specified path.
	Clone(url, path string) error

	// Checkout checks out a revision (tag, branch or commit) in detached
	// HEAD mode.
	Checkout(repoPath, rev string) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
