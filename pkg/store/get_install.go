package store

import "fmt"

// GetInstall retrieves the recorded shims for a repository.
func (m *realManager) GetInstall(repoPath string) (*Install, error) {
	status, err := m.loadStatus()
	if err != nil {
		return nil, err
	}

	install, ok := status.Installs[repoPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInstallNotFound, repoPath)
	}

	return &install, nil
}
