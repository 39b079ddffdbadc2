package store

import "fmt"

// RemoveInstall removes a recorded shim stage for a repository.
func (m *realManager) RemoveInstall(repoPath, stage string) error {
	unlock, err := m.fs.FileLock(m.config.StatusFile)
	if err != nil {
		return err
	}
	defer unlock()

	status, err := m.loadStatus()
	if err != nil {
		return err
	}

	install, ok := status.Installs[repoPath]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInstallNotFound, repoPath)
	}

	var remaining []string
	found := false
	for _, s := range install.Stages {
		if s == stage {
			found = true
			continue
		}
		remaining = append(remaining, s)
	}
	if !found {
		return fmt.Errorf("%w: %s (stage %s)", ErrInstallNotFound, repoPath, stage)
	}

	if len(remaining) == 0 {
		delete(status.Installs, repoPath)
	} else {
		install.Stages = remaining
		status.Installs[repoPath] = install
	}

	return m.saveStatus(status)
}
