package store

// AddInstall records an installed shim stage for a repository.
// Recording the same stage twice is a no-op.
func (m *realManager) AddInstall(repoPath, stage string) error {
	unlock, err := m.fs.FileLock(m.config.StatusFile)
	if err != nil {
		return err
	}
	defer unlock()

	status, err := m.loadStatus()
	if err != nil {
		return err
	}

	install := status.Installs[repoPath]
	for _, s := range install.Stages {
		if s == stage {
			return nil
		}
	}
	install.Stages = append(install.Stages, stage)
	status.Installs[repoPath] = install

	return m.saveStatus(status)
}
