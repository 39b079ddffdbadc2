package store

import "fmt"

// AddClone records a clone of an external hook repository.
func (m *realManager) AddClone(clone Clone) error {
	unlock, err := m.fs.FileLock(m.config.StatusFile)
	if err != nil {
		return err
	}
	defer unlock()

	status, err := m.loadStatus()
	if err != nil {
		return err
	}

	key := CloneKey(clone.URL, clone.Rev)
	if _, ok := status.Clones[key]; ok {
		return fmt.Errorf("%w: %s", ErrCloneAlreadyExists, key)
	}

	status.Clones[key] = clone

	return m.saveStatus(status)
}
