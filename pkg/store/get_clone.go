package store

import "fmt"

// GetClone retrieves a recorded clone for a repository at a revision.
func (m *realManager) GetClone(url, rev string) (*Clone, error) {
	status, err := m.loadStatus()
	if err != nil {
		return nil, err
	}

	clone, ok := status.Clones[CloneKey(url, rev)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCloneNotFound, CloneKey(url, rev))
	}

	return &clone, nil
}
