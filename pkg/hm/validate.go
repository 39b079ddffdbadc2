package hm

// ValidateConfig loads and validates the hook configuration, reporting
// the first problem found.
func (h *realHM) ValidateConfig() error {
	root, err := h.repositoryRoot()
	if err != nil {
		return err
	}

	_, path, err := h.loadHookSet(root)
	if err != nil {
		return err
	}

	h.print("%s is valid\n", path)
	return nil
}
