package hookset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Save serializes the hook set back to the file, preserving repo and hook
// order. Used by autoupdate to rewrite pinned revisions in place.
func (m *realManager) Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize hook configuration: %w", err)
	}

	if err := m.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write hook configuration file: %w", err)
	}

	return nil
}
