package hookset

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates a hook set file.
// Any problem here surfaces before a single hook runs.
func (m *realManager) Load(path string) (*Config, error) {
	exists, err := m.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check hook configuration file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook configuration file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
