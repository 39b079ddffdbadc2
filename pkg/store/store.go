// Package store persists hook manager state: cloned hook repositories and
// installed Git hook shims.
package store

import (
	"fmt"

	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=store.go -destination=mockstore.gen.go -package=store

// Status represents the persisted state of the hook manager.
type Status struct {
	// Clones maps "url@rev" to the clone of an external hook repository.
	Clones map[string]Clone `yaml:"clones"`
	// Installs maps a repository root path to its installed shims.
	Installs map[string]Install `yaml:"installs"`
}

// Clone records a cloned external hook repository pinned to a revision.
type Clone struct {
	URL  string `yaml:"url"`
	Rev  string `yaml:"rev"`
	Path string `yaml:"path"`
}

// Install records the Git hook shims written for a repository.
type Install struct {
	Stages []string `yaml:"stages"`
}

// CloneKey builds the status key for a repository at a revision.
func CloneKey(url, rev string) string {
	return fmt.Sprintf("%s@%s", url, rev)
}

// Manager interface provides status file management functionality.
type Manager interface {
	// GetClone retrieves a recorded clone for a repository at a revision.
	GetClone(url, rev string) (*Clone, error)

	// AddClone records a clone of an external hook repository.
	AddClone(clone Clone) error

	// GetInstall retrieves the recorded shims for a repository.
	GetInstall(repoPath string) (*Install, error)

	// AddInstall records an installed shim stage for a repository.
	AddInstall(repoPath, stage string) error

	// RemoveInstall removes a recorded shim stage for a repository.
	RemoveInstall(repoPath, stage string) error
}

type realManager struct {
	fs     fs.FS
	config *config.Config
}

// NewManager creates a new Manager instance.
func NewManager(fs fs.FS, cfg *config.Config) Manager {
	return &realManager{
		fs:     fs,
		config: cfg,
	}
}

// loadStatus reads the status file, returning an initial status when the
// file does not exist yet.
func (m *realManager) loadStatus() (*Status, error) {
	exists, err := m.fs.Exists(m.config.StatusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check status file: %w", err)
	}
	if !exists {
		return initialStatus(), nil
	}

	data, err := m.fs.ReadFile(m.config.StatusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var status Status
	if err := yaml.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatusFileParse, err)
	}

	if status.Clones == nil {
		status.Clones = make(map[string]Clone)
	}
	if status.Installs == nil {
		status.Installs = make(map[string]Install)
	}

	return &status, nil
}

// saveStatus writes the status file atomically under a file lock.
func (m *realManager) saveStatus(status *Status) error {
	data, err := yaml.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to serialize status: %w", err)
	}

	if err := m.fs.WriteFileAtomic(m.config.StatusFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}

	return nil
}

func initialStatus() *Status {
	return &Status{
		Clones:   make(map[string]Clone),
		Installs: make(map[string]Install),
	}
}
