// Package forge resolves hook repository revisions against code forges.
package forge

import (
	"fmt"

	"github.com/lerenn/hook-manager/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mockforge.gen.go -package=forge

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// SupportsURL reports whether the forge can resolve the repository URL
	SupportsURL(repoURL string) bool

	// LatestRev returns the newest release tag of the repository,
	// falling back to the newest plain tag
	LatestRev(repoURL string) (string, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForgeForURL returns the forge able to resolve the given repository URL
	GetForgeForURL(repoURL string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	// Register forge implementations
	m.registerForges()

	return m
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges() {
	github := NewGitHub()
	m.forges[github.Name()] = github
}

// GetForgeForURL returns the forge able to resolve the given repository URL.
func (m *Manager) GetForgeForURL(repoURL string) (Forge, error) {
	for _, forge := range m.forges {
		if forge.SupportsURL(repoURL) {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, repoURL)
}
