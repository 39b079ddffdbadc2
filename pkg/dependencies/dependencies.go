// Package dependencies provides a centralized dependency container for the HM application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/forge"
	"github.com/lerenn/hook-manager/pkg/fs"
	"github.com/lerenn/hook-manager/pkg/git"
	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/logger"
	"github.com/lerenn/hook-manager/pkg/prompt"
	"github.com/lerenn/hook-manager/pkg/runner"
	"github.com/lerenn/hook-manager/pkg/store"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing             = errors.New("fs dependency is required but not set")
	ErrGitMissing            = errors.New("git dependency is required but not set")
	ErrConfigMissing         = errors.New("config dependency is required but not set")
	ErrHookSetManagerMissing = errors.New("hook set manager dependency is required but not set")
	ErrStoreManagerMissing   = errors.New("store manager dependency is required but not set")
	ErrForgeManagerMissing   = errors.New("forge manager dependency is required but not set")
	ErrLoggerMissing         = errors.New("logger dependency is required but not set")
	ErrPromptMissing         = errors.New("prompt dependency is required but not set")
	ErrRunnerProviderMissing = errors.New("runner provider dependency is required but not set")
)

// RunnerProvider creates a Runner bound to a repository root. Injecting
// the constructor keeps runner creation testable.
type RunnerProvider func(params runner.NewRunnerParams) runner.Runner

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS             fs.FS
	Git            git.Git
	Config         config.Manager
	HookSetManager hookset.Manager
	StoreManager   store.Manager
	ForgeManager   forge.ManagerInterface
	Logger         logger.Logger
	Prompt         prompt.Prompter
	RunnerProvider RunnerProvider
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	defaultFS := fs.NewFS()
	defaultLogger := logger.NewNoopLogger()
	return &Dependencies{
		FS:             defaultFS,
		Git:            git.NewGit(),
		HookSetManager: hookset.NewManager(defaultFS),
		ForgeManager:   forge.NewManager(defaultLogger),
		Logger:         defaultLogger,
		Prompt:         prompt.NewPrompt(),
		RunnerProvider: runner.NewRunner,
		// Note: Config and StoreManager are intentionally left nil as they
		// require the loaded application configuration
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithHookSetManager sets the hook set manager and returns the instance for chaining.
func (d *Dependencies) WithHookSetManager(hsm hookset.Manager) *Dependencies {
	d.HookSetManager = hsm
	return d
}

// WithStoreManager sets the store manager and returns the instance for chaining.
func (d *Dependencies) WithStoreManager(sm store.Manager) *Dependencies {
	d.StoreManager = sm
	return d
}

// WithForgeManager sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForgeManager(fm forge.ManagerInterface) *Dependencies {
	d.ForgeManager = fm
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithRunnerProvider sets the runner provider and returns the instance for chaining.
func (d *Dependencies) WithRunnerProvider(rp RunnerProvider) *Dependencies {
	d.RunnerProvider = rp
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.HookSetManager, ErrHookSetManagerMissing},
		{d.StoreManager, ErrStoreManagerMissing},
		{d.ForgeManager, ErrForgeManagerMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}

	if d.RunnerProvider == nil {
		return ErrRunnerProviderMissing
	}
	return nil
}
