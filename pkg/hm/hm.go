package hm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/dependencies"
	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/logger"
	"github.com/lerenn/hook-manager/pkg/runner"
	"github.com/lerenn/hook-manager/pkg/store"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=hm.go -destination=mockhm.gen.go -package=hm

// HM interface provides the hook manager operations.
type HM interface {
	// Run executes the configured hooks against candidate files.
	Run(opts RunOpts) (*runner.Report, error)
	// Install writes a Git hook shim invoking hm for a stage.
	Install(opts InstallOpts) error
	// Uninstall removes a Git hook shim previously written by hm.
	Uninstall(opts UninstallOpts) error
	// ListHooks returns the configured hooks in order.
	ListHooks() ([]HookInfo, error)
	// ValidateConfig loads and validates the hook configuration.
	ValidateConfig() error
	// Autoupdate updates pinned revisions of remote hook repositories.
	Autoupdate(opts AutoupdateOpts) ([]RepoUpdate, error)
	// Init writes a starter hook configuration file.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this HM instance.
	SetLogger(logger logger.Logger)
}

// NewHMParams contains parameters for creating a new HM instance.
type NewHMParams struct {
	Dependencies *dependencies.Dependencies
	// Config is the loaded application configuration. Defaults are used
	// when nil.
	Config *config.Config
	// HookSetFile overrides the hook configuration file path. Defaults to
	// .pre-commit-config.yaml at the repository root.
	HookSetFile string
	// Quiet suppresses all output except errors and hook failures.
	Quiet bool
}

type realHM struct {
	deps        *dependencies.Dependencies
	config      *config.Config
	hookSetFile string
	quiet       bool
	out         io.Writer
}

// NewHM creates a new HM instance.
func NewHM(params NewHMParams) (HM, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if deps.Config == nil {
		deps.Config = config.NewManager()
	}

	cfg := params.Config
	if cfg == nil {
		cfg = deps.Config.DefaultConfig()
	}

	if deps.StoreManager == nil {
		deps.StoreManager = store.NewManager(deps.FS, cfg)
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realHM{
		deps:        deps,
		config:      cfg,
		hookSetFile: params.HookSetFile,
		quiet:       params.Quiet,
		out:         os.Stdout,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (h *realHM) VerbosePrint(msg string, args ...interface{}) {
	if h.deps.Logger != nil {
		h.deps.Logger.Logf(msg, args...)
	}
}

// print writes informational output, suppressed in quiet mode.
func (h *realHM) print(format string, args ...interface{}) {
	if h.quiet {
		return
	}
	fmt.Fprintf(h.out, format, args...)
}

// printAlways writes output that quiet mode keeps, such as hook failures.
func (h *realHM) printAlways(format string, args ...interface{}) {
	fmt.Fprintf(h.out, format, args...)
}

// SetLogger sets the logger for this HM instance.
func (h *realHM) SetLogger(logger logger.Logger) {
	h.deps.Logger = logger
}

// repositoryRoot returns the root of the repository the command runs in.
func (h *realHM) repositoryRoot() (string, error) {
	root, err := h.deps.Git.RepositoryRoot(".")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotAGitRepository, err)
	}
	return root, nil
}

// hookSetPath returns the hook configuration file path for a repository.
func (h *realHM) hookSetPath(repoRoot string) string {
	if h.hookSetFile != "" {
		return h.hookSetFile
	}
	return filepath.Join(repoRoot, hookset.DefaultConfigFileName)
}

// loadHookSet loads the hook configuration of a repository.
func (h *realHM) loadHookSet(repoRoot string) (*hookset.Config, string, error) {
	path := h.hookSetPath(repoRoot)

	h.VerbosePrint("Loading hook configuration from %s", path)

	cfg, err := h.deps.HookSetManager.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// validStage reports whether the stage is one hm can manage.
func validStage(stage string) bool {
	switch stage {
	case hookset.StagePreCommit, hookset.StagePrePush, hookset.StageCommitMsg:
		return true
	}
	return false
}
