// Package runner executes a hook set against a set of candidate files.
//
// Execution is strictly sequential: each hook is a blocking external
// process, and with fail_fast enabled the first failure aborts the rest
// of the sequence.
package runner

import (
	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/fs"
	"github.com/lerenn/hook-manager/pkg/git"
	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/logger"
	"github.com/lerenn/hook-manager/pkg/store"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mockrunner.gen.go -package=runner

// RunOptions controls a single run of a hook set.
type RunOptions struct {
	// Stage is the Git hook stage being run (defaults to pre-commit).
	Stage string
	// HookID restricts the run to a single hook when non-empty.
	HookID string
	// Files are the candidate files, relative to the repository root.
	Files []string
}

// Runner interface executes hook sets.
type Runner interface {
	// Run executes the applicable hooks of cfg in order and returns a
	// report. The returned error is reserved for infrastructure problems
	// (clone failures, unreadable files); hook failures are reported in
	// the report itself.
	Run(cfg *hookset.Config, opts RunOptions) (*Report, error)

	// SetLogger sets the logger for this runner instance.
	SetLogger(logger logger.Logger)
}

// NewRunnerParams contains parameters for creating a new Runner instance.
type NewRunnerParams struct {
	FS           fs.FS
	Git          git.Git
	StoreManager store.Manager
	Executor     Executor
	Config       *config.Config
	Logger       logger.Logger
	// RepoRoot is the repository the hooks run against; it is the working
	// directory of every hook invocation.
	RepoRoot string
}

type realRunner struct {
	fs           fs.FS
	git          git.Git
	storeManager store.Manager
	executor     Executor
	config       *config.Config
	logger       logger.Logger
	repoRoot     string
}

// NewRunner creates a new Runner instance.
func NewRunner(params NewRunnerParams) Runner {
	if params.Executor == nil {
		params.Executor = NewExecutor()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realRunner{
		fs:           params.FS,
		git:          params.Git,
		storeManager: params.StoreManager,
		executor:     params.Executor,
		config:       params.Config,
		logger:       params.Logger,
		repoRoot:     params.RepoRoot,
	}
}

// SetLogger sets the logger for this runner instance.
func (r *realRunner) SetLogger(logger logger.Logger) {
	r.logger = logger
}
