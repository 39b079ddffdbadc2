//go:build unit

package hm

import (
	"bytes"
	"testing"

	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/prompt"
	"github.com/lerenn/hook-manager/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testHookSet() *hookset.Config {
	return &hookset.Config{
		Repos: []hookset.Repo{
			{
				Repo: hookset.LocalRepo,
				Hooks: []hookset.Hook{
					{ID: "ruff", Name: "ruff lint", Entry: "ruff", Language: hookset.LanguageSystem},
					{ID: "prettier", Entry: "prettier", Language: hookset.LanguageSystem},
				},
			},
		},
	}
}

func TestRun_StagedFilesByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := testHookSet()

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.git.EXPECT().StagedFiles("/repo").Return([]string{"a.py", "b.py"}, nil)
	m.runner.EXPECT().
		Run(cfg, runner.RunOptions{Files: []string{"a.py", "b.py"}}).
		Return(&runner.Report{Results: []runner.HookResult{
			{ID: "ruff", Name: "ruff lint", Status: runner.StatusPassed},
		}}, nil)

	report, err := h.Run(RunOpts{})
	require.NoError(t, err)
	assert.True(t, report.Success())
}

func TestRun_AllFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := testHookSet()

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.git.EXPECT().TrackedFiles("/repo").Return([]string{"a.py", "docs/index.md"}, nil)
	m.runner.EXPECT().
		Run(cfg, runner.RunOptions{Files: []string{"a.py", "docs/index.md"}}).
		Return(&runner.Report{}, nil)

	_, err := h.Run(RunOpts{AllFiles: true})
	require.NoError(t, err)
}

func TestRun_FilesGlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := testHookSet()

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.fs.EXPECT().Glob("/repo", "src/**/*.py").Return([]string{"src/main.py"}, nil)
	m.runner.EXPECT().
		Run(cfg, runner.RunOptions{Files: []string{"src/main.py"}}).
		Return(&runner.Report{}, nil)

	_, err := h.Run(RunOpts{FilesGlob: "src/**/*.py"})
	require.NoError(t, err)
}

func TestRun_SingleHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := testHookSet()

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.git.EXPECT().StagedFiles("/repo").Return([]string{"a.py"}, nil)
	m.runner.EXPECT().
		Run(cfg, runner.RunOptions{HookID: "ruff", Files: []string{"a.py"}}).
		Return(&runner.Report{}, nil)

	_, err := h.Run(RunOpts{HookID: "ruff"})
	require.NoError(t, err)
}

func TestRun_Interactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := testHookSet()

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.git.EXPECT().StagedFiles("/repo").Return([]string{"a.py"}, nil)
	m.prompt.EXPECT().
		PromptSelectHook([]prompt.HookChoice{
			{ID: "ruff", Name: "ruff lint", Repo: hookset.LocalRepo},
			{ID: "prettier", Repo: hookset.LocalRepo},
		}).
		Return(prompt.HookChoice{ID: "prettier", Repo: hookset.LocalRepo}, nil)
	m.runner.EXPECT().
		Run(cfg, runner.RunOptions{HookID: "prettier", Files: []string{"a.py"}}).
		Return(&runner.Report{}, nil)

	_, err := h.Run(RunOpts{Interactive: true})
	require.NoError(t, err)
}

func TestRun_InteractiveNoHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := &hookset.Config{}

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.git.EXPECT().StagedFiles("/repo").Return(nil, nil)

	_, err := h.Run(RunOpts{Interactive: true})
	assert.ErrorIs(t, err, ErrNoHooksConfigured)
}

func TestRun_MalformedConfigSurfacesBeforeExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().
		Load("/repo/.pre-commit-config.yaml").
		Return(nil, hookset.ErrConfigMalformed)
	// No runner or git file-listing calls may happen.

	_, err := h.Run(RunOpts{})
	assert.ErrorIs(t, err, hookset.ErrConfigMalformed)
}

func TestRun_NotAGitRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)

	m.git.EXPECT().RepositoryRoot(".").Return("", assert.AnError)

	_, err := h.Run(RunOpts{})
	assert.ErrorIs(t, err, ErrNotAGitRepository)
}

func TestPrintReport_ShowsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHM(ctrl)
	var buf bytes.Buffer
	h.out = &buf

	h.printReport(testHookSet(), &runner.Report{Results: []runner.HookResult{
		{ID: "ruff", Name: "ruff lint", Status: runner.StatusPassed},
		{ID: "prettier", Status: runner.StatusFailed, ExitCode: 1, Output: "boom"},
	}})

	assert.Contains(t, buf.String(), "ruff lint: passed")
	assert.Contains(t, buf.String(), "prettier: failed (exit code 1)")
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), `hook "prettier" failed`)
}

// Quiet mode keeps failure output but drops everything else.
func TestPrintReport_QuietKeepsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHM(ctrl)
	var buf bytes.Buffer
	h.out = &buf
	h.quiet = true

	h.printReport(testHookSet(), &runner.Report{Results: []runner.HookResult{
		{ID: "ruff", Name: "ruff lint", Status: runner.StatusPassed},
		{ID: "prettier", Status: runner.StatusSkipped},
		{ID: "mypy", Status: runner.StatusFailed, ExitCode: 2, Output: "bad types"},
	}})

	assert.NotContains(t, buf.String(), "passed")
	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "mypy: failed (exit code 2)")
	assert.Contains(t, buf.String(), "bad types")
}

func TestRun_StagePassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHM(ctrl)
	cfg := testHookSet()

	m.git.EXPECT().RepositoryRoot(".").Return("/repo", nil)
	m.hookset.EXPECT().Load("/repo/.pre-commit-config.yaml").Return(cfg, nil)
	m.git.EXPECT().StagedFiles("/repo").Return(nil, nil)
	m.runner.EXPECT().
		Run(cfg, runner.RunOptions{Stage: hookset.StagePrePush, Files: nil}).
		Return(&runner.Report{}, nil)

	_, err := h.Run(RunOpts{Stage: hookset.StagePrePush})
	require.NoError(t, err)
}
