//go:build unit

package hm

import (
	"io"
	"testing"

	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/logger"
	"github.com/lerenn/hook-manager/pkg/dependencies"
	"github.com/lerenn/hook-manager/pkg/forge"
	"github.com/lerenn/hook-manager/pkg/fs"
	"github.com/lerenn/hook-manager/pkg/git"
	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/prompt"
	"github.com/lerenn/hook-manager/pkg/runner"
	"github.com/lerenn/hook-manager/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// hmMocks groups the mocked dependencies of a realHM under test.
type hmMocks struct {
	fs      *fs.MockFS
	git     *git.MockGit
	hookset *hookset.MockManager
	store   *store.MockManager
	forge   *forge.MockManagerInterface
	prompt  *prompt.MockPrompter
	runner  *runner.MockRunner
}

func newTestHM(ctrl *gomock.Controller) (*realHM, *hmMocks) {
	m := &hmMocks{
		fs:      fs.NewMockFS(ctrl),
		git:     git.NewMockGit(ctrl),
		hookset: hookset.NewMockManager(ctrl),
		store:   store.NewMockManager(ctrl),
		forge:   forge.NewMockManagerInterface(ctrl),
		prompt:  prompt.NewMockPrompter(ctrl),
		runner:  runner.NewMockRunner(ctrl),
	}

	deps := dependencies.New().
		WithFS(m.fs).
		WithGit(m.git).
		WithConfig(config.NewManager()).
		WithHookSetManager(m.hookset).
		WithStoreManager(m.store).
		WithForgeManager(m.forge).
		WithPrompt(m.prompt).
		WithRunnerProvider(func(_ runner.NewRunnerParams) runner.Runner {
			return m.runner
		})

	h := &realHM{
		deps: deps,
		config: &config.Config{
			BasePath:   "/home/user/.hm",
			StatusFile: "/home/user/.hm/status.yaml",
		},
		out: io.Discard,
	}
	return h, m
}

func TestVerbosePrint_ForwardsFormatAndArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHM(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	h.deps.Logger = mockLogger

	// Percent signs in arguments must survive untouched.
	mockLogger.EXPECT().Logf("Loading hook configuration from %s", "/repo/100%-config.yaml")

	h.VerbosePrint("Loading hook configuration from %s", "/repo/100%-config.yaml")
}

func TestNewHM_DefaultDependencies(t *testing.T) {
	h, err := NewHM(NewHMParams{})
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestNewHM_InvalidDependencies(t *testing.T) {
	deps := dependencies.New()
	deps.FS = nil

	_, err := NewHM(NewHMParams{Dependencies: deps})
	assert.ErrorIs(t, err, dependencies.ErrFSMissing)
}

func TestHookSetPath_Default(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHM(ctrl)
	assert.Equal(t, "/repo/.pre-commit-config.yaml", h.hookSetPath("/repo"))
}

func TestHookSetPath_Override(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHM(ctrl)
	h.hookSetFile = "/elsewhere/hooks.yaml"
	assert.Equal(t, "/elsewhere/hooks.yaml", h.hookSetPath("/repo"))
}

func TestValidStage(t *testing.T) {
	assert.True(t, validStage(hookset.StagePreCommit))
	assert.True(t, validStage(hookset.StagePrePush))
	assert.True(t, validStage(hookset.StageCommitMsg))
	assert.False(t, validStage("post-commit"))
	assert.False(t, validStage(""))
}
