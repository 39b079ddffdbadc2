//go:build unit

package store

import (
	"os"
	"testing"

	"github.com/lerenn/hook-manager/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestAddInstall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	mockFS.EXPECT().FileLock("/home/user/.hm/status.yaml").Return(func() {}, nil)
	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(false, nil)

	var written []byte
	mockFS.EXPECT().
		WriteFileAtomic("/home/user/.hm/status.yaml", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			written = data
			return nil
		})

	require.NoError(t, manager.AddInstall("/home/user/project", "pre-commit"))

	var status Status
	require.NoError(t, yaml.Unmarshal(written, &status))
	assert.Equal(t, []string{"pre-commit"}, status.Installs["/home/user/project"].Stages)
}

func TestAddInstall_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	existing := &Status{
		Clones: make(map[string]Clone),
		Installs: map[string]Install{
			"/home/user/project": {Stages: []string{"pre-commit"}},
		},
	}
	data, _ := yaml.Marshal(existing)

	mockFS.EXPECT().FileLock("/home/user/.hm/status.yaml").Return(func() {}, nil)
	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.hm/status.yaml").Return(data, nil)

	// No write expected: the stage is already recorded.
	require.NoError(t, manager.AddInstall("/home/user/project", "pre-commit"))
}

func TestRemoveInstall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	existing := &Status{
		Clones: make(map[string]Clone),
		Installs: map[string]Install{
			"/home/user/project": {Stages: []string{"pre-commit", "pre-push"}},
		},
	}
	data, _ := yaml.Marshal(existing)

	mockFS.EXPECT().FileLock("/home/user/.hm/status.yaml").Return(func() {}, nil)
	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.hm/status.yaml").Return(data, nil)

	var written []byte
	mockFS.EXPECT().
		WriteFileAtomic("/home/user/.hm/status.yaml", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			written = data
			return nil
		})

	require.NoError(t, manager.RemoveInstall("/home/user/project", "pre-commit"))

	var status Status
	require.NoError(t, yaml.Unmarshal(written, &status))
	assert.Equal(t, []string{"pre-push"}, status.Installs["/home/user/project"].Stages)
}

func TestRemoveInstall_LastStageRemovesEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	existing := &Status{
		Clones: make(map[string]Clone),
		Installs: map[string]Install{
			"/home/user/project": {Stages: []string{"pre-commit"}},
		},
	}
	data, _ := yaml.Marshal(existing)

	mockFS.EXPECT().FileLock("/home/user/.hm/status.yaml").Return(func() {}, nil)
	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.hm/status.yaml").Return(data, nil)

	var written []byte
	mockFS.EXPECT().
		WriteFileAtomic("/home/user/.hm/status.yaml", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			written = data
			return nil
		})

	require.NoError(t, manager.RemoveInstall("/home/user/project", "pre-commit"))

	var status Status
	require.NoError(t, yaml.Unmarshal(written, &status))
	assert.NotContains(t, status.Installs, "/home/user/project")
}

func TestRemoveInstall_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	mockFS.EXPECT().FileLock("/home/user/.hm/status.yaml").Return(func() {}, nil)
	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(false, nil)

	err := manager.RemoveInstall("/home/user/project", "pre-commit")
	assert.ErrorIs(t, err, ErrInstallNotFound)
}
