//go:build unit

package store

import (
	"testing"

	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/fs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func testConfig() *config.Config {
	return &config.Config{
		BasePath:   "/home/user/.hm",
		StatusFile: "/home/user/.hm/status.yaml",
	}
}

func TestGetClone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	cfg := testConfig()

	manager := &realManager{fs: mockFS, config: cfg}

	expected := Clone{
		URL:  "https://github.com/pre-commit/mirrors-prettier",
		Rev:  "v3.1.0",
		Path: "/home/user/.hm/repos/mirrors-prettier-v3.1.0",
	}

	existing := &Status{
		Clones: map[string]Clone{
			CloneKey(expected.URL, expected.Rev): expected,
		},
		Installs: make(map[string]Install),
	}
	data, _ := yaml.Marshal(existing)

	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.hm/status.yaml").Return(data, nil)

	clone, err := manager.GetClone(expected.URL, expected.Rev)

	assert.NoError(t, err)
	assert.Equal(t, &expected, clone)
}

func TestGetClone_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(false, nil)

	clone, err := manager.GetClone("https://github.com/org/hooks", "v1.0.0")

	assert.Nil(t, clone)
	assert.ErrorIs(t, err, ErrCloneNotFound)
}

func TestGetClone_MalformedStatusFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS, config: testConfig()}

	mockFS.EXPECT().Exists("/home/user/.hm/status.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.hm/status.yaml").Return([]byte("clones: [broken"), nil)

	clone, err := manager.GetClone("https://github.com/org/hooks", "v1.0.0")

	assert.Nil(t, clone)
	assert.ErrorIs(t, err, ErrStatusFileParse)
}
