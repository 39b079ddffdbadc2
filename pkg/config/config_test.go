//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `base_path: /home/user/.hm
status_file: /home/user/.hm/status.yaml
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	manager := NewManager()
	cfg, err := manager.LoadConfig(configPath)

	assert.NoError(t, err)
	assert.Equal(t, "/home/user/.hm", cfg.BasePath)
	assert.Equal(t, "/home/user/.hm/status.yaml", cfg.StatusFile)
}

func TestLoadConfig_NotFound(t *testing.T) {
	manager := NewManager()

	cfg, err := manager.LoadConfig("/non/existing/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("base_path: [unclosed"), 0644))

	manager := NewManager()
	cfg, err := manager.LoadConfig(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDefaultConfig(t *testing.T) {
	manager := NewManager()
	cfg := manager.DefaultConfig()

	assert.NotEmpty(t, cfg.BasePath)
	assert.NotEmpty(t, cfg.StatusFile)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := &Config{BasePath: "", StatusFile: "x"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{BasePath: "x", StatusFile: ""}
	assert.Error(t, cfg.Validate())

	cfg = &Config{BasePath: "x", StatusFile: "y"}
	assert.NoError(t, cfg.Validate())
}

func TestReposPath(t *testing.T) {
	cfg := &Config{BasePath: "/home/user/.hm", StatusFile: "/home/user/.hm/status.yaml"}
	assert.Equal(t, filepath.Join("/home/user/.hm", "repos"), cfg.ReposPath())
}

func TestLoadConfigWithFallback(t *testing.T) {
	cfg, err := LoadConfigWithFallback("/non/existing/config.yaml")

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.BasePath)
}
