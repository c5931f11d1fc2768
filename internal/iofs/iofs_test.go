package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "dexnorm")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "dexnorm",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")

	// Second call should succeed
	err = EnsureDirs(tmpDir)
	require.NoError(t, err)
}

// TestTouchDir_FileInTheWay verifies a regular file is not accepted as
// a directory.
func TestTouchDir_FileInTheWay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := touchDir(path)
	assert.Error(t, err)
}

// TestEnsureConfigFile verifies config file is created from the
// embedded template and never overwritten.
func TestEnsureConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "dexnorm",
		"config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content),
		"Config file content should match embedded template")

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	customContent := "# Custom config\nlog:\n  level: debug\n"
	err = os.WriteFile(configPath, []byte(customContent), 0644)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

// TestConfigYAML_Embedded verifies the embedded template is valid YAML
// with every configuration section.
func TestConfigYAML_Embedded(t *testing.T) {
	var data map[string]any
	err := yaml.Unmarshal([]byte(ConfigYAML), &data)
	require.NoError(t, err)

	for _, v := range []string{"data", "releases", "pipeline", "database", "log"} {
		assert.Contains(t, data, v)
	}

	releases, ok := data["releases"].(map[string]any)
	require.True(t, ok)
	prio, ok := releases["priority"].([]any)
	require.True(t, ok)
	assert.Equal(t, "scarlet-violet", prio[0])
}
