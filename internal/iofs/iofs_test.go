package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ixsel/ixsel/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	for _, dir := range []string{
		filepath.Join(tmpDir, ".config", "ixsel"),
		filepath.Join(tmpDir, ".cache", "ixsel"),
		filepath.Join(tmpDir, ".local", "share", "ixsel", "logs"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(),
			"Directory should exist: %s", dir)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
}

// TestEnsureConfigFile_CreatesFile verifies the default config file is
// written once and never overwritten.
func TestEnsureConfigFile_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	err := EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	cfgPath := config.ConfigFilePath(tmpDir)
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data),
		"Written file should match the embedded template")

	// A user edit must survive a second call.
	require.NoError(t,
		os.WriteFile(cfgPath, []byte("jobs_number: 3\n"), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))

	data, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "jobs_number: 3\n", string(data),
		"Existing config should not be overwritten")
}

// TestConfigYAML_MatchesDefaults verifies the embedded template decodes
// to the compiled-in defaults.
func TestConfigYAML_MatchesDefaults(t *testing.T) {
	var fromYAML config.Config
	err := yaml.Unmarshal([]byte(ConfigYAML), &fromYAML)
	require.NoError(t, err,
		"Embedded config.yaml should be valid YAML")

	defaults := config.New()
	assert.Equal(t, defaults.Solver.TimeLimitSec,
		fromYAML.Solver.TimeLimitSec)
	assert.Equal(t, defaults.Solver.Multiplier,
		fromYAML.Solver.Multiplier)
	assert.Equal(t, defaults.Log, fromYAML.Log)

	logPath := filepath.Join(config.LogDir("~"), "ixsel.log")
	assert.Contains(t, ConfigYAML, logPath,
		"Template comments should name the real log file location")
}

func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	require.NoError(t, touchDir(newDir))

	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, touchDir(newDir),
		"touching an existing directory should succeed")
}
