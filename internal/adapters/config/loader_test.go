package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gunchamalik/wheelhouse/internal/adapters/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWheelfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wheelhouse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loader := &config.FileConfigLoader{}

	spec, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"), "Linux")
	require.NoError(t, err)

	assert.Equal(t, "Linux", spec.OS)
	assert.Equal(t, config.DefaultRepoURL, spec.RepoURL)
	assert.Equal(t, config.DefaultBranch, spec.Branch)
	assert.Equal(t, config.DefaultPrimaryPackage, spec.PrimaryPackage)
	assert.Equal(t, config.DefaultCompanionPackage, spec.CompanionPackage)
	assert.Equal(t, config.DefaultPythonVersion, spec.PythonVersion)
	assert.NotEmpty(t, spec.CacheRoot)
	assert.Equal(t, "python", spec.Toolchain.Python)
	assert.Equal(t, "pip", spec.Toolchain.Pip)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeWheelfile(t, `
upstream:
  repo: https://example.com/fork
  branch: stable
  package: my-terra
companion:
  package: my-aer
python:
  version: "3.12"
cache:
  dir: /var/cache/wheels
`)

	loader := &config.FileConfigLoader{}
	spec, err := loader.Load(path, "Linux")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/fork", spec.RepoURL)
	assert.Equal(t, "stable", spec.Branch)
	assert.Equal(t, "my-terra", spec.PrimaryPackage)
	assert.Equal(t, "my-aer", spec.CompanionPackage)
	assert.Equal(t, "3.12", spec.PythonVersion)
	assert.Equal(t, "/var/cache/wheels", spec.CacheRoot)
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeWheelfile(t, `
upstream:
  branch: stable
`)

	loader := &config.FileConfigLoader{}
	spec, err := loader.Load(path, "Linux")
	require.NoError(t, err)

	assert.Equal(t, "stable", spec.Branch)
	assert.Equal(t, config.DefaultRepoURL, spec.RepoURL)
	assert.Equal(t, config.DefaultPrimaryPackage, spec.PrimaryPackage)
}

func TestLoad_PlatformToolchain(t *testing.T) {
	path := writeWheelfile(t, `
platforms:
  Windows:
    python: py
    pip: py -m pip
  Linux:
    python: python3
`)

	loader := &config.FileConfigLoader{}

	spec, err := loader.Load(path, "Windows")
	require.NoError(t, err)
	assert.Equal(t, "py", spec.Toolchain.Python)
	assert.Equal(t, "py -m pip", spec.Toolchain.Pip)

	spec, err = loader.Load(path, "Linux")
	require.NoError(t, err)
	assert.Equal(t, "python3", spec.Toolchain.Python)
	assert.Equal(t, "pip", spec.Toolchain.Pip)

	// An OS without a platforms entry keeps the default toolchain.
	spec, err = loader.Load(path, "macOS")
	require.NoError(t, err)
	assert.Equal(t, "python", spec.Toolchain.Python)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeWheelfile(t, "upstream: [not a mapping")

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(path, "Linux")
	require.Error(t, err)
}

func TestLoad_UnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read anything")
	}

	path := writeWheelfile(t, "python:\n  version: \"3.12\"\n")
	require.NoError(t, os.Chmod(path, 0o000))

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(path, "Linux")
	require.Error(t, err)
}
