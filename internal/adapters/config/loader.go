// Package config provides the configuration loader for wheelhouse.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults for the qiskit install this tool was extracted from. A config
// file overrides any of them.
const (
	DefaultRepoURL          = "https://github.com/Qiskit/qiskit-terra"
	DefaultBranch           = "main"
	DefaultPrimaryPackage   = "qiskit-terra"
	DefaultCompanionPackage = "qiskit-aer"
	DefaultPythonVersion    = "3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the configuration at path and returns the spec for osID. A
// missing file is not an error; the defaults stand in for it so the step
// runs unconfigured in CI.
func (l *FileConfigLoader) Load(path, osID string) (*domain.InstallSpec, error) {
	spec := defaultSpec(osID)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return spec, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var wheelfile Wheelfile
	if err := yaml.Unmarshal(data, &wheelfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	applyWheelfile(spec, &wheelfile, osID)
	return spec, nil
}

func defaultSpec(osID string) *domain.InstallSpec {
	return &domain.InstallSpec{
		OS:               osID,
		PythonVersion:    DefaultPythonVersion,
		RepoURL:          DefaultRepoURL,
		Branch:           DefaultBranch,
		PrimaryPackage:   DefaultPrimaryPackage,
		CompanionPackage: DefaultCompanionPackage,
		CacheRoot:        defaultCacheRoot(),
		Toolchain:        domain.Toolchain{Python: "python", Pip: "pip"},
	}
}

func defaultCacheRoot() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wheelhouse")
	}
	return filepath.Join(base, "wheelhouse")
}

func applyWheelfile(spec *domain.InstallSpec, wheelfile *Wheelfile, osID string) {
	if wheelfile.Upstream.Repo != "" {
		spec.RepoURL = wheelfile.Upstream.Repo
	}
	if wheelfile.Upstream.Branch != "" {
		spec.Branch = wheelfile.Upstream.Branch
	}
	if wheelfile.Upstream.Package != "" {
		spec.PrimaryPackage = wheelfile.Upstream.Package
	}
	if wheelfile.Companion.Package != "" {
		spec.CompanionPackage = wheelfile.Companion.Package
	}
	if wheelfile.Python.Version != "" {
		spec.PythonVersion = wheelfile.Python.Version
	}
	if wheelfile.Cache.Dir != "" {
		spec.CacheRoot = wheelfile.Cache.Dir
	}
	if tc, ok := wheelfile.Platforms[osID]; ok {
		if tc.Python != "" {
			spec.Toolchain.Python = tc.Python
		}
		if tc.Pip != "" {
			spec.Toolchain.Pip = tc.Pip
		}
	}
}
