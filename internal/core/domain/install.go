// Package domain contains the core value objects for the install pipeline.
package domain

import "go.trai.ch/zerr"

// Toolchain holds the platform-specific executables used to build and
// install packages. The paths differ between platforms (e.g. Scripts\
// vs bin/ inside a virtualenv), so they are resolved from configuration
// rather than branched on inside adapters.
type Toolchain struct {
	// Python is the interpreter executable, e.g. "python" or "python.exe".
	Python string
	// Pip is the installer executable, e.g. "pip".
	Pip string
}

// InstallSpec describes a single invocation of the install step.
// All fields are externally supplied through configuration and flags.
type InstallSpec struct {
	// OS identifies the runner platform (e.g. "Linux", "macOS", "Windows").
	// It selects the toolchain and is part of the cache key.
	OS string

	// PythonVersion is the runtime version (e.g. "3.10"). Part of the
	// cache key, otherwise informational.
	PythonVersion string

	// FromSource selects building the primary package from the upstream
	// head instead of installing the published release.
	FromSource bool

	// RepoURL is the upstream source repository.
	RepoURL string

	// Branch is the tracked upstream branch.
	Branch string

	// PrimaryPackage is the registry name of the dependency this step
	// exists to provide.
	PrimaryPackage string

	// CompanionPackage is always installed from the registry, on every
	// path.
	CompanionPackage string

	// CacheRoot is the directory under which wheel cache entries live.
	CacheRoot string

	// Toolchain holds the resolved platform executables.
	Toolchain Toolchain
}

// Validate checks that the spec carries everything the pipeline needs.
func (s InstallSpec) Validate() error {
	switch {
	case s.OS == "":
		return zerr.With(ErrInvalidSpec, "field", "os")
	case s.PythonVersion == "":
		return zerr.With(ErrInvalidSpec, "field", "python_version")
	case s.PrimaryPackage == "":
		return zerr.With(ErrInvalidSpec, "field", "primary_package")
	case s.CompanionPackage == "":
		return zerr.With(ErrInvalidSpec, "field", "companion_package")
	}
	if s.FromSource {
		switch {
		case s.RepoURL == "":
			return zerr.With(ErrInvalidSpec, "field", "repo_url")
		case s.Branch == "":
			return zerr.With(ErrInvalidSpec, "field", "branch")
		case s.CacheRoot == "":
			return zerr.With(ErrInvalidSpec, "field", "cache_root")
		}
	}
	return nil
}
