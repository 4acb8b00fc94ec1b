package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSpec is returned when the install spec is missing a
	// required field.
	ErrInvalidSpec = zerr.New("invalid install spec")

	// ErrResolveFailed is returned when the upstream head commit cannot
	// be determined. Fatal, no retry.
	ErrResolveFailed = zerr.New("failed to resolve upstream head")

	// ErrCloneFailed is returned when the shallow clone of the upstream
	// repository fails.
	ErrCloneFailed = zerr.New("failed to clone upstream repository")

	// ErrBuildFailed is returned when the wheel build fails.
	ErrBuildFailed = zerr.New("wheel build failed")

	// ErrNoWheels is returned when a build completes without producing
	// any archive.
	ErrNoWheels = zerr.New("build produced no wheels")

	// ErrInstallFailed is returned when a package install fails on a
	// path where failure is fatal.
	ErrInstallFailed = zerr.New("package install failed")
)
