package ports

import (
	"context"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
)

// PackageInstaller installs packages into the local environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type PackageInstaller interface {
	// InstallRelease installs the latest published release of pkg from
	// the registry.
	InstallRelease(ctx context.Context, tc domain.Toolchain, pkg string) error

	// InstallWheels attempts to install every wheel archive found in
	// dir. The status distinguishes an empty directory from an archive
	// that failed to install; err is non-nil only when the status is
	// domain.WheelInstallFailed.
	InstallWheels(ctx context.Context, tc domain.Toolchain, dir string) (domain.WheelInstallStatus, error)
}
