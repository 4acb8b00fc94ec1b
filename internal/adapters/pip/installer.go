// Package pip adapts the package installer and wheel builder ports onto
// the pip CLI.
package pip

import (
	"context"
	"errors"
	"path/filepath"
	"sort"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageInstaller = (*Installer)(nil)

// Installer implements ports.PackageInstaller using the pip CLI.
type Installer struct {
	executor ports.Executor
}

// NewInstaller creates a new Installer backed by the given executor.
func NewInstaller(executor ports.Executor) *Installer {
	return &Installer{executor: executor}
}

// InstallRelease installs the latest published release of pkg. No version
// constraint is applied.
func (i *Installer) InstallRelease(ctx context.Context, tc domain.Toolchain, pkg string) error {
	_, err := i.executor.Run(ctx, domain.Command{
		Name: tc.Pip,
		Args: []string{"install", "--upgrade", pkg},
	})
	if err != nil {
		return errors.Join(zerr.With(domain.ErrInstallFailed, "package", pkg), err)
	}
	return nil
}

// InstallWheels installs every wheel archive found in dir in a single pip
// invocation. An empty directory is reported as WheelInstallNoWheels so
// the caller can tell "cache was empty" from "cache had something but it
// didn't work".
func (i *Installer) InstallWheels(ctx context.Context, tc domain.Toolchain, dir string) (domain.WheelInstallStatus, error) {
	wheels, err := ListWheels(dir)
	if err != nil {
		return domain.WheelInstallFailed, err
	}
	if len(wheels) == 0 {
		return domain.WheelInstallNoWheels, nil
	}

	args := append([]string{"install"}, wheels...)
	if _, err := i.executor.Run(ctx, domain.Command{Name: tc.Pip, Args: args}); err != nil {
		return domain.WheelInstallFailed, errors.Join(
			zerr.With(domain.ErrInstallFailed, "dir", dir),
			err,
		)
	}
	return domain.WheelInstallOK, nil
}

// ListWheels returns the wheel archives in dir, sorted for deterministic
// install order.
func ListWheels(dir string) ([]string, error) {
	wheels, err := filepath.Glob(filepath.Join(dir, "*.whl"))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list wheels"), "dir", dir)
	}
	sort.Strings(wheels)
	return wheels, nil
}
