package pip

import (
	"context"
	"errors"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WheelBuilder = (*Builder)(nil)

// Builder implements ports.WheelBuilder via `pip wheel`.
type Builder struct {
	executor ports.Executor
}

// NewBuilder creates a new Builder backed by the given executor.
func NewBuilder(executor ports.Executor) *Builder {
	return &Builder{executor: executor}
}

// Build produces a wheel from the checkout at srcDir into outDir.
// Dependencies are not bundled; the install step resolves them from the
// registry as usual.
func (b *Builder) Build(ctx context.Context, tc domain.Toolchain, srcDir, outDir string) ([]string, error) {
	_, err := b.executor.Run(ctx, domain.Command{
		Name: tc.Python,
		Args: []string{"-m", "pip", "wheel", "--no-deps", "--wheel-dir", outDir, "."},
		Dir:  srcDir,
	})
	if err != nil {
		return nil, errors.Join(zerr.With(domain.ErrBuildFailed, "src", srcDir), err)
	}

	wheels, err := ListWheels(outDir)
	if err != nil {
		return nil, err
	}
	if len(wheels) == 0 {
		return nil, zerr.With(domain.ErrNoWheels, "dir", outDir)
	}
	return wheels, nil
}
