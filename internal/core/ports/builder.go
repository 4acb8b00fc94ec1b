package ports

import (
	"context"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
)

// WheelBuilder invokes the build tooling of a source checkout to produce
// installable archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type WheelBuilder interface {
	// Build produces wheels from the checkout at srcDir into outDir and
	// returns their paths. Returns domain.ErrNoWheels if the build
	// completes without producing any archive.
	Build(ctx context.Context, tc domain.Toolchain, srcDir, outDir string) ([]string, error)
}
