package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gunchamalik/wheelhouse/internal/adapters/shell"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
)

const (
	// InstallerNodeID is the unique identifier for the PackageInstaller Graft node.
	InstallerNodeID graft.ID = "adapter.package_installer"
	// BuilderNodeID is the unique identifier for the WheelBuilder Graft node.
	BuilderNodeID graft.ID = "adapter.wheel_builder"
)

func init() {
	graft.Register(graft.Node[ports.PackageInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageInstaller, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(executor), nil
		},
	})

	graft.Register(graft.Node[ports.WheelBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.WheelBuilder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(executor), nil
		},
	})
}
