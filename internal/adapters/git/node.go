package git

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gunchamalik/wheelhouse/internal/adapters/shell"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the HeadResolver Graft node.
	ResolverNodeID graft.ID = "adapter.head_resolver"
	// ClonerNodeID is the unique identifier for the SourceCloner Graft node.
	ClonerNodeID graft.ID = "adapter.source_cloner"
)

func init() {
	graft.Register(graft.Node[ports.HeadResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.HeadResolver, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(executor)
		},
	})

	graft.Register(graft.Node[ports.SourceCloner]{
		ID:        ClonerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SourceCloner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewCloner(executor), nil
		},
	})
}
