package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
)

// NodeID is the unique identifier for the ConfigLoader adapter Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{}, nil
		},
	})
}
