package wheelcache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
)

// NodeID is the unique identifier for the WheelCache adapter Graft node.
const NodeID graft.ID = "adapter.wheel_cache"

func init() {
	graft.Register(graft.Node[ports.WheelCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WheelCache, error) {
			return NewStore(), nil
		},
	})
}
