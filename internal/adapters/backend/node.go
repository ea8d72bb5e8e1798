package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cacheprobe/internal/core/ports"
)

// NodeID is the unique identifier for the lookup factory Graft node.
const NodeID graft.ID = "adapter.lookup_factory"

func init() {
	graft.Register(graft.Node[ports.LookupFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LookupFactory, error) {
			return NewFactory(), nil
		},
	})
}
