package ebitenwin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the window host Graft node.
const NodeID graft.ID = "adapter.window_host"

func init() {
	graft.Register(graft.Node[ports.WindowHost]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WindowHost, error) {
			return New(), nil
		},
	})
}
