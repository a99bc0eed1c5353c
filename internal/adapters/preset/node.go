package preset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the preset loader Graft node.
const NodeID graft.ID = "adapter.preset_loader"

func init() {
	graft.Register(graft.Node[ports.PresetLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PresetLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
