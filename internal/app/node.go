package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/ebitenwin"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/adapters/preset"
	"go.trai.ch/reso/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			preset.NodeID,
			ebitenwin.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			presets, err := graft.Dep[ports.PresetLoader](ctx)
			if err != nil {
				return nil, err
			}

			window, err := graft.Dep[ports.WindowHost](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, presets, window), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
