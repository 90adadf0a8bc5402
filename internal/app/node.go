package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gotobuild/internal/adapters/buildozer" //nolint:depguard // Wired in app layer
	"go.trai.ch/gotobuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gotobuild/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/gotobuild/internal/engine/lookup"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			buildozer.NodeID,
			lookup.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			provisioner, err := graft.Dep[ports.ToolProvisioner](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*lookup.Cache](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(provisioner, cache, tracer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
