package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gotobuild/internal/adapters/config"
	"go.trai.ch/gotobuild/internal/adapters/logger"
	"go.trai.ch/gotobuild/internal/adapters/shell"
	"go.trai.ch/gotobuild/internal/adapters/telemetry"
	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// NodeID is the unique identifier for the index builder Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[ports.IndexBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexBuilder, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
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
			return New(runner, settings, tracer, log), nil
		},
	})
}
