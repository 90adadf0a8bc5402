package lookup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gotobuild/internal/adapters/logger"
	"go.trai.ch/gotobuild/internal/adapters/store"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/gotobuild/internal/engine/indexer"
)

// NodeID is the unique identifier for the lookup cache Graft node.
const NodeID graft.ID = "engine.lookup"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, indexer.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			s, err := graft.Dep[ports.IndexStore](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.IndexBuilder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(s, builder, log), nil
		},
	})
}
