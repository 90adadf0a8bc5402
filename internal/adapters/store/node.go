package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gotobuild/internal/adapters/config"
	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// NodeID is the unique identifier for the index store Graft node.
const NodeID graft.ID = "adapter.index_store"

func init() {
	graft.Register(graft.Node[ports.IndexStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.IndexStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.IndexPath()), nil
		},
	})
}
