package buildozer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gotobuild/internal/adapters/config"
	"go.trai.ch/gotobuild/internal/adapters/fs"
	"go.trai.ch/gotobuild/internal/adapters/logger"
	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// NodeID is the unique identifier for the tool provisioner Graft node.
const NodeID graft.ID = "adapter.buildozer.provisioner"

func init() {
	graft.Register(graft.Node[ports.ToolProvisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolProvisioner, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			checksum, err := graft.Dep[ports.Checksummer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(settings, checksum, log), nil
		},
	})
}
