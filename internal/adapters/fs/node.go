package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// HasherNodeID is the unique identifier for the checksum Graft node.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.Checksummer]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checksummer, error) {
			return NewHasher(), nil
		},
	})
}
