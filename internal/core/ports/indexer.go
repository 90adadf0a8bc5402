package ports

import (
	"context"

	"go.trai.ch/gotobuild/internal/core/domain"
)

// IndexBuilder constructs a fresh reverse index from the build tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type IndexBuilder interface {
	// BuildIndex runs the introspection query from dir and parses its output.
	BuildIndex(ctx context.Context, dir string) (domain.Index, error)
}
