package ports

import "go.trai.ch/gotobuild/internal/core/domain"

// IndexStore persists the reverse index between invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type IndexStore interface {
	// Load reads the persisted index.
	// It returns domain.ErrIndexNotFound when nothing is persisted and an error
	// wrapping domain.ErrIndexCorrupt when the file cannot be decoded.
	Load() (domain.Index, error)

	// Save overwrites the persisted index.
	Save(idx domain.Index) error

	// Clear removes the persisted index. A missing file is not an error.
	Clear() error
}
