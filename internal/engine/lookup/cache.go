// Package lookup implements the persisted reverse index with rebuild-on-miss semantics.
package lookup

import (
	"context"
	"errors"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// Result is the outcome of a lookup that may have triggered a rebuild.
type Result struct {
	// Location is the "<build-file>:<line>" string when Found is true.
	Location string
	Found    bool
	// Rebuilt reports whether a rebuild happened during this run.
	Rebuilt bool
	// Index is the index the answer was read from.
	Index domain.Index
}

// Cache ties the persisted index to the builder that regenerates it.
type Cache struct {
	store   ports.IndexStore
	builder ports.IndexBuilder
	logger  ports.Logger
}

// New creates a new Cache.
func New(store ports.IndexStore, builder ports.IndexBuilder, logger ports.Logger) *Cache {
	return &Cache{
		store:   store,
		builder: builder,
		logger:  logger,
	}
}

// LoadOrBuild returns the persisted index, rebuilding it from dir when it is
// absent, corrupt or unreadable. The boolean reports whether a rebuild happened.
func (c *Cache) LoadOrBuild(ctx context.Context, dir string) (domain.Index, bool, error) {
	idx, err := c.store.Load()
	switch {
	case err == nil:
		return idx, false, nil
	case errors.Is(err, domain.ErrIndexNotFound):
		c.logger.Info("no persisted index, building")
	case errors.Is(err, domain.ErrIndexCorrupt):
		c.logger.Info("persisted index is corrupt, rebuilding")
	default:
		c.logger.Info("persisted index is unreadable, rebuilding: " + err.Error())
	}

	idx, err = c.Rebuild(ctx, dir)
	if err != nil {
		return nil, false, err
	}
	return idx, true, nil
}

// Persist writes the index to disk, replacing the previous one.
func (c *Cache) Persist(idx domain.Index) error {
	return c.store.Save(idx)
}

// Rebuild builds a fresh index from dir and persists it.
// A failed write is logged and the in-memory index is still returned.
func (c *Cache) Rebuild(ctx context.Context, dir string) (domain.Index, error) {
	idx, err := c.builder.BuildIndex(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := c.Persist(idx); err != nil {
		c.logger.Warn("failed to persist index: " + err.Error())
	}

	return idx, nil
}

// RebuildIfMissing looks key up in idx and, if it is absent and no rebuild has
// happened yet, rebuilds once and looks it up again.
func (c *Cache) RebuildIfMissing(
	ctx context.Context,
	dir string,
	idx domain.Index,
	key string,
	alreadyRebuilt bool,
) (Result, error) {
	if loc, ok := idx.Lookup(key); ok {
		return Result{Location: loc, Found: true, Rebuilt: alreadyRebuilt, Index: idx}, nil
	}
	if alreadyRebuilt {
		return Result{Rebuilt: true, Index: idx}, nil
	}

	c.logger.Info("no entry for " + key + ", rebuilding index")
	fresh, err := c.Rebuild(ctx, dir)
	if err != nil {
		return Result{}, err
	}

	loc, ok := fresh.Lookup(key)
	return Result{Location: loc, Found: ok, Rebuilt: true, Index: fresh}, nil
}

// Clear removes the persisted index.
func (c *Cache) Clear() error {
	return c.store.Clear()
}
