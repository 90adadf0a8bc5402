// Package app implements the application layer for gotobuild.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/gotobuild/internal/engine/lookup"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	provisioner ports.ToolProvisioner
	cache       *lookup.Cache
	tracer      ports.Tracer
	logger      ports.Logger
}

// New creates a new App instance.
func New(provisioner ports.ToolProvisioner, cache *lookup.Cache, tracer ports.Tracer, log ports.Logger) *App {
	return &App{
		provisioner: provisioner,
		cache:       cache,
		tracer:      tracer,
		logger:      log,
	}
}

// Resolve returns the "<build-file>:<line>" location of the target declaring path.
// found is false when no target lists the file, even after one rebuild.
func (a *App) Resolve(ctx context.Context, path string) (location string, found bool, err error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer func() {
		span.SetAttribute("found", found)
		span.RecordError(err)
		span.End()
	}()

	abs, err := absPath(path)
	if err != nil {
		return "", false, err
	}
	span.SetAttribute("path", abs)

	if err := a.ensureTool(ctx); err != nil {
		return "", false, err
	}

	dir := workDir(filepath.Dir(abs))
	idx, rebuilt, err := a.cache.LoadOrBuild(ctx, dir)
	if err != nil {
		return "", false, err
	}

	res, err := a.cache.RebuildIfMissing(ctx, dir, idx, abs, rebuilt)
	if err != nil {
		return "", false, err
	}
	span.SetAttribute("rebuilt", res.Rebuilt)

	return res.Location, res.Found, nil
}

// Rebuild regenerates and persists the index from dir and returns the number of indexed files.
func (a *App) Rebuild(ctx context.Context, dir string) (n int, err error) {
	ctx, span := a.tracer.Start(ctx, "rebuild")
	defer func() {
		span.SetAttribute("files", n)
		span.RecordError(err)
		span.End()
	}()

	abs, err := absPath(dir)
	if err != nil {
		return 0, err
	}

	if err := a.ensureTool(ctx); err != nil {
		return 0, err
	}

	idx, err := a.cache.Rebuild(ctx, abs)
	if err != nil {
		return 0, err
	}

	a.logger.Info("rebuilt index with " + strconv.Itoa(len(idx)) + " entries")
	return len(idx), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Index bool
	Tools bool
}

// Clean removes the persisted index and/or the provisioned tool.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	if options.Index {
		a.logger.Info("removing persisted index")
		if err := a.cache.Clear(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	if options.Tools {
		a.logger.Info("removing introspection tool")
		if err := a.provisioner.Remove(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

func (a *App) ensureTool(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "provision")
	defer span.End()

	if _, err := a.provisioner.EnsureReady(ctx); err != nil {
		span.RecordError(err)
		return errors.Join(domain.ErrProvisioningFailed, err)
	}
	return nil
}

func absPath(path string) (string, error) {
	if path == "" {
		return "", domain.ErrInvalidInputPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Join(domain.ErrInvalidInputPath, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path))
	}
	return abs, nil
}

// workDir returns the closest existing ancestor of dir, so a deleted file still resolves.
func workDir(dir string) string {
	for {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
