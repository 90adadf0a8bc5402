// Package indexer builds the reverse index by running the introspection tool.
package indexer

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
)

var _ ports.IndexBuilder = (*Indexer)(nil)

// Indexer implements ports.IndexBuilder on top of a ProcessRunner.
type Indexer struct {
	runner   ports.ProcessRunner
	settings *domain.Settings
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new Indexer.
func New(runner ports.ProcessRunner, settings *domain.Settings, tracer ports.Tracer, logger ports.Logger) *Indexer {
	return &Indexer{
		runner:   runner,
		settings: settings,
		tracer:   tracer,
		logger:   logger,
	}
}

// BuildIndex runs the query from dir and indexes every explicitly listed file.
// A failing tool yields an error and no index.
func (i *Indexer) BuildIndex(ctx context.Context, dir string) (domain.Index, error) {
	ctx, span := i.tracer.Start(ctx, "buildozer query")
	defer span.End()
	span.SetAttribute("dir", dir)

	if i.settings.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.settings.QueryTimeout)
		defer cancel()
	}

	out, err := i.runner.Output(ctx, dir, i.settings.ToolPath(), i.settings.Query...)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Join(domain.ErrIntrospectionFailed, err)
	}

	records := ParseRecords(string(out))
	idx := domain.IndexRecords(records)
	span.SetAttribute("targets", len(records))
	span.SetAttribute("files", len(idx))
	i.logger.Info("indexed " + strconv.Itoa(len(idx)) + " files from " + strconv.Itoa(len(records)) + " targets")

	return idx, nil
}
