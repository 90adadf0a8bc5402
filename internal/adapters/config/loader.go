// Package config provides the settings loader for gotobuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file in the cache directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load returns the default settings for homeDir, overridden by config.yaml if present.
func (l *Loader) Load(homeDir string) (*domain.Settings, error) {
	settings := domain.DefaultSettings(filepath.Clean(homeDir))
	path := settings.ConfigPath()

	data, err := os.ReadFile(path) //nolint:gosec // path is inside the cache directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var cfg Configfile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(settings, &cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Info("loaded settings from " + path)
	return settings, nil
}

func apply(settings *domain.Settings, cfg *Configfile) error {
	if cfg.ToolURL != "" {
		settings.ToolURL = cfg.ToolURL
	}
	if cfg.ToolSHA256 != "" {
		settings.ToolSHA256 = strings.ToLower(cfg.ToolSHA256)
	}
	if len(cfg.Query) > 0 {
		settings.Query = cfg.Query
	}

	var err error
	if settings.DownloadTimeout, err = parseDuration(cfg.DownloadTimeout, settings.DownloadTimeout, "download_timeout"); err != nil {
		return err
	}
	if settings.QueryTimeout, err = parseDuration(cfg.QueryTimeout, settings.QueryTimeout, "query_timeout"); err != nil {
		return err
	}
	return nil
}

func parseDuration(raw string, fallback time.Duration, field string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", field)
	}
	if d < 0 {
		negErr := zerr.With(domain.ErrConfigParseFailed, "field", field)
		return 0, zerr.With(negErr, "reason", "duration must not be negative")
	}
	return d, nil
}
