package domain

import (
	"path/filepath"
	"time"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	// HomeDir is the cache directory holding the tool, the index and the config file.
	HomeDir string
	// ToolURL is the download location of the introspection binary.
	ToolURL string
	// ToolSHA256 is the expected lowercase hex digest of the introspection binary.
	ToolSHA256 string
	// Query holds the arguments passed to the introspection binary.
	Query []string
	// DownloadTimeout bounds the tool download. Zero means no timeout.
	DownloadTimeout time.Duration
	// QueryTimeout bounds the introspection run. Zero means no timeout.
	QueryTimeout time.Duration
}

// DefaultSettings returns the settings used when no config file overrides them.
func DefaultSettings(homeDir string) *Settings {
	return &Settings{
		HomeDir:         homeDir,
		ToolURL:         DefaultToolURL,
		ToolSHA256:      DefaultToolSHA256,
		Query:           DefaultQuery(),
		DownloadTimeout: DefaultDownloadTimeout,
	}
}

// ToolPath returns the on-disk location of the introspection binary.
func (s *Settings) ToolPath() string {
	return filepath.Join(s.HomeDir, ToolFileName)
}

// IndexPath returns the on-disk location of the persisted index.
func (s *Settings) IndexPath() string {
	return filepath.Join(s.HomeDir, IndexFileName)
}

// ConfigPath returns the on-disk location of the optional config file.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.HomeDir, ConfigFileName)
}
