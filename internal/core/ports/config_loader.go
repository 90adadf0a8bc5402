package ports

import "go.trai.ch/gotobuild/internal/core/domain"

// ConfigLoader defines the interface for loading runtime settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the optional config file from homeDir and merges it over the defaults.
	Load(homeDir string) (*domain.Settings, error)
}
