package ports

import "go.trai.ch/glance/internal/core/domain"

// ConfigLoader defines the interface for loading glance.yaml.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the config file from the given working directory and reads it.
	// It returns domain.ErrConfigNotFound when there is no config file.
	Load(cwd string) (*domain.Settings, error)
	// LoadFile reads and validates the given config file.
	LoadFile(path string) (*domain.Settings, error)
	// DiscoverConfigPath walks up from cwd to find glance.yaml.
	DiscoverConfigPath(cwd string) (string, error)
}
