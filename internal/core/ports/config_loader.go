package ports

import "go.trai.ch/cacheprobe/internal/core/domain"

// ConfigLoader defines the interface for loading the probe configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration visible from the given working directory.
	Load(cwd string) (*domain.Config, error)
	// Validate checks cfg and the settings of its selected backend.
	Validate(cfg *domain.Config) error
}
