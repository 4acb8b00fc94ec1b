package ports

import "github.com/gunchamalik/wheelhouse/internal/core/domain"

// ConfigLoader loads the install spec from configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the spec
	// for the given platform, with its toolchain resolved. The platform
	// is passed in explicitly so the caller, not the loader, decides
	// what "the current platform" means.
	Load(path, osID string) (*domain.InstallSpec, error)
}
