package ports

import "go.trai.ch/depcache/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration found from the given working directory.
	Load(cwd string) (*domain.Workspace, error)

	// LoadSettings returns the workspace settings, or defaults when no configuration exists.
	LoadSettings(cwd string) (domain.Settings, error)
}
