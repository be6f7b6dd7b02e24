package ports

import "go.trai.ch/buildgate/internal/core/domain"

// ProjectLoader defines the interface for loading the project build settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project settings of the given directory.
	// A directory without a project file yields the default settings.
	Load(dir, filename string) (*domain.Project, error)
}
