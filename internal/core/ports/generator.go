package ports

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
)

// DependenciesGenerator performs a fresh, authoritative dependency analysis.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type DependenciesGenerator interface {
	// Create analyses the whole project part and returns its build dependency.
	Create(ctx context.Context, part domain.ProjectPartContainer) (domain.BuildDependency, error)
}
