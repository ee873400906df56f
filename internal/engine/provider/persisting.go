package provider

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependenciesGenerator = (*Persisting)(nil)

// Persisting records every generated build dependency before returning it,
// so the next resolution of the same part can be served from storage.
type Persisting struct {
	generator ports.DependenciesGenerator
	recorder  ports.DependencyRecorder
}

// NewPersisting wraps generator so its results are written to recorder.
func NewPersisting(generator ports.DependenciesGenerator, recorder ports.DependencyRecorder) *Persisting {
	return &Persisting{generator: generator, recorder: recorder}
}

// Create runs the wrapped generator and records its result.
func (p *Persisting) Create(ctx context.Context, part domain.ProjectPartContainer) (domain.BuildDependency, error) {
	dep, err := p.generator.Create(ctx, part)
	if err != nil {
		return domain.BuildDependency{}, err
	}

	if err := p.recorder.Record(dep); err != nil {
		return domain.BuildDependency{}, zerr.With(zerr.Wrap(err, "failed to record generated dependencies"), "project_part", part.Name)
	}

	return dep, nil
}
