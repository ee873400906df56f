// Package provider implements the dependency resolution engine.
//
// A Provider answers, for a project part, which sources it depends on and
// which macros those sources consult. Stored data is reused while every
// recorded source is unchanged; as soon as one entry point is stale the
// whole part is handed to the generator.
package provider

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

// Provider resolves build dependencies for project parts.
// It keeps no state between calls and is safe for concurrent use when its
// collaborators are.
type Provider struct {
	storage   ports.DependencyStorage
	checker   ports.ModifiedTimeChecker
	generator ports.DependenciesGenerator
	tracer    ports.Tracer
	logger    ports.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithTracer traces every resolution as a span.
func WithTracer(t ports.Tracer) Option {
	return func(p *Provider) {
		p.tracer = t
	}
}

// WithLogger logs regeneration decisions at debug level.
func WithLogger(l ports.Logger) Option {
	return func(p *Provider) {
		p.logger = l
	}
}

// New creates a Provider from its three collaborators.
func New(
	storage ports.DependencyStorage,
	checker ports.ModifiedTimeChecker,
	generator ports.DependenciesGenerator,
	opts ...Option,
) *Provider {
	p := &Provider{
		storage:   storage,
		checker:   checker,
		generator: generator,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Create returns the build dependency of part.
func (p *Provider) Create(ctx context.Context, part domain.ProjectPartContainer) (domain.BuildDependency, error) {
	res, err := p.Resolve(ctx, part)
	if err != nil {
		return domain.BuildDependency{}, err
	}
	return res.Dependency, nil
}

// Resolve returns the build dependency of part together with whether it had
// to be regenerated. Collaborator errors are returned unchanged.
func (p *Provider) Resolve(ctx context.Context, part domain.ProjectPartContainer) (domain.Resolution, error) {
	ctx, span := p.startSpan(ctx, part)
	if span != nil {
		defer span.End()
	}

	res, err := p.resolve(ctx, part)
	if span != nil {
		if err != nil {
			span.RecordError(err)
		} else {
			span.SetAttribute("regenerated", res.Regenerated)
			span.SetAttribute("includes", len(res.Dependency.Includes))
		}
	}
	return res, err
}

func (p *Provider) resolve(ctx context.Context, part domain.ProjectPartContainer) (domain.Resolution, error) {
	seen := make(map[domain.SourceID]struct{})
	macrosBySource := make(map[domain.SourceID]domain.UsedMacros)
	var includes domain.SourceEntries

	for _, entry := range part.EntryPoints {
		sources, err := p.storage.FetchDependSources(entry)
		if err != nil {
			return domain.Resolution{}, err
		}

		upToDate, err := p.checker.IsUpToDate(sources)
		if err != nil {
			return domain.Resolution{}, err
		}

		if !upToDate {
			p.debug(fmt.Sprintf("%s: entry point %s is stale, regenerating", part.Name, entry))
			dep, err := p.generator.Create(ctx, part)
			if err != nil {
				return domain.Resolution{}, err
			}
			return domain.Resolution{Dependency: dep, Regenerated: true, StaleEntry: entry}, nil
		}

		for _, source := range sources {
			if _, ok := seen[source.ID]; ok {
				continue
			}
			seen[source.ID] = struct{}{}
			includes = append(includes, source)

			macros, err := p.storage.FetchUsedMacros(source.ID)
			if err != nil {
				return domain.Resolution{}, err
			}
			macrosBySource[source.ID] = macros
		}
	}

	return domain.Resolution{Dependency: merge(includes, macrosBySource)}, nil
}

// merge orders includes by source id and lays out each source's macros in
// that same order.
func merge(includes domain.SourceEntries, macrosBySource map[domain.SourceID]domain.UsedMacros) domain.BuildDependency {
	if len(includes) == 0 {
		return domain.BuildDependency{}
	}
	includes.Sort()

	var macros domain.UsedMacros
	for _, include := range includes {
		group := slices.Clone(macrosBySource[include.ID])
		group.Sort()
		macros = append(macros, group...)
	}

	return domain.BuildDependency{Includes: includes, UsedMacros: macros}
}

func (p *Provider) startSpan(ctx context.Context, part domain.ProjectPartContainer) (context.Context, ports.Span) {
	if p.tracer == nil {
		return ctx, nil
	}
	return p.tracer.Start(ctx, part.Name,
		ports.WithAttribute("project_part", part.Name),
		ports.WithAttribute("entry_points", len(part.EntryPoints)),
	)
}

func (p *Provider) debug(msg string) {
	if p.logger != nil {
		p.logger.Debug(msg)
	}
}
