package provider

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Resolver resolves a single project part.
type Resolver interface {
	Resolve(ctx context.Context, part domain.ProjectPartContainer) (domain.Resolution, error)
}

// Coalescing collapses concurrent resolutions of the same project part into
// one. Callers that join an in-flight resolution share its result, so the
// returned slices must be treated as read-only.
type Coalescing struct {
	inner Resolver
	group singleflight.Group
}

// NewCoalescing wraps inner.
func NewCoalescing(inner Resolver) *Coalescing {
	return &Coalescing{inner: inner}
}

// Resolve resolves part, joining an in-flight resolution of a part with the same name.
func (c *Coalescing) Resolve(ctx context.Context, part domain.ProjectPartContainer) (domain.Resolution, error) {
	v, err, _ := c.group.Do(part.Name, func() (any, error) {
		return c.inner.Resolve(ctx, part)
	})
	if err != nil {
		return domain.Resolution{}, err
	}
	return v.(domain.Resolution), nil //nolint:forcetypeassert // Only Resolutions are stored
}
