package provider_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/engine/provider"
)

type blockingResolver struct {
	calls   atomic.Int32
	release chan struct{}
}

func (r *blockingResolver) Resolve(_ context.Context, part domain.ProjectPartContainer) (domain.Resolution, error) {
	r.calls.Add(1)
	<-r.release
	return domain.Resolution{Dependency: domain.BuildDependency{Includes: firstSources}, StaleEntry: part.ProjectFile}, nil
}

func TestCoalescing_SharesInFlightResolution(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		inner := &blockingResolver{release: make(chan struct{})}
		c := provider.NewCoalescing(inner)

		var wg sync.WaitGroup
		results := make([]domain.Resolution, 4)
		for i := range results {
			wg.Go(func() {
				res, err := c.Resolve(context.Background(), projectPart1)
				assert.NoError(t, err)
				results[i] = res
			})
		}

		synctest.Wait()
		close(inner.release)
		wg.Wait()

		require.Equal(t, int32(1), inner.calls.Load())
		for _, res := range results {
			assert.Equal(t, firstSources, res.Dependency.Includes)
		}
	})
}

func TestCoalescing_DistinctPartsRunSeparately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		inner := &blockingResolver{release: make(chan struct{})}
		c := provider.NewCoalescing(inner)

		var wg sync.WaitGroup
		for _, part := range []domain.ProjectPartContainer{projectPart1, projectPart2} {
			wg.Go(func() {
				_, err := c.Resolve(context.Background(), part)
				assert.NoError(t, err)
			})
		}

		synctest.Wait()
		close(inner.release)
		wg.Wait()

		assert.Equal(t, int32(2), inner.calls.Load())
	})
}
