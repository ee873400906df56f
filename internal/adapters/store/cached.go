package store

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyStore = (*Cached)(nil)

// Cached is a read-through LRU cache in front of a DependencyStore.
// Recording new data purges the cache.
type Cached struct {
	inner   ports.DependencyStore
	sources *lru.Cache[domain.SourceID, domain.SourceEntries]
	macros  *lru.Cache[domain.SourceID, domain.UsedMacros]

	// generation changes around every Record. A read only fills the cache
	// when no Record started or finished while it was reading through.
	mu         sync.Mutex
	generation uint64
}

// NewCached wraps inner with caches holding up to size entries each.
func NewCached(inner ports.DependencyStore, size int) (*Cached, error) {
	sources, err := lru.New[domain.SourceID, domain.SourceEntries](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create source cache"), "size", size)
	}
	macros, err := lru.New[domain.SourceID, domain.UsedMacros](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create macro cache"), "size", size)
	}
	return &Cached{inner: inner, sources: sources, macros: macros}, nil
}

// FetchDependSources returns the cached closure of id, reading through on a miss.
func (c *Cached) FetchDependSources(id domain.SourceID) (domain.SourceEntries, error) {
	return readThrough(c, c.sources, id, c.inner.FetchDependSources)
}

// FetchUsedMacros returns the cached macros of id, reading through on a miss.
func (c *Cached) FetchUsedMacros(id domain.SourceID) (domain.UsedMacros, error) {
	return readThrough(c, c.macros, id, c.inner.FetchUsedMacros)
}

func readThrough[V any](
	c *Cached,
	cache *lru.Cache[domain.SourceID, V],
	id domain.SourceID,
	fetch func(domain.SourceID) (V, error),
) (V, error) {
	if v, ok := cache.Get(id); ok {
		return v, nil
	}

	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()

	v, err := fetch(id)
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	if c.generation == generation {
		cache.Add(id, v)
	}
	c.mu.Unlock()
	return v, nil
}

// Record writes through to the inner store and purges the caches before and
// after the write.
func (c *Cached) Record(dep domain.BuildDependency) error {
	c.invalidate()
	defer c.invalidate()
	return c.inner.Record(dep)
}

func (c *Cached) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.sources.Purge()
	c.macros.Purge()
}

// Close closes the inner store.
func (c *Cached) Close() error {
	return c.inner.Close()
}
