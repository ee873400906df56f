package store

import (
	"go.trai.ch/depcache/internal/adapters/store/badgerstore"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Open opens the dependency store selected by settings, wrapped in an LRU
// cache unless settings.CacheSize is zero.
func Open(settings domain.Settings, logger ports.Logger) (ports.DependencyStore, error) {
	var (
		s   ports.DependencyStore
		err error
	)

	switch settings.Backend {
	case domain.BackendJSON, "":
		s, err = NewStore(domain.StorePath(settings.StateDir))
	case domain.BackendBadger:
		s, err = badgerstore.Open(badgerstore.Config{
			Path:       domain.BadgerPath(settings.StateDir),
			SyncWrites: true,
			Logger:     logger,
		})
	default:
		return nil, zerr.With(domain.ErrInvalidBackend, "backend", string(settings.Backend))
	}
	if err != nil {
		return nil, err
	}

	if settings.CacheSize <= 0 {
		return s, nil
	}

	cached, err := NewCached(s, settings.CacheSize)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return cached, nil
}
