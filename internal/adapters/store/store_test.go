package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/store"
	"go.trai.ch/depcache/internal/adapters/store/badgerstore"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

func sid(d, f int32) domain.SourceID { return domain.NewSourceID(d, f) }

// sampleDependency is main.cpp (1:2) including a.h (1:1) and b.h (1:10),
// with b.h including c.h (2:1) and c.h including b.h back.
func sampleDependency() domain.BuildDependency {
	return domain.BuildDependency{
		Includes: domain.SourceEntries{
			domain.NewSourceEntry(sid(1, 1), domain.SourceTypeTopProjectInclude, 11),
			domain.NewSourceEntry(sid(1, 2), domain.SourceTypeSource, 12),
			domain.NewSourceEntry(sid(1, 10), domain.SourceTypeTopProjectInclude, 110),
			domain.NewSourceEntry(sid(2, 1), domain.SourceTypeSystemInclude, 21),
		},
		UsedMacros: domain.UsedMacros{
			domain.NewUsedMacro("YI", sid(1, 1)),
			domain.NewUsedMacro("LIANG", sid(1, 2)),
			domain.NewUsedMacro("ER", sid(1, 2)),
			domain.NewUsedMacro("SAN", sid(1, 10)),
		},
		SourceDependencies: []domain.SourceDependency{
			domain.NewSourceDependency(sid(1, 2), sid(1, 1)),
			domain.NewSourceDependency(sid(1, 2), sid(1, 10)),
			domain.NewSourceDependency(sid(1, 10), sid(2, 1)),
			domain.NewSourceDependency(sid(2, 1), sid(1, 10)),
		},
	}
}

type backend struct {
	name string
	open func(t *testing.T) ports.DependencyStore
}

func backends() []backend {
	return []backend{
		{
			name: "json",
			open: func(t *testing.T) ports.DependencyStore {
				t.Helper()
				s, err := store.NewStore(filepath.Join(t.TempDir(), "dependencies.json"))
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "badger",
			open: func(t *testing.T) ports.DependencyStore {
				t.Helper()
				s, err := badgerstore.Open(badgerstore.Config{InMemory: true})
				require.NoError(t, err)
				t.Cleanup(func() { _ = s.Close() })
				return s
			},
		},
	}
}

func TestStore_UnknownSourceIsEmpty(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)

			sources, err := s.FetchDependSources(sid(7, 7))
			require.NoError(t, err)
			assert.Empty(t, sources)

			macros, err := s.FetchUsedMacros(sid(7, 7))
			require.NoError(t, err)
			assert.Empty(t, macros)
		})
	}
}

func TestStore_RecordAndFetch(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			require.NoError(t, s.Record(sampleDependency()))

			sources, err := s.FetchDependSources(sid(1, 2))
			require.NoError(t, err)
			assert.Equal(t, domain.SourceEntries{
				domain.NewSourceEntry(sid(1, 1), domain.SourceTypeTopProjectInclude, 11),
				domain.NewSourceEntry(sid(1, 2), domain.SourceTypeSource, 12),
				domain.NewSourceEntry(sid(1, 10), domain.SourceTypeTopProjectInclude, 110),
				domain.NewSourceEntry(sid(2, 1), domain.SourceTypeSystemInclude, 21),
			}, sources)

			leaf, err := s.FetchDependSources(sid(1, 1))
			require.NoError(t, err)
			assert.Equal(t, []domain.SourceID{sid(1, 1)}, leaf.IDs())

			cycle, err := s.FetchDependSources(sid(2, 1))
			require.NoError(t, err)
			assert.Equal(t, []domain.SourceID{sid(1, 10), sid(2, 1)}, cycle.IDs())

			macros, err := s.FetchUsedMacros(sid(1, 2))
			require.NoError(t, err)
			assert.Equal(t, domain.UsedMacros{
				domain.NewUsedMacro("ER", sid(1, 2)),
				domain.NewUsedMacro("LIANG", sid(1, 2)),
			}, macros)
		})
	}
}

func TestStore_RecordReplacesSource(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			require.NoError(t, s.Record(sampleDependency()))

			// main.cpp no longer includes b.h and stops using ER.
			require.NoError(t, s.Record(domain.BuildDependency{
				Includes: domain.SourceEntries{
					domain.NewSourceEntry(sid(1, 1), domain.SourceTypeTopProjectInclude, 11),
					domain.NewSourceEntry(sid(1, 2), domain.SourceTypeSource, 13),
				},
				UsedMacros:         domain.UsedMacros{domain.NewUsedMacro("LIANG", sid(1, 2))},
				SourceDependencies: []domain.SourceDependency{domain.NewSourceDependency(sid(1, 2), sid(1, 1))},
			}))

			sources, err := s.FetchDependSources(sid(1, 2))
			require.NoError(t, err)
			assert.Equal(t, domain.SourceEntries{
				domain.NewSourceEntry(sid(1, 1), domain.SourceTypeTopProjectInclude, 11),
				domain.NewSourceEntry(sid(1, 2), domain.SourceTypeSource, 13),
			}, sources)

			macros, err := s.FetchUsedMacros(sid(1, 2))
			require.NoError(t, err)
			assert.Equal(t, domain.UsedMacros{domain.NewUsedMacro("LIANG", sid(1, 2))}, macros)

			// b.h keeps its own record.
			other, err := s.FetchDependSources(sid(1, 10))
			require.NoError(t, err)
			assert.Equal(t, []domain.SourceID{sid(1, 10), sid(2, 1)}, other.IDs())
		})
	}
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "dependencies.json")

	s1, err := store.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Record(sampleDependency()))
	require.NoError(t, s1.Close())

	s2, err := store.NewStore(path)
	require.NoError(t, err)

	sources, err := s2.FetchDependSources(sid(1, 2))
	require.NoError(t, err)
	assert.Len(t, sources, 4)
}

func TestBadgerStore_Persistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")

	s1, err := badgerstore.Open(badgerstore.Config{Path: dir, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, s1.Record(sampleDependency()))
	require.NoError(t, s1.Close())

	s2, err := badgerstore.Open(badgerstore.Config{Path: dir})
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	macros, err := s2.FetchUsedMacros(sid(1, 10))
	require.NoError(t, err)
	assert.Equal(t, domain.UsedMacros{domain.NewUsedMacro("SAN", sid(1, 10))}, macros)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dependencies.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStoreUnmarshalFailed.Error())
}

func TestOpen_SelectsBackend(t *testing.T) {
	tests := []struct {
		name     string
		backend  domain.Backend
		size     int
		wantType any
		wantErr  string
	}{
		{name: "json", backend: domain.BackendJSON, wantType: &store.Store{}},
		{name: "json cached", backend: domain.BackendJSON, size: 8, wantType: &store.Cached{}},
		{name: "badger", backend: domain.BackendBadger, wantType: &badgerstore.Store{}},
		{name: "unknown", backend: "sqlite", wantErr: domain.ErrInvalidBackend.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.Settings{
				StateDir:  t.TempDir(),
				Backend:   tt.backend,
				CacheSize: tt.size,
			}

			s, err := store.Open(settings, nil)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer func() { _ = s.Close() }()
			assert.IsType(t, tt.wantType, s)
		})
	}
}
