// Package store implements persistence of recorded dependency data.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyStore = (*Store)(nil)

// Store implements ports.DependencyStore using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	records map[domain.SourceID]domain.SourceRecord
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		records: make(map[domain.SourceID]domain.SourceRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

// save writes the records to disk. The caller must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// FetchDependSources returns id and every recorded source reachable from it.
func (s *Store) FetchDependSources(id domain.SourceID) (domain.SourceEntries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.records[id]; !ok {
		return domain.SourceEntries{}, nil
	}

	ids, _ := domain.Closure(id, func(u domain.SourceID) ([]domain.SourceID, error) {
		return s.records[u].Dependencies, nil
	})

	entries := make(domain.SourceEntries, 0, len(ids))
	for _, dep := range ids {
		r, ok := s.records[dep]
		if !ok {
			continue
		}
		entries = append(entries, domain.NewSourceEntry(dep, r.Type, r.Signature))
	}
	return entries, nil
}

// FetchUsedMacros returns the macros recorded for id.
func (s *Store) FetchUsedMacros(id domain.SourceID) (domain.UsedMacros, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[id].UsedMacros(id), nil
}

// Record replaces the records of every source included in dep and saves the store.
func (s *Store) Record(dep domain.BuildDependency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range dep.Records() {
		s.records[id] = r
	}
	return s.save()
}

// Close implements ports.DependencyStore. The JSON store holds no open handles.
func (s *Store) Close() error {
	return nil
}
