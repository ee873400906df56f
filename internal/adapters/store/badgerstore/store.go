// Package badgerstore implements dependency persistence on an embedded Badger database.
package badgerstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyStore = (*Store)(nil)

const recordPrefix = "src/"

// Config holds configuration for a Badger-backed store.
type Config struct {
	// Path is the directory for Badger files. Ignored when InMemory is true.
	Path string
	// InMemory keeps all data in memory.
	InMemory bool
	// SyncWrites makes every commit durable before returning.
	SyncWrites bool
	// Logger receives Badger's internal warnings and errors. Nil disables them.
	Logger ports.Logger
}

// Store implements ports.DependencyStore on Badger. Each source is one key
// holding its JSON encoded domain.SourceRecord.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cfg.Path)
	}
	return &Store{db: db}, nil
}

func recordKey(id domain.SourceID) []byte {
	return []byte(recordPrefix + id.String())
}

// get reads the record of id. A missing key reports ok=false.
func get(txn *badger.Txn, id domain.SourceID) (domain.SourceRecord, bool, error) {
	var r domain.SourceRecord

	item, err := txn.Get(recordKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r, false, nil
	}
	if err != nil {
		return r, false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "source", id.String())
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &r)
	})
	if err != nil {
		return r, false, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "source", id.String())
	}
	return r, true, nil
}

// FetchDependSources returns id and every recorded source reachable from it.
func (s *Store) FetchDependSources(id domain.SourceID) (domain.SourceEntries, error) {
	entries := domain.SourceEntries{}

	err := s.db.View(func(txn *badger.Txn) error {
		found := make(map[domain.SourceID]domain.SourceRecord)

		ids, err := domain.Closure(id, func(u domain.SourceID) ([]domain.SourceID, error) {
			r, ok, err := get(txn, u)
			if err != nil || !ok {
				return nil, err
			}
			found[u] = r
			return r.Dependencies, nil
		})
		if err != nil {
			return err
		}
		if _, ok := found[id]; !ok {
			return nil
		}

		for _, dep := range ids {
			if r, ok := found[dep]; ok {
				entries = append(entries, domain.NewSourceEntry(dep, r.Type, r.Signature))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchUsedMacros returns the macros recorded for id.
func (s *Store) FetchUsedMacros(id domain.SourceID) (domain.UsedMacros, error) {
	var macros domain.UsedMacros

	err := s.db.View(func(txn *badger.Txn) error {
		r, _, err := get(txn, id)
		if err != nil {
			return err
		}
		macros = r.UsedMacros(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return macros, nil
}

// Record replaces the records of every source included in dep in one transaction.
func (s *Store) Record(dep domain.BuildDependency) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for id, r := range dep.Records() {
			data, err := json.Marshal(r)
			if err != nil {
				return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
			}
			if err := txn.Set(recordKey(id), data); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "source", id.String())
			}
		}
		return nil
	})
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger adapts ports.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger ports.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Errorf("badger: "+format, args...)) //nolint:err113 // Badger supplies the format
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf("badger: "+format, args...))
}
