package ports

import "go.trai.ch/depcache/internal/core/domain"

// DependencyStorage reads previously recorded dependency data.
// Unknown ids yield empty results, never errors.
//
//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type DependencyStorage interface {
	// FetchDependSources returns the recorded sources reachable from id, id included.
	FetchDependSources(id domain.SourceID) (domain.SourceEntries, error)

	// FetchUsedMacros returns the macros recorded as used while processing id.
	FetchUsedMacros(id domain.SourceID) (domain.UsedMacros, error)
}

// DependencyRecorder persists freshly generated dependency data.
type DependencyRecorder interface {
	// Record replaces the stored data of every source included in dep.
	Record(dep domain.BuildDependency) error
}

// DependencyStore is a storage backend that can both read and record.
type DependencyStore interface {
	DependencyStorage
	DependencyRecorder

	// Close releases the resources held by the store.
	Close() error
}
