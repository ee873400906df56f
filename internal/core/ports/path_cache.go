package ports

import "go.trai.ch/depcache/internal/core/domain"

// SourcePathCache maps file paths to stable source ids and back.
//
//go:generate go run go.uber.org/mock/mockgen -source=path_cache.go -destination=mocks/mock_path_cache.go -package=mocks
type SourcePathCache interface {
	// SourceID returns the id of path, assigning a new one on first use.
	SourceID(path string) (domain.SourceID, error)

	// Path returns the absolute path of id.
	Path(id domain.SourceID) (string, error)

	// Flush persists newly assigned ids.
	Flush() error
}

// HeaderResolver expands header patterns into concrete files.
type HeaderResolver interface {
	// ResolveHeaders resolves the given patterns relative to root into sorted absolute paths.
	ResolveHeaders(patterns []string, root string) ([]string, error)
}
