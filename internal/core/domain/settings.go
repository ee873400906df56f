package domain

import "runtime"

// Backend selects the persistence engine for dependency data.
type Backend string

const (
	// BackendJSON stores dependency data in a single JSON file.
	BackendJSON Backend = "json"
	// BackendBadger stores dependency data in an embedded Badger database.
	BackendBadger Backend = "badger"
)

// FreshnessMode selects how file signatures are computed.
type FreshnessMode string

const (
	// FreshnessMtime uses the file modification time in nanoseconds.
	FreshnessMtime FreshnessMode = "mtime"
	// FreshnessContent uses an xxhash of the file contents.
	FreshnessContent FreshnessMode = "content"
)

// DefaultCacheSize is the number of storage lookups kept in memory.
const DefaultCacheSize = 4096

// Settings are the resolved runtime settings of a workspace.
type Settings struct {
	// Root is the absolute workspace root.
	Root string
	// StateDir is the absolute directory holding persisted state.
	StateDir    string
	Backend     Backend
	Freshness   FreshnessMode
	CacheSize   int
	Parallelism int
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings(root string) Settings {
	return Settings{
		Root:        root,
		StateDir:    DefaultStatePath(root),
		Backend:     BackendJSON,
		Freshness:   FreshnessMtime,
		CacheSize:   DefaultCacheSize,
		Parallelism: runtime.NumCPU(),
	}
}

// ValidateBackend checks that b names a supported backend.
func ValidateBackend(b Backend) error {
	switch b {
	case BackendJSON, BackendBadger:
		return nil
	default:
		return ErrInvalidBackend
	}
}

// ValidateFreshnessMode checks that m names a supported freshness mode.
func ValidateFreshnessMode(m FreshnessMode) error {
	switch m {
	case FreshnessMtime, FreshnessContent:
		return nil
	default:
		return ErrInvalidFreshnessMode
	}
}
