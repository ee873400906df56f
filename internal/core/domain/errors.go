package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSourceID is returned when a textual source id cannot be parsed.
	ErrInvalidSourceID = zerr.New("invalid source id, expected directory:file")

	// ErrInvalidSourceType is returned when a textual source type is unknown.
	ErrInvalidSourceType = zerr.New("invalid source type")

	// ErrUnknownSourceID is returned when a source id has no known path.
	ErrUnknownSourceID = zerr.New("unknown source id")

	// ErrInvalidProjectPartName is returned when a project part name contains invalid characters.
	ErrInvalidProjectPartName = zerr.New("project part name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrProjectPartNotFound is returned when a requested project part is not configured.
	ErrProjectPartNotFound = zerr.New("project part not found")

	// ErrInvalidBackend is returned when the configured storage backend is unknown.
	ErrInvalidBackend = zerr.New("invalid backend, expected 'json' or 'badger'")

	// ErrInvalidFreshnessMode is returned when the configured freshness mode is unknown.
	ErrInvalidFreshnessMode = zerr.New("invalid freshness mode, expected 'mtime' or 'content'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find depcache.yaml")

	// ErrFailedToGetRoot is returned when the workspace root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of workspace root")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create dependency store directory")

	// ErrStoreOpenFailed is returned when the dependency store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open dependency store")

	// ErrStoreReadFailed is returned when dependency data cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read dependency store")

	// ErrStoreUnmarshalFailed is returned when dependency data cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal dependency store")

	// ErrStoreMarshalFailed is returned when dependency data cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal dependency store")

	// ErrStoreWriteFailed is returned when dependency data cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write dependency store")

	// ErrPathTableReadFailed is returned when the source path table cannot be read.
	ErrPathTableReadFailed = zerr.New("failed to read source path table")

	// ErrPathTableWriteFailed is returned when the source path table cannot be written.
	ErrPathTableWriteFailed = zerr.New("failed to write source path table")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrHeaderResolutionFailed is returned when header patterns cannot be resolved.
	ErrHeaderResolutionFailed = zerr.New("failed to resolve headers")

	// ErrHeaderNotFound is returned when a header pattern matches no file.
	ErrHeaderNotFound = zerr.New("header not found")

	// ErrScanFailed is returned when a source cannot be scanned for directives.
	ErrScanFailed = zerr.New("failed to scan source")

	// ErrResolutionFailed is returned when resolving a project part fails.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrWatchUnavailable is returned when watching is requested without a file watcher.
	ErrWatchUnavailable = zerr.New("file watching is not configured")

	// ErrFailedToClean is returned when the state directory cannot be removed.
	ErrFailedToClean = zerr.New("failed to remove state directory")
)
