package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".depcache"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "depcache.yaml"

	// StoreFileName is the name of the JSON dependency store.
	StoreFileName = "dependencies.json"

	// BadgerDirName is the name of the Badger database directory.
	BadgerDirName = "badger"

	// PathTableFileName is the name of the persisted source path table.
	PathTableFileName = "paths.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the state directory for the given workspace root.
func DefaultStatePath(root string) string {
	return filepath.Join(root, StateDirName)
}

// StorePath returns the JSON store path inside stateDir.
func StorePath(stateDir string) string {
	return filepath.Join(stateDir, StoreFileName)
}

// BadgerPath returns the Badger database directory inside stateDir.
func BadgerPath(stateDir string) string {
	return filepath.Join(stateDir, BadgerDirName)
}

// PathTablePath returns the source path table file inside stateDir.
func PathTablePath(stateDir string) string {
	return filepath.Join(stateDir, PathTableFileName)
}
