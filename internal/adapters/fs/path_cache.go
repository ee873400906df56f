// Package fs provides file system adapters: the source path table, file
// signatures, freshness checking and header resolution.
package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourcePathCache = (*PathCache)(nil)

// PathCache assigns stable source ids to file paths. Directories are numbered
// from 1 in first-seen order, and files from 1 within their directory.
type PathCache struct {
	path string

	mu          sync.RWMutex
	directories []directoryEntry
	dirIDs      map[string]int32
	fileIDs     map[string]domain.SourceID
	dirty       bool
}

type directoryEntry struct {
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

type pathTable struct {
	Directories []directoryEntry `json:"directories"`
}

// NewPathCache creates a PathCache persisted at path. An empty path keeps
// the table in memory only.
func NewPathCache(path string) (*PathCache, error) {
	c := &PathCache{
		dirIDs:  make(map[string]int32),
		fileIDs: make(map[string]domain.SourceID),
	}
	if path == "" {
		return c, nil
	}
	c.path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return c, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathTableReadFailed.Error()), "path", c.path)
	}
	if len(data) == 0 {
		return c, nil
	}

	var table pathTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathTableReadFailed.Error()), "path", c.path)
	}
	for _, dir := range table.Directories {
		dirID := c.addDirectory(dir.Path)
		for _, name := range dir.Files {
			c.addFile(dirID, name)
		}
	}
	return c, nil
}

func (c *PathCache) addDirectory(dir string) int32 {
	c.directories = append(c.directories, directoryEntry{Path: dir})
	id := int32(len(c.directories)) //nolint:gosec // Tables never approach 2^31 directories
	c.dirIDs[dir] = id
	return id
}

func (c *PathCache) addFile(dirID int32, name string) domain.SourceID {
	entry := &c.directories[dirID-1]
	entry.Files = append(entry.Files, name)
	id := domain.NewSourceID(dirID, int32(len(entry.Files))) //nolint:gosec // Bounded like directories
	c.fileIDs[filepath.Join(entry.Path, name)] = id
	return id
}

// SourceID returns the id of path, assigning one on first use.
func (c *PathCache) SourceID(path string) (domain.SourceID, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.SourceID{}, zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", path)
	}

	c.mu.RLock()
	id, ok := c.fileIDs[abs]
	c.mu.RUnlock()
	if ok {
		return id, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.fileIDs[abs]; ok {
		return id, nil
	}

	dir, name := filepath.Split(abs)
	dir = filepath.Clean(dir)
	dirID, ok := c.dirIDs[dir]
	if !ok {
		dirID = c.addDirectory(dir)
	}
	c.dirty = true
	return c.addFile(dirID, name), nil
}

// Path returns the absolute path of id.
func (c *PathCache) Path(id domain.SourceID) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if id.DirectoryID < 1 || int(id.DirectoryID) > len(c.directories) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownSourceID, "failed to look up source path"), "source", id.String())
	}
	dir := c.directories[id.DirectoryID-1]
	if id.FileID < 1 || int(id.FileID) > len(dir.Files) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownSourceID, "failed to look up source path"), "source", id.String())
	}
	return filepath.Join(dir.Path, dir.Files[id.FileID-1]), nil
}

// Flush writes the table to disk when new ids were assigned since the last flush.
func (c *PathCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" || !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(pathTable{Directories: c.directories}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrPathTableWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathTableWriteFailed.Error()), "path", c.path)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathTableWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathTableWriteFailed.Error()), "path", c.path)
	}

	c.dirty = false
	return nil
}
