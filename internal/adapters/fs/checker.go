package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

var (
	_ ports.ModifiedTimeChecker  = (*Checker)(nil)
	_ ports.SignatureInvalidator = (*Checker)(nil)
)

// Checker compares recorded signatures against the files on disk.
// Current signatures are memoised per source until invalidated.
type Checker struct {
	paths  ports.SourcePathCache
	signer ports.Signer

	mu     sync.Mutex
	memo   map[domain.SourceID]int64
	byPath map[string]domain.SourceID
}

// NewChecker creates a new Checker.
func NewChecker(paths ports.SourcePathCache, signer ports.Signer) *Checker {
	return &Checker{
		paths:  paths,
		signer: signer,
		memo:   make(map[domain.SourceID]int64),
		byPath: make(map[string]domain.SourceID),
	}
}

// IsUpToDate reports whether every entry still carries its recorded signature.
// Missing files and sources without a known path are out of date. An empty
// list means nothing was recorded yet, so it is out of date as well.
func (c *Checker) IsUpToDate(entries domain.SourceEntries) (bool, error) {
	if len(entries) == 0 {
		return false, nil
	}
	for _, e := range entries {
		current, ok, err := c.current(e.ID)
		if err != nil {
			return false, err
		}
		if !ok || current != e.Signature {
			return false, nil
		}
	}
	return true, nil
}

func (c *Checker) current(id domain.SourceID) (int64, bool, error) {
	c.mu.Lock()
	sig, ok := c.memo[id]
	c.mu.Unlock()
	if ok {
		return sig, true, nil
	}

	path, err := c.paths.Path(id)
	if errors.Is(err, domain.ErrUnknownSourceID) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	sig, err = c.signer.Signature(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	c.mu.Lock()
	c.memo[id] = sig
	c.byPath[path] = id
	c.mu.Unlock()
	return sig, true, nil
}

// Invalidate forgets the signatures of the given paths and of anything below
// them, so removed directories invalidate their contents.
func (c *Checker) Invalidate(paths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range paths {
		p = filepath.Clean(p)
		if id, ok := c.byPath[p]; ok {
			delete(c.memo, id)
			delete(c.byPath, p)
		}
		prefix := p + string(filepath.Separator)
		for known, id := range c.byPath {
			if strings.HasPrefix(known, prefix) {
				delete(c.memo, id)
				delete(c.byPath, known)
			}
		}
	}
}

// Reset forgets every memoised signature.
func (c *Checker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.memo = make(map[domain.SourceID]int64)
	c.byPath = make(map[string]domain.SourceID)
}
