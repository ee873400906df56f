package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HeaderResolver = (*Resolver)(nil)

// headerExtensions are the file extensions collected when a header pattern names a directory.
var headerExtensions = []string{".h", ".hh", ".hpp", ".hxx", ".inc", ".inl", ".ipp", ".tcc"}

// Resolver implements the HeaderResolver interface using filepath.Glob.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveHeaders expands header patterns relative to root into a sorted list
// of absolute paths. A pattern naming a directory yields every header below it.
func (r *Resolver) ResolveHeaders(patterns []string, root string) ([]string, error) {
	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrHeaderResolutionFailed.Error()), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrHeaderNotFound, "pattern", pattern)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", match)
			}
			if !info.IsDir() {
				unique[filepath.Clean(match)] = struct{}{}
				continue
			}
			for file := range r.walker.WalkFiles(match, nil) {
				if isHeader(file) {
					unique[filepath.Clean(file)] = struct{}{}
				}
			}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrHeaderResolutionFailed.Error()), "path", path)
		}
		result = append(result, abs)
	}
	slices.Sort(result)

	return result, nil
}

func isHeader(path string) bool {
	return slices.Contains(headerExtensions, strings.ToLower(filepath.Ext(path)))
}
