package ports

import "go.trai.ch/depcache/internal/core/domain"

// ModifiedTimeChecker decides whether recorded sources are still current.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type ModifiedTimeChecker interface {
	// IsUpToDate reports whether every entry's current signature equals its recorded one.
	// A missing file is reported as not up to date rather than as an error.
	IsUpToDate(entries domain.SourceEntries) (bool, error)
}

// SignatureInvalidator drops memoised signatures after files change.
type SignatureInvalidator interface {
	// Invalidate forgets the signatures of the given absolute paths.
	Invalidate(paths []string)
	// Reset forgets every memoised signature.
	Reset()
}

// Signer computes the current modification signature of a file.
type Signer interface {
	// Signature returns the signature of the file at path.
	// It returns an error satisfying errors.Is(err, fs.ErrNotExist) when the file is missing.
	Signature(path string) (int64, error)
}
