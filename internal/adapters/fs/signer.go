package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Signer = (*MtimeSigner)(nil)
	_ ports.Signer = (*ContentSigner)(nil)
)

// NewSigner returns the signer for the given freshness mode.
func NewSigner(mode domain.FreshnessMode) (ports.Signer, error) {
	switch mode {
	case domain.FreshnessMtime, "":
		return NewMtimeSigner(), nil
	case domain.FreshnessContent:
		return NewContentSigner(), nil
	default:
		return nil, zerr.With(domain.ErrInvalidFreshnessMode, "mode", string(mode))
	}
}

// MtimeSigner signs files with their modification time in nanoseconds.
type MtimeSigner struct{}

// NewMtimeSigner creates a new MtimeSigner.
func NewMtimeSigner() *MtimeSigner {
	return &MtimeSigner{}
}

// Signature returns the modification time of path.
func (s *MtimeSigner) Signature(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info.ModTime().UnixNano(), nil
}

// ContentSigner signs files with the XXHash of their content.
// It survives touch and checkout operations that leave the content unchanged.
type ContentSigner struct{}

// NewContentSigner creates a new ContentSigner.
func NewContentSigner() *ContentSigner {
	return &ContentSigner{}
}

// Signature returns the XXHash of the content of path.
func (s *ContentSigner) Signature(path string) (int64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return int64(hasher.Sum64()), nil //nolint:gosec // Signatures are compared for equality only
}
