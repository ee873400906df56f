package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestChecker_IsUpToDate(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(header, []byte("int a;"), 0o600))

	paths, err := fs.NewPathCache("")
	require.NoError(t, err)
	id, err := paths.SourceID(header)
	require.NoError(t, err)

	signer := fs.NewContentSigner()
	sig, err := signer.Signature(header)
	require.NoError(t, err)

	checker := fs.NewChecker(paths, signer)

	ok, err := checker.IsUpToDate(domain.SourceEntries{domain.NewSourceEntry(id, domain.SourceTypeSource, sig)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checker.IsUpToDate(domain.SourceEntries{domain.NewSourceEntry(id, domain.SourceTypeSource, sig+1)})
	require.NoError(t, err)
	assert.False(t, ok)

}

func TestChecker_NothingRecordedIsStale(t *testing.T) {
	paths, err := fs.NewPathCache("")
	require.NoError(t, err)
	checker := fs.NewChecker(paths, fs.NewMtimeSigner())

	ok, err := checker.IsUpToDate(nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = checker.IsUpToDate(domain.SourceEntries{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChecker_MissingAndUnknownAreStale(t *testing.T) {
	dir := t.TempDir()
	paths, err := fs.NewPathCache("")
	require.NoError(t, err)
	gone, err := paths.SourceID(filepath.Join(dir, "gone.h"))
	require.NoError(t, err)

	checker := fs.NewChecker(paths, fs.NewMtimeSigner())

	ok, err := checker.IsUpToDate(domain.SourceEntries{domain.NewSourceEntry(gone, domain.SourceTypeAny, 1)})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = checker.IsUpToDate(domain.SourceEntries{domain.NewSourceEntry(domain.NewSourceID(7, 7), domain.SourceTypeAny, 1)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChecker_MemoisesUntilInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	paths := mocks.NewMockSourcePathCache(ctrl)
	signer := mocks.NewMockSigner(ctrl)

	id := domain.NewSourceID(1, 1)
	entries := domain.SourceEntries{domain.NewSourceEntry(id, domain.SourceTypeSource, 10)}

	paths.EXPECT().Path(id).Return("/ws/src/a.cpp", nil).Times(2)
	signer.EXPECT().Signature("/ws/src/a.cpp").Return(int64(10), nil)
	signer.EXPECT().Signature("/ws/src/a.cpp").Return(int64(11), nil)

	checker := fs.NewChecker(paths, signer)

	for range 3 {
		ok, err := checker.IsUpToDate(entries)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	checker.Invalidate([]string{"/ws/src"})

	ok, err := checker.IsUpToDate(entries)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChecker_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	paths := mocks.NewMockSourcePathCache(ctrl)
	signer := mocks.NewMockSigner(ctrl)

	id := domain.NewSourceID(1, 1)
	entries := domain.SourceEntries{domain.NewSourceEntry(id, domain.SourceTypeSource, 10)}

	paths.EXPECT().Path(id).Return("/ws/a.h", nil).Times(2)
	signer.EXPECT().Signature("/ws/a.h").Return(int64(10), nil).Times(2)

	checker := fs.NewChecker(paths, signer)
	_, err := checker.IsUpToDate(entries)
	require.NoError(t, err)

	checker.Reset()
	_, err = checker.IsUpToDate(entries)
	require.NoError(t, err)
}

func TestChecker_PropagatesSignerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	paths := mocks.NewMockSourcePathCache(ctrl)
	signer := mocks.NewMockSigner(ctrl)

	boom := errors.New("permission denied")
	paths.EXPECT().Path(gomock.Any()).Return("/ws/a.h", nil)
	signer.EXPECT().Signature("/ws/a.h").Return(int64(0), boom)

	checker := fs.NewChecker(paths, signer)
	_, err := checker.IsUpToDate(domain.SourceEntries{domain.NewSourceEntry(domain.NewSourceID(1, 1), domain.SourceTypeAny, 1)})
	require.ErrorIs(t, err, boom)
}
