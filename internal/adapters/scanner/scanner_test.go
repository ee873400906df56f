package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/adapters/scanner"
	"go.trai.ch/depcache/internal/core/domain"
)

type workspace struct {
	root   string
	paths  *fs.PathCache
	signer *fs.ContentSigner
}

func newWorkspace(t *testing.T, files map[string]string) *workspace {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	paths, err := fs.NewPathCache("")
	require.NoError(t, err)
	return &workspace{root: root, paths: paths, signer: fs.NewContentSigner()}
}

func (w *workspace) id(t *testing.T, name string) domain.SourceID {
	t.Helper()
	id, err := w.paths.SourceID(filepath.Join(w.root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return id
}

func (w *workspace) entry(t *testing.T, name string, typ domain.SourceType) domain.SourceEntry {
	t.Helper()
	sig, err := w.signer.Signature(filepath.Join(w.root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return domain.NewSourceEntry(w.id(t, name), typ, sig)
}

func TestScanner_Create(t *testing.T) {
	w := newWorkspace(t, map[string]string{
		"app/app.pro": "",
		"app/main.h": `#pragma once
#include "local.h"
#include <lib/api.h>
#include CONFIG_HEADER
#include <missing.h>
#ifdef USE_FOO
#endif
`,
		"app/local.h":        "#include \"main.h\"\n#if defined(LOCAL_X)\n#endif\n",
		"app/config.h":       "",
		"include/lib/api.h":  "#include <sys/types.h>\n",
		"sys/sys/types.h":    "#include_next <sys/types.h>\n",
		"sys2/sys/types.h":   "",
		"unrelated/unused.h": "",
	})

	part := domain.ProjectPartContainer{
		Name:               "app",
		Arguments:          []string{"-isystem", filepath.Join(w.root, "sys"), "-isystem" + filepath.Join(w.root, "sys2")},
		CompilerMacros:     []domain.CompilerMacro{domain.NewCompilerMacro("CONFIG_HEADER", `"config.h"`)},
		IncludeSearchPaths: []string{"../include"},
		ProjectFile:        w.id(t, "app/app.pro"),
		EntryPoints:        []domain.SourceID{w.id(t, "app/main.h")},
	}

	s := scanner.New(w.paths, w.signer, nil)
	dep, err := s.Create(context.Background(), part)
	require.NoError(t, err)

	want := domain.SourceEntries{
		w.entry(t, "app/main.h", domain.SourceTypeSource),
		w.entry(t, "app/local.h", domain.SourceTypeTopProjectInclude),
		w.entry(t, "app/config.h", domain.SourceTypeTopProjectInclude),
		w.entry(t, "include/lib/api.h", domain.SourceTypeTopProjectInclude),
		w.entry(t, "sys/sys/types.h", domain.SourceTypeSystemInclude),
		w.entry(t, "sys2/sys/types.h", domain.SourceTypeSystemInclude),
	}
	want.Sort()
	assert.Equal(t, want, dep.Includes)

	macros := domain.UsedMacros{
		domain.NewUsedMacro("CONFIG_HEADER", w.id(t, "app/main.h")),
		domain.NewUsedMacro("USE_FOO", w.id(t, "app/main.h")),
		domain.NewUsedMacro("LOCAL_X", w.id(t, "app/local.h")),
	}
	macros.Sort()
	assert.Equal(t, macros, dep.UsedMacros)

	assert.ElementsMatch(t, []domain.SourceDependency{
		domain.NewSourceDependency(w.id(t, "app/main.h"), w.id(t, "app/local.h")),
		domain.NewSourceDependency(w.id(t, "app/main.h"), w.id(t, "include/lib/api.h")),
		domain.NewSourceDependency(w.id(t, "app/main.h"), w.id(t, "app/config.h")),
		domain.NewSourceDependency(w.id(t, "app/local.h"), w.id(t, "app/main.h")),
		domain.NewSourceDependency(w.id(t, "include/lib/api.h"), w.id(t, "sys/sys/types.h")),
		domain.NewSourceDependency(w.id(t, "sys/sys/types.h"), w.id(t, "sys2/sys/types.h")),
	}, dep.SourceDependencies)
}

func TestScanner_EntryPointsStaySources(t *testing.T) {
	w := newWorkspace(t, map[string]string{
		"a.h": "#include \"b.h\"\n",
		"b.h": "#include <c.h>\n",
		"c.h": "",
	})

	part := domain.ProjectPartContainer{
		Name:        "part",
		Arguments:   []string{"-I" + w.root},
		EntryPoints: []domain.SourceID{w.id(t, "a.h"), w.id(t, "b.h")},
	}

	dep, err := scanner.New(w.paths, w.signer, nil).Create(context.Background(), part)
	require.NoError(t, err)

	want := domain.SourceEntries{
		w.entry(t, "a.h", domain.SourceTypeSource),
		w.entry(t, "b.h", domain.SourceTypeSource),
		w.entry(t, "c.h", domain.SourceTypeTopProjectInclude),
	}
	want.Sort()
	assert.Equal(t, want, dep.Includes)
	assert.Empty(t, dep.UsedMacros)
}

func TestScanner_MissingEntryPoint(t *testing.T) {
	w := newWorkspace(t, nil)

	part := domain.ProjectPartContainer{
		Name:        "part",
		EntryPoints: []domain.SourceID{w.id(t, "gone.h")},
	}

	_, err := scanner.New(w.paths, w.signer, nil).Create(context.Background(), part)
	require.ErrorContains(t, err, domain.ErrScanFailed.Error())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanner_UnknownEntryPoint(t *testing.T) {
	w := newWorkspace(t, nil)

	part := domain.ProjectPartContainer{
		Name:        "part",
		EntryPoints: []domain.SourceID{domain.NewSourceID(9, 9)},
	}

	_, err := scanner.New(w.paths, w.signer, nil).Create(context.Background(), part)
	require.ErrorIs(t, err, domain.ErrUnknownSourceID)
}

func TestScanner_Cancelled(t *testing.T) {
	w := newWorkspace(t, map[string]string{"a.h": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	part := domain.ProjectPartContainer{Name: "part", EntryPoints: []domain.SourceID{w.id(t, "a.h")}}
	_, err := scanner.New(w.paths, w.signer, nil).Create(ctx, part)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanner_NoEntryPoints(t *testing.T) {
	w := newWorkspace(t, nil)

	dep, err := scanner.New(w.paths, w.signer, nil).Create(context.Background(), domain.ProjectPartContainer{Name: "empty"})
	require.NoError(t, err)
	assert.True(t, dep.IsEmpty())
}

// rewritingSigner replaces the content of path the first time it is signed.
type rewritingSigner struct {
	inner   *fs.ContentSigner
	path    string
	content string
	done    bool
}

func (s *rewritingSigner) Signature(path string) (int64, error) {
	sig, err := s.inner.Signature(path)
	if err == nil && path == s.path && !s.done {
		s.done = true
		err = os.WriteFile(path, []byte(s.content), 0o600)
	}
	return sig, err
}

func TestScanner_SignsBeforeReading(t *testing.T) {
	w := newWorkspace(t, map[string]string{
		"a.h": "",
		"b.h": "",
	})
	path := filepath.Join(w.root, "a.h")
	before, err := w.signer.Signature(path)
	require.NoError(t, err)

	signer := &rewritingSigner{inner: w.signer, path: path, content: "#include \"b.h\"\n"}
	part := domain.ProjectPartContainer{Name: "part", EntryPoints: []domain.SourceID{w.id(t, "a.h")}}

	dep, err := scanner.New(w.paths, signer, nil).Create(context.Background(), part)
	require.NoError(t, err)

	// The new content was scanned, but the recorded signature is the old one,
	// so the entry no longer matches the file on disk.
	require.Equal(t, []domain.SourceID{w.id(t, "a.h"), w.id(t, "b.h")}, dep.Includes.IDs())
	a := dep.Includes[0]
	assert.Equal(t, before, a.Signature)

	after, err := w.signer.Signature(path)
	require.NoError(t, err)
	assert.NotEqual(t, after, a.Signature)
}
