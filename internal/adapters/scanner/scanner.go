// Package scanner implements dependency generation by scanning C and C++
// preprocessor directives.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxExpansionDepth bounds macro expansion of #include operands.
const maxExpansionDepth = 8

var _ ports.DependenciesGenerator = (*Scanner)(nil)

// Scanner generates build dependencies by following the includes of every
// entry point of a project part.
type Scanner struct {
	paths  ports.SourcePathCache
	signer ports.Signer
	logger ports.Logger
}

// New creates a new Scanner.
func New(paths ports.SourcePathCache, signer ports.Signer, logger ports.Logger) *Scanner {
	return &Scanner{paths: paths, signer: signer, logger: logger}
}

type searchDir struct {
	path   string
	system bool
}

type node struct {
	id     domain.SourceID
	path   string
	depth  int
	system bool
	// index is the position in the search list the file was found at, or -1.
	index int
}

type scan struct {
	*Scanner

	dirs      []searchDir
	quoteDirs int
	defines   map[string][]string

	queue   []*node
	nodes   map[domain.SourceID]*node
	entries map[domain.SourceID]domain.SourceEntry
	macros  map[domain.SourceID][]string
	graph   *domain.DependencyGraph
}

// Create scans the project part and returns every reached source, the
// include edges between them and the macros each source consults.
func (s *Scanner) Create(ctx context.Context, part domain.ProjectPartContainer) (domain.BuildDependency, error) {
	base := ""
	if part.ProjectFile.IsValid() {
		if p, err := s.paths.Path(part.ProjectFile); err == nil {
			base = filepath.Dir(p)
		}
	}

	sp, defines := ParseArguments(part.Arguments, base)
	for _, dir := range part.IncludeSearchPaths {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		sp.Project = append(sp.Project, filepath.Clean(dir))
	}
	AddCompilerMacros(defines, part.CompilerMacros)

	sc := &scan{
		Scanner:   s,
		quoteDirs: len(sp.Quote),
		defines:   defines,
		nodes:     make(map[domain.SourceID]*node),
		entries:   make(map[domain.SourceID]domain.SourceEntry),
		macros:    make(map[domain.SourceID][]string),
		graph:     domain.NewDependencyGraph(),
	}
	for _, dir := range sp.Quote {
		sc.dirs = append(sc.dirs, searchDir{path: dir})
	}
	for _, dir := range sp.Project {
		sc.dirs = append(sc.dirs, searchDir{path: dir})
	}
	for _, dir := range sp.System {
		sc.dirs = append(sc.dirs, searchDir{path: dir, system: true})
	}

	for _, id := range part.EntryPoints {
		if _, ok := sc.nodes[id]; ok {
			continue
		}
		path, err := s.paths.Path(id)
		if err != nil {
			return domain.BuildDependency{}, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "project_part", part.Name)
		}
		sc.enqueue(&node{id: id, path: path, index: -1})
	}

	for len(sc.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return domain.BuildDependency{}, err
		}
		n := sc.queue[0]
		sc.queue = sc.queue[1:]
		if err := sc.visit(n); err != nil {
			return domain.BuildDependency{}, zerr.With(err, "project_part", part.Name)
		}
	}

	if err := s.paths.Flush(); err != nil {
		return domain.BuildDependency{}, err
	}

	return sc.result(), nil
}

func (sc *scan) enqueue(n *node) {
	sc.nodes[n.id] = n
	sc.queue = append(sc.queue, n)
}

// visit signs n before reading it, so a write in between leaves a recorded
// signature that no longer matches and the source is scanned again next time.
func (sc *scan) visit(n *node) error {
	sig, err := sc.signer.Signature(n.path)
	if err != nil {
		if n.depth == 0 {
			return zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", n.path)
		}
		sc.debug(fmt.Sprintf("skipping unsigned include %s: %v", n.path, err))
		return nil
	}

	buf, err := os.ReadFile(n.path)
	if err != nil {
		if n.depth == 0 {
			return zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", n.path)
		}
		sc.debug(fmt.Sprintf("skipping unreadable include %s: %v", n.path, err))
		return nil
	}
	sc.entries[n.id] = domain.NewSourceEntry(n.id, sourceType(n), sig)

	d := ScanDirectives(buf)
	for macro, values := range d.Defines {
		sc.defines[macro] = append(sc.defines[macro], values...)
	}
	if len(d.Macros) > 0 {
		sc.macros[n.id] = d.Macros
	}

	for _, inc := range d.Includes {
		for _, spec := range sc.expand(inc.Spec, 0) {
			if err := sc.include(n, Include{Spec: spec, Next: inc.Next}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (sc *scan) include(from *node, inc Include) error {
	path, index, system, ok := sc.resolve(from, inc)
	if !ok {
		sc.debug(fmt.Sprintf("%s: include %s not found", from.path, inc.Spec))
		return nil
	}

	id, err := sc.paths.SourceID(path)
	if err != nil {
		return err
	}
	sc.graph.AddEdge(from.id, id)

	if _, seen := sc.nodes[id]; !seen {
		sc.enqueue(&node{id: id, path: path, depth: from.depth + 1, system: system, index: index})
	}
	return nil
}

// resolve finds the file named by inc. Quoted includes look next to the
// including file first, then the search list; angle includes skip -iquote
// directories; #include_next continues after the directory the including
// file was found in.
func (sc *scan) resolve(from *node, inc Include) (string, int, bool, bool) {
	name := inc.Spec[1 : len(inc.Spec)-1]
	if name == "" {
		return "", 0, false, false
	}

	if filepath.IsAbs(name) {
		return name, -1, false, isFile(name)
	}

	start := 0
	if !inc.Quoted() {
		start = sc.quoteDirs
	}
	if inc.Next && from.index >= 0 {
		start = max(start, from.index+1)
	} else if inc.Quoted() {
		candidate := filepath.Join(filepath.Dir(from.path), name)
		if isFile(candidate) {
			return candidate, -1, from.system, true
		}
	}

	for i := start; i < len(sc.dirs); i++ {
		candidate := filepath.Join(sc.dirs[i].path, name)
		if isFile(candidate) {
			return candidate, i, sc.dirs[i].system, true
		}
	}
	return "", 0, false, false
}

// expand turns an include operand into the operands it may stand for.
func (sc *scan) expand(spec string, depth int) []string {
	if spec == "" {
		return nil
	}
	if spec[0] == '"' || spec[0] == '<' {
		return []string{spec}
	}
	if depth >= maxExpansionDepth {
		return nil
	}
	var out []string
	for _, v := range sc.defines[spec] {
		out = append(out, sc.expand(v, depth+1)...)
	}
	return out
}

func (sc *scan) result() domain.BuildDependency {
	var dep domain.BuildDependency

	for _, e := range sc.entries {
		dep.Includes = append(dep.Includes, e)
	}
	dep.Includes.Sort()

	for id, names := range sc.macros {
		if _, ok := sc.entries[id]; !ok {
			continue
		}
		for _, name := range names {
			dep.UsedMacros = append(dep.UsedMacros, domain.NewUsedMacro(name, id))
		}
	}
	dep.UsedMacros.Sort()

	dep.SourceDependencies = sc.graph.Edges()

	return dep
}

func (sc *scan) debug(msg string) {
	if sc.logger != nil {
		sc.logger.Debug(msg)
	}
}

func sourceType(n *node) domain.SourceType {
	switch {
	case n.depth == 0:
		return domain.SourceTypeSource
	case n.depth == 1 && n.system:
		return domain.SourceTypeTopSystemInclude
	case n.depth == 1:
		return domain.SourceTypeTopProjectInclude
	case n.system:
		return domain.SourceTypeSystemInclude
	default:
		return domain.SourceTypeProjectInclude
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
