package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// ProjectPartContainer describes one compilable unit: its flags, macros,
// include paths and the header entry points that seed dependency analysis.
type ProjectPartContainer struct {
	Name               string
	Arguments          []string
	CompilerMacros     []CompilerMacro
	IncludeSearchPaths []string
	ProjectFile        SourceID
	EntryPoints        []SourceID
}

// ProjectPart is the configured, path-based form of a project part, before
// its paths have been mapped to source ids.
type ProjectPart struct {
	Name         string
	ProjectFile  string
	Arguments    []string
	Macros       []CompilerMacro
	IncludePaths []string
	Headers      []string
}

// Workspace is the loaded configuration: a root directory and its project parts.
type Workspace struct {
	Root     string
	Settings Settings
	Parts    []ProjectPart
}

// Part returns the project part with the given name.
func (w *Workspace) Part(name string) (ProjectPart, bool) {
	for _, p := range w.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return ProjectPart{}, false
}

var validPartNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidatePartName checks that name is usable as a project part name.
func ValidatePartName(name string) error {
	if !validPartNameRegex.MatchString(name) {
		return zerr.With(ErrInvalidProjectPartName, "name", name)
	}
	return nil
}
