package domain

import (
	"cmp"
	"slices"
)

// UsedMacro records that the preprocessor consulted a macro name while
// processing a particular source.
type UsedMacro struct {
	Name     string   `json:"name"`
	SourceID SourceID `json:"sourceId"`
}

// NewUsedMacro creates a UsedMacro.
func NewUsedMacro(name string, id SourceID) UsedMacro {
	return UsedMacro{Name: name, SourceID: id}
}

// Compare orders used macros by source id, then by name.
func (m UsedMacro) Compare(other UsedMacro) int {
	if c := m.SourceID.Compare(other.SourceID); c != 0 {
		return c
	}
	return cmp.Compare(m.Name, other.Name)
}

// UsedMacros is an ordered list of used macros.
type UsedMacros []UsedMacro

// Sort orders the macros by source id, then by name.
func (m UsedMacros) Sort() {
	slices.SortFunc(m, UsedMacro.Compare)
}

// CompilerMacro is a macro definition passed to the compiler, e.g. -DKEY=VALUE.
type CompilerMacro struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewCompilerMacro creates a CompilerMacro.
func NewCompilerMacro(key, value string) CompilerMacro {
	return CompilerMacro{Key: key, Value: value}
}
