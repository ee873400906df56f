package domain

import "slices"

// SourceDependency is a single include edge: SourceID includes DependencySourceID.
type SourceDependency struct {
	SourceID           SourceID `json:"sourceId"`
	DependencySourceID SourceID `json:"dependencySourceId"`
}

// NewSourceDependency creates a SourceDependency edge.
func NewSourceDependency(from, to SourceID) SourceDependency {
	return SourceDependency{SourceID: from, DependencySourceID: to}
}

// BuildDependency is the resolved dependency information for a project part.
type BuildDependency struct {
	Includes           SourceEntries      `json:"includes"`
	UsedMacros         UsedMacros         `json:"usedMacros"`
	SourceDependencies []SourceDependency `json:"sourceDependencies,omitempty"`
}

// IsEmpty reports whether the dependency carries no data at all.
func (b BuildDependency) IsEmpty() bool {
	return len(b.Includes) == 0 && len(b.UsedMacros) == 0 && len(b.SourceDependencies) == 0
}

// Resolution is a BuildDependency together with how it was obtained.
type Resolution struct {
	Dependency BuildDependency
	// Regenerated is true when the result came from the generator.
	Regenerated bool
	// StaleEntry is the first entry point found out of date. Only set when Regenerated.
	StaleEntry SourceID
}

// SourceRecord is the persisted form of one source: its classification,
// signature, direct includes and the macro names it consults.
type SourceRecord struct {
	Type         SourceType `json:"type"`
	Signature    int64      `json:"signature"`
	Dependencies []SourceID `json:"dependencies,omitempty"`
	Macros       []string   `json:"macros,omitempty"`
}

// Records splits b into one record per included source.
// Edges and macros of sources that are not part of Includes are dropped.
func (b BuildDependency) Records() map[SourceID]SourceRecord {
	records := make(map[SourceID]SourceRecord, len(b.Includes))
	for _, e := range b.Includes {
		records[e.ID] = SourceRecord{Type: e.Type, Signature: e.Signature}
	}
	graph := GraphFromDependencies(b.SourceDependencies)
	for id, r := range records {
		r.Dependencies = graph.Dependencies(id)
		records[id] = r
	}
	for _, m := range b.UsedMacros {
		r, ok := records[m.SourceID]
		if !ok || slices.Contains(r.Macros, m.Name) {
			continue
		}
		r.Macros = append(r.Macros, m.Name)
		records[m.SourceID] = r
	}
	return records
}

// UsedMacros returns the record's macros attributed to id, sorted by name.
func (r SourceRecord) UsedMacros(id SourceID) UsedMacros {
	if len(r.Macros) == 0 {
		return UsedMacros{}
	}
	macros := make(UsedMacros, len(r.Macros))
	for i, name := range r.Macros {
		macros[i] = NewUsedMacro(name, id)
	}
	macros.Sort()
	return macros
}
