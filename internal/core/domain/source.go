// Package domain contains the core domain models for source dependency resolution.
package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// SourceID identifies a file by the pair of its directory id and file id.
// It is comparable and totally ordered, directory first.
type SourceID struct {
	DirectoryID int32
	FileID      int32
}

// NewSourceID creates a SourceID from a directory id and a file id.
func NewSourceID(directoryID, fileID int32) SourceID {
	return SourceID{DirectoryID: directoryID, FileID: fileID}
}

// IsValid reports whether both ids were assigned.
func (id SourceID) IsValid() bool {
	return id.DirectoryID > 0 && id.FileID > 0
}

// Compare returns -1, 0 or +1 depending on whether id sorts before, equal to or after other.
func (id SourceID) Compare(other SourceID) int {
	if c := cmp.Compare(id.DirectoryID, other.DirectoryID); c != 0 {
		return c
	}
	return cmp.Compare(id.FileID, other.FileID)
}

// Less reports whether id sorts before other.
func (id SourceID) Less(other SourceID) bool {
	return id.Compare(other) < 0
}

// String returns the "directory:file" form of the id.
func (id SourceID) String() string {
	return strconv.FormatInt(int64(id.DirectoryID), 10) + ":" + strconv.FormatInt(int64(id.FileID), 10)
}

// MarshalText implements encoding.TextMarshaler so ids can key JSON objects.
func (id SourceID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *SourceID) UnmarshalText(text []byte) error {
	parsed, err := ParseSourceID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseSourceID parses the "directory:file" form produced by SourceID.String.
func ParseSourceID(s string) (SourceID, error) {
	dir, file, ok := strings.Cut(s, ":")
	if !ok {
		return SourceID{}, zerr.With(ErrInvalidSourceID, "value", s)
	}
	d, err := strconv.ParseInt(dir, 10, 32)
	if err != nil {
		return SourceID{}, zerr.With(zerr.Wrap(err, ErrInvalidSourceID.Error()), "value", s)
	}
	f, err := strconv.ParseInt(file, 10, 32)
	if err != nil {
		return SourceID{}, zerr.With(zerr.Wrap(err, ErrInvalidSourceID.Error()), "value", s)
	}
	return NewSourceID(int32(d), int32(f)), nil
}

// SourceType classifies how a source was reached during analysis.
type SourceType uint8

const (
	// SourceTypeAny is used when the classification is irrelevant.
	SourceTypeAny SourceType = iota
	// SourceTypeSource is a translation unit or entry point.
	SourceTypeSource
	// SourceTypeTopProjectInclude is a project header included directly by an entry point.
	SourceTypeTopProjectInclude
	// SourceTypeTopSystemInclude is a system header included directly by an entry point.
	SourceTypeTopSystemInclude
	// SourceTypeProjectInclude is a project header reached transitively.
	SourceTypeProjectInclude
	// SourceTypeSystemInclude is a system header reached transitively.
	SourceTypeSystemInclude
)

var sourceTypeNames = [...]string{
	SourceTypeAny:               "any",
	SourceTypeSource:            "source",
	SourceTypeTopProjectInclude: "top-project-include",
	SourceTypeTopSystemInclude:  "top-system-include",
	SourceTypeProjectInclude:    "project-include",
	SourceTypeSystemInclude:     "system-include",
}

// String returns the kebab-case name of the type.
func (t SourceType) String() string {
	if int(t) < len(sourceTypeNames) {
		return sourceTypeNames[t]
	}
	return fmt.Sprintf("source-type(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t SourceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SourceType) UnmarshalText(text []byte) error {
	for i, name := range sourceTypeNames {
		if name == string(text) {
			*t = SourceType(i) //nolint:gosec // Bounded by the names table
			return nil
		}
	}
	return zerr.With(ErrInvalidSourceType, "value", string(text))
}

// IsSystem reports whether the source is a system header.
func (t SourceType) IsSystem() bool {
	return t == SourceTypeTopSystemInclude || t == SourceTypeSystemInclude
}

// SourceEntry is a source together with its classification and the
// modification signature recorded when it was last analysed.
type SourceEntry struct {
	ID        SourceID   `json:"id"`
	Type      SourceType `json:"type"`
	Signature int64      `json:"signature"`
}

// NewSourceEntry creates a SourceEntry.
func NewSourceEntry(id SourceID, sourceType SourceType, signature int64) SourceEntry {
	return SourceEntry{ID: id, Type: sourceType, Signature: signature}
}

// SourceEntries is an ordered list of source entries.
type SourceEntries []SourceEntry

// Sort orders the entries ascending by source id.
func (s SourceEntries) Sort() {
	slices.SortFunc(s, func(a, b SourceEntry) int {
		return a.ID.Compare(b.ID)
	})
}

// IDs returns the source ids in entry order.
func (s SourceEntries) IDs() []SourceID {
	ids := make([]SourceID, len(s))
	for i, e := range s {
		ids[i] = e.ID
	}
	return ids
}
