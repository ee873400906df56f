package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/core/domain"
)

func TestBuildDependency_Records(t *testing.T) {
	dep := domain.BuildDependency{
		Includes: domain.SourceEntries{
			domain.NewSourceEntry(id(1, 2), domain.SourceTypeSource, 20),
			domain.NewSourceEntry(id(1, 1), domain.SourceTypeTopProjectInclude, 10),
		},
		UsedMacros: domain.UsedMacros{
			domain.NewUsedMacro("YI", id(1, 1)),
			domain.NewUsedMacro("YI", id(1, 1)),
			domain.NewUsedMacro("GHOST", id(9, 9)),
		},
		SourceDependencies: []domain.SourceDependency{
			domain.NewSourceDependency(id(1, 2), id(1, 1)),
			domain.NewSourceDependency(id(1, 2), id(1, 1)),
			domain.NewSourceDependency(id(9, 9), id(1, 1)),
		},
	}

	records := dep.Records()

	assert.Len(t, records, 2)
	assert.Equal(t, domain.SourceRecord{
		Type:         domain.SourceTypeSource,
		Signature:    20,
		Dependencies: []domain.SourceID{id(1, 1)},
	}, records[id(1, 2)])
	assert.Equal(t, domain.SourceRecord{
		Type:      domain.SourceTypeTopProjectInclude,
		Signature: 10,
		Macros:    []string{"YI"},
	}, records[id(1, 1)])
}

func TestSourceRecord_UsedMacros(t *testing.T) {
	r := domain.SourceRecord{Macros: []string{"LIANG", "ER"}}

	assert.Equal(t, domain.UsedMacros{
		domain.NewUsedMacro("ER", id(1, 2)),
		domain.NewUsedMacro("LIANG", id(1, 2)),
	}, r.UsedMacros(id(1, 2)))
	assert.Empty(t, domain.SourceRecord{}.UsedMacros(id(1, 2)))
}
