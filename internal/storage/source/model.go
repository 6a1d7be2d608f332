package source

import (
	"errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/memtable"
)

var ErrNotFound = errors.New("source not found")

// Table is the in-memory sources table.
type Table = memtable.Table[string, core.Source]

// NewTable creates a sources table seeded with the personal source.
func NewTable() *Table {
	t := memtable.New(func(s core.Source) string { return s.ID })
	tx := t.Begin()
	tx.Put(core.PersonalSource())
	tx.Commit()
	return t
}

// SourceCreate is the input for creating a new source.
type SourceCreate struct {
	Name        string
	Type        core.SourceType
	Platform    string
	Description string
	OwnerID     string
}

// SourceFilter limits a listing to sources visible to VisibleTo. Empty lists everything.
type SourceFilter struct {
	VisibleTo string
}

func (f *SourceFilter) matches(s core.Source) bool {
	if f == nil || f.VisibleTo == "" {
		return true
	}
	return s.VisibleTo(f.VisibleTo)
}

func filterRows(rows []core.Source, filter *SourceFilter) []core.Source {
	result := make([]core.Source, 0, len(rows))
	for _, row := range rows {
		if filter.matches(row) {
			result = append(result, row)
		}
	}
	return result
}
