package source

import (
	"context"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

func (r *Reader) FindByID(_ context.Context, id string) (*core.Source, error) {
	row, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

// List returns sources in creation order; personal is always first.
func (r *Reader) List(_ context.Context, filter *SourceFilter) []core.Source {
	return filterRows(r.table.All(), filter)
}
