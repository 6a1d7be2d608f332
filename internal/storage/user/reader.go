package user

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

func (r *Reader) FindByID(_ context.Context, id string) (*core.User, error) {
	row, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}
