package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

// FindByID returns a copy of the transaction with the given id.
func (r *Reader) FindByID(_ context.Context, id uuid.UUID) (*core.Transaction, error) {
	row, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

// List returns transactions matching the filter in insertion order. Nil filter returns all.
func (r *Reader) List(_ context.Context, filter *TransactionFilter) []core.Transaction {
	return filterRows(r.table.All(), filter)
}

func filterRows(rows []core.Transaction, filter *TransactionFilter) []core.Transaction {
	result := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		if filter.matches(row) {
			result = append(result, row)
		}
	}
	return result
}
