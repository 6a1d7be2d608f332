package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/memtable"
)

type Writer struct {
	tx  *memtable.Tx[uuid.UUID, core.Transaction]
	now func() time.Time
}

func NewWriter(table *Table) *Writer {
	return &Writer{
		tx:  table.Begin(),
		now: time.Now,
	}
}

// FindByID sees changes staged by this writer.
func (w *Writer) FindByID(_ context.Context, id uuid.UUID) (*core.Transaction, error) {
	row, ok := w.tx.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

// Insert stages a new PENDING transaction with a fresh id and returns it.
func (w *Writer) Insert(_ context.Context, create *TransactionCreate) (*core.Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "generate transaction id")
	}

	row := core.Transaction{
		ID:          id,
		Amount:      create.Amount,
		Type:        create.Type,
		SourceID:    create.SourceID,
		Category:    create.Category,
		Description: create.Description,
		Date:        create.Date,
		UserID:      create.UserID,
		Status:      core.StatusPending,
		CreatedAt:   w.now().UTC(),
	}
	w.tx.Put(row)
	return &row, nil
}

// UpdateStatus stages a status change. It does not guard against repeated transitions.
func (w *Writer) UpdateStatus(ctx context.Context, id uuid.UUID, status core.Status) (*core.Transaction, error) {
	row, err := w.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	row.Status = status
	w.tx.Put(*row)
	return row, nil
}

// Update stages edits to the non-nil fields of update.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*core.Transaction, error) {
	row, err := w.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Amount != nil {
		row.Amount = *update.Amount
	}
	if update.Description != nil {
		row.Description = *update.Description
	}
	w.tx.Put(*row)
	return row, nil
}

func (w *Writer) Commit() {
	w.tx.Commit()
}

func (w *Writer) Rollback() {
	w.tx.Rollback()
}
