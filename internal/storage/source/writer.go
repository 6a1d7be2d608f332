package source

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/memtable"
)

type Writer struct {
	tx *memtable.Tx[string, core.Source]
}

func NewWriter(table *Table) *Writer {
	return &Writer{tx: table.Begin()}
}

func (w *Writer) FindByID(_ context.Context, id string) (*core.Source, error) {
	row, ok := w.tx.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

// Insert stages a new source under a fresh id.
func (w *Writer) Insert(_ context.Context, create *SourceCreate) (*core.Source, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "generate source id")
	}

	row := core.Source{
		ID:          id.String(),
		Name:        create.Name,
		Type:        create.Type,
		Platform:    create.Platform,
		Description: create.Description,
		OwnerID:     create.OwnerID,
	}
	w.tx.Put(row)
	return &row, nil
}

// Delete stages removal of a source. The personal source is never removed.
func (w *Writer) Delete(ctx context.Context, id string) error {
	if id == core.PersonalSourceID {
		return nil
	}
	if _, err := w.FindByID(ctx, id); err != nil {
		return err
	}
	w.tx.Delete(id)
	return nil
}

func (w *Writer) Commit() {
	w.tx.Commit()
}

func (w *Writer) Rollback() {
	w.tx.Rollback()
}
