package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage"
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
)

type CreateTransaction struct {
	Create transaction.TransactionCreate

	Result *core.Transaction
}

func (t *CreateTransaction) Name() string { return "create_transaction" }

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	src, err := writer.Source.FindByID(ctx, t.Create.SourceID)
	if errors.Is(err, source.ErrNotFound) {
		return ErrUnknownSource
	}
	if err != nil {
		return err
	}
	if !src.VisibleTo(t.Create.UserID) {
		return ErrUnknownSource
	}

	created, err := writer.Transaction.Insert(ctx, &t.Create)
	if err != nil {
		return errors.Wrap(err, "insert transaction")
	}

	t.Result = created
	return nil
}

// SetTransactionStatus records an admin decision. Previous holds the status
// the transaction had before, so callers can spot re-decisions.
type SetTransactionStatus struct {
	ID     uuid.UUID
	Status core.Status

	Previous core.Status
	Result   *core.Transaction
}

func (t *SetTransactionStatus) Name() string { return "set_transaction_status" }

func (t *SetTransactionStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}

	updated, err := writer.Transaction.UpdateStatus(ctx, t.ID, t.Status)
	if err != nil {
		return err
	}

	t.Previous = existing.Status
	t.Result = updated
	return nil
}

// EditTransaction changes amount and/or description of a transaction owned by UserID.
type EditTransaction struct {
	ID     uuid.UUID
	UserID string
	Update transaction.TransactionUpdate

	Result *core.Transaction
}

func (t *EditTransaction) Name() string { return "edit_transaction" }

func (t *EditTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if existing.UserID != t.UserID {
		return transaction.ErrNotFound
	}

	updated, err := writer.Transaction.Update(ctx, t.ID, &t.Update)
	if err != nil {
		return err
	}

	t.Result = updated
	return nil
}
