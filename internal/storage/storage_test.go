package storage

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
)

func newCreate(userID string) *transaction.TransactionCreate {
	return &transaction.TransactionCreate{
		Amount:      decimal.RequireFromString("12.50"),
		Type:        core.TransactionTypeExpense,
		SourceID:    core.PersonalSourceID,
		Category:    core.CategoryFood,
		Description: "Lunch",
		Date:        "2024-01-15",
		UserID:      userID,
	}
}

func TestNewStorage_SeedsPersonalSourceAndUsers(t *testing.T) {
	s := NewStorage(core.User{ID: "admin1", Role: core.RoleAdmin})

	err := s.View(context.Background(), func(r *Reader) error {
		sources := r.Sources.List(context.Background(), nil)
		require.Len(t, sources, 1)
		assert.Equal(t, core.PersonalSource(), sources[0])

		u, err := r.Users.FindByID(context.Background(), "admin1")
		require.NoError(t, err)
		assert.Equal(t, core.RoleAdmin, u.Role)
		return nil
	})
	assert.NoError(t, err)
}

func TestWrite_CommitPersists(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, err := s.Write(ctx)
	require.NoError(t, err)
	created, err := w.Transaction.Insert(ctx, newCreate("u1"))
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	assert.Equal(t, core.StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "UTC", created.CreatedAt.Location().String())

	_ = s.View(ctx, func(r *Reader) error {
		found, err := r.Transactions.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *found)
		return nil
	})
}

func TestWrite_RollbackDiscards(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, err := s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Transaction.Insert(ctx, newCreate("u1"))
	require.NoError(t, err)
	_, err = w.Source.Insert(ctx, &source.SourceCreate{Name: "Etsy", Type: core.SourceTypeSideHustle, OwnerID: "u1"})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	_ = s.View(ctx, func(r *Reader) error {
		assert.Empty(t, r.Transactions.List(ctx, nil))
		assert.Len(t, r.Sources.List(ctx, nil), 1)
		return nil
	})
}

func TestWrite_ReleasesLockOnce(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, err := s.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	assert.ErrorIs(t, w.Commit(), ErrWriterClosed)
	assert.ErrorIs(t, w.Rollback(), ErrWriterClosed)

	w2, err := s.Write(ctx)
	require.NoError(t, err)
	assert.NoError(t, w2.Rollback())
}

func TestWrite_CancelledContext(t *testing.T) {
	s := NewStorage()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w, err := s.Write(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, w)

	err = s.View(ctx, func(*Reader) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestView_ReturnsCopies(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, _ := s.Write(ctx)
	created, _ := w.Transaction.Insert(ctx, newCreate("u1"))
	_ = w.Commit()

	_ = s.View(ctx, func(r *Reader) error {
		rows := r.Transactions.List(ctx, nil)
		rows[0].Description = "mutated"
		found, _ := r.Transactions.FindByID(ctx, created.ID)
		found.Status = core.StatusApproved
		return nil
	})

	_ = s.View(ctx, func(r *Reader) error {
		found, err := r.Transactions.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lunch", found.Description)
		assert.Equal(t, core.StatusPending, found.Status)
		return nil
	})
}

func TestTransactionWriter_UpdateStatusAndEdit(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, _ := s.Write(ctx)
	created, _ := w.Transaction.Insert(ctx, newCreate("u1"))

	updated, err := w.Transaction.UpdateStatus(ctx, created.ID, core.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, core.StatusRejected, updated.Status)

	amount := decimal.RequireFromString("99")
	desc := "Dinner"
	edited, err := w.Transaction.Update(ctx, created.ID, &transaction.TransactionUpdate{Amount: &amount, Description: &desc})
	require.NoError(t, err)
	assert.True(t, edited.Amount.Equal(amount))
	assert.Equal(t, "Dinner", edited.Description)
	assert.Equal(t, core.StatusRejected, edited.Status)
	require.NoError(t, w.Commit())

	_ = s.View(ctx, func(r *Reader) error {
		rows := r.Transactions.List(ctx, nil)
		require.Len(t, rows, 1)
		assert.Equal(t, *edited, rows[0])
		return nil
	})
}

func TestTransactionReader_ListFilters(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, _ := s.Write(ctx)
	_, _ = w.Transaction.Insert(ctx, newCreate("u1"))
	_, _ = w.Transaction.Insert(ctx, newCreate("u2"))
	other := newCreate("u1")
	other.SourceID = "etsy"
	_, _ = w.Transaction.Insert(ctx, other)
	_ = w.Commit()

	u1 := "u1"
	etsy := "etsy"
	_ = s.View(ctx, func(r *Reader) error {
		assert.Len(t, r.Transactions.List(ctx, &transaction.TransactionFilter{UserID: &u1}), 2)
		assert.Len(t, r.Transactions.List(ctx, &transaction.TransactionFilter{UserID: &u1, SourceID: &etsy}), 1)
		assert.Len(t, r.Transactions.List(ctx, nil), 3)
		return nil
	})
}

func TestTransactionWriter_UnknownID(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, _ := s.Write(ctx)
	defer func() { _ = w.Rollback() }()

	_, err := w.Transaction.UpdateStatus(ctx, uuid.Must(uuid.NewV4()), core.StatusApproved)
	assert.ErrorIs(t, err, transaction.ErrNotFound)

	_, err = w.Transaction.Update(ctx, uuid.Must(uuid.NewV4()), &transaction.TransactionUpdate{})
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestSourceWriter_DeletePersonalIsNoop(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, _ := s.Write(ctx)
	require.NoError(t, w.Source.Delete(ctx, core.PersonalSourceID))
	assert.ErrorIs(t, w.Source.Delete(ctx, "missing"), source.ErrNotFound)
	require.NoError(t, w.Commit())

	_ = s.View(ctx, func(r *Reader) error {
		_, err := r.Sources.FindByID(ctx, core.PersonalSourceID)
		assert.NoError(t, err)
		return nil
	})
}

func TestSourceReader_VisibleTo(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	w, _ := s.Write(ctx)
	mine, _ := w.Source.Insert(ctx, &source.SourceCreate{Name: "Etsy", Type: core.SourceTypeSideHustle, OwnerID: "u1"})
	_, _ = w.Source.Insert(ctx, &source.SourceCreate{Name: "Uber", Type: core.SourceTypeSideHustle, OwnerID: "u2"})
	_ = w.Commit()

	_ = s.View(ctx, func(r *Reader) error {
		visible := r.Sources.List(ctx, &source.SourceFilter{VisibleTo: "u1"})
		require.Len(t, visible, 2)
		assert.Equal(t, core.PersonalSourceID, visible[0].ID)
		assert.Equal(t, mine.ID, visible[1].ID)
		assert.Len(t, r.Sources.List(ctx, nil), 3)
		return nil
	})
}
