package transaction

import (
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/memtable"
)

var ErrNotFound = errors.New("transaction not found")

// Table is the in-memory transactions table.
type Table = memtable.Table[uuid.UUID, core.Transaction]

// NewTable creates an empty transactions table.
func NewTable() *Table {
	return memtable.New(func(t core.Transaction) uuid.UUID { return t.ID })
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount      decimal.Decimal
	Type        core.TransactionType
	SourceID    string
	Category    core.Category
	Description string
	Date        string
	UserID      string
}

// TransactionUpdate carries editable fields. Nil fields are left untouched.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Description *string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID   *string
	SourceID *string
}

func (f *TransactionFilter) matches(t core.Transaction) bool {
	if f == nil {
		return true
	}
	if f.UserID != nil && t.UserID != *f.UserID {
		return false
	}
	if f.SourceID != nil && t.SourceID != *f.SourceID {
		return false
	}
	return true
}
