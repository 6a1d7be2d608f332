package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

// TransactionInput is an unvalidated create request. Nil Amount or
// Description means the field was absent; an empty description is allowed.
type TransactionInput struct {
	Amount      *decimal.Decimal
	Type        string
	Category    string
	Description *string
	Date        string
	UserID      string
	SourceID    string
}

// TransactionPatch is an owner edit. Nil fields are left as they are.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Description *string
}

func (in *TransactionInput) validate(callerID string) error {
	verr := &ValidationError{Message: "Validation failed"}

	validateAmount(verr, in.Amount)
	if !core.TransactionType(in.Type).Valid() {
		verr.add("type", "must be one of EXPENSE, INCOME")
	}
	if !core.Category(in.Category).Valid() {
		verr.add("category", "must be a known category")
	}
	if in.Description == nil {
		verr.add("description", "is required")
	}
	if in.Date == "" {
		verr.add("date", "is required")
	} else if _, err := core.ParseDate(in.Date); err != nil {
		verr.add("date", "must be an ISO-8601 date")
	}
	if in.UserID != "" && in.UserID != callerID {
		verr.add("userId", "must match the caller")
	}

	return verr.orNil()
}

func (p *TransactionPatch) validate() error {
	verr := &ValidationError{Message: "Validation failed"}
	if p.Amount != nil {
		validateAmount(verr, p.Amount)
	}
	return verr.orNil()
}

func validateAmount(verr *ValidationError, amount *decimal.Decimal) {
	switch {
	case amount == nil:
		verr.add("amount", "is required")
	case !amount.IsPositive():
		verr.add("amount", "must be a positive number")
	}
}
