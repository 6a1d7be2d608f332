package core

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeIncome  TransactionType = "INCOME"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Category is the closed, case-sensitive set of transaction categories.
type Category string

const (
	CategorySalary        Category = "SALARY"
	CategoryFreelance     Category = "FREELANCE"
	CategoryInvestment    Category = "INVESTMENT"
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryHealthcare    Category = "HEALTHCARE"
	CategoryShopping      Category = "SHOPPING"
	CategoryOther         Category = "OTHER"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryShopping,
	CategoryOther,
}

// Valid reports whether c is one of the ten known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the approval state of a transaction.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Decided reports whether s is a status an admin may set.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	SourceID    string
	Category    Category
	Description string
	Date        string // ISO date as submitted
	UserID      string
	Status      Status
	CreatedAt   time.Time
}

// OccurredOn parses Date. Unparseable dates yield the zero time.
func (t Transaction) OccurredOn() time.Time {
	d, err := ParseDate(t.Date)
	if err != nil {
		return time.Time{}
	}
	return d
}

// IsIncome reports whether the transaction adds to the balance.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}
