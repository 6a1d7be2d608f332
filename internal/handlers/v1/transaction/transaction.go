package transaction

import (
	"time"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	Amount      float64 `json:"amount" doc:"Positive amount"`
	Type        string  `json:"type" enum:"EXPENSE,INCOME" doc:"Direction of money movement"`
	SourceID    string  `json:"sourceId" doc:"Source the transaction is attributed to"`
	Category    string  `json:"category" doc:"Transaction category"`
	Description string  `json:"description" doc:"Free text description"`
	Date        string  `json:"date" doc:"ISO date as submitted"`
	UserID      string  `json:"userId" doc:"Owner of the transaction"`
	Status      string  `json:"status" enum:"PENDING,APPROVED,REJECTED" doc:"Approval status"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromCore(tx *core.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.InexactFloat64(),
		Type:        string(tx.Type),
		SourceID:    tx.SourceID,
		Category:    string(tx.Category),
		Description: tx.Description,
		Date:        tx.Date,
		UserID:      tx.UserID,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339Nano),
	}
}
