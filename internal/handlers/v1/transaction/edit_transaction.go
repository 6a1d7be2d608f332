package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/hustle-tracker/internal/service"
)

// EditTransactionBody carries the fields to change. Absent fields are kept.
type EditTransactionBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Amount      *float64 `json:"amount,omitempty" doc:"New positive amount"`
	Description *string  `json:"description,omitempty" doc:"New description"`
}

// EditTransactionInput is the Huma input for editing a transaction.
type EditTransactionInput struct {
	UserID string `header:"user-id" doc:"Caller identity, must own the transaction"`
	ID     string `path:"id" doc:"Transaction UUID"`
	Body   EditTransactionBody
}

// EditTransactionOutput is the Huma output for editing a transaction.
type EditTransactionOutput struct {
	Body Transaction
}

// transactionEditor is the interface for editing transactions.
type transactionEditor interface {
	Edit(ctx context.Context, token string, id string, patch service.TransactionPatch) (*core.Transaction, error)
}

// EditTransactionHandler handles PATCH /api/transactions/{id}.
type EditTransactionHandler struct {
	TransactionService transactionEditor
}

// NewEditTransactionHandler creates a new EditTransactionHandler.
func NewEditTransactionHandler(svc transactionEditor) *EditTransactionHandler {
	return &EditTransactionHandler{TransactionService: svc}
}

// Register registers the edit transaction endpoint with the Huma API.
func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodPatch,
		Path:        "/api/transactions/{id}",
		Summary:     "Edit transaction",
		Description: "Changes the amount and/or description of one of the caller's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseEditTransactionInput(input *EditTransactionInput) service.TransactionPatch {
	patch := service.TransactionPatch{Description: input.Body.Description}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		patch.Amount = &amount
	}
	return patch
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *EditTransactionInput) (*EditTransactionOutput, error) {
	edited, err := h.TransactionService.Edit(ctx, input.UserID, input.ID, parseEditTransactionInput(input))
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to edit transaction")
	}

	return &EditTransactionOutput{Body: fromCore(edited)}, nil
}
