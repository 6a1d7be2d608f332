package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/access"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/hustle-tracker/internal/logging"
)

// SetStatusBody is the request body for deciding a transaction.
type SetStatusBody struct {
	_      struct{} `json:"-" additionalProperties:"true"`
	Status string   `json:"status,omitempty" doc:"APPROVED or REJECTED"`
}

// SetStatusInput is the Huma input for deciding a transaction.
type SetStatusInput struct {
	UserID string `header:"user-id" doc:"Caller identity, must be an admin"`
	ID     string `path:"id" doc:"Transaction UUID"`
	Body   SetStatusBody
}

// SetStatusOutput is the Huma output for deciding a transaction.
type SetStatusOutput struct {
	Body Transaction
}

// statusSetter is the interface for deciding transactions.
type statusSetter interface {
	SetStatus(ctx context.Context, token string, id string, status string) (*core.Transaction, error)
}

// SetStatusHandler handles PATCH /api/transactions/{id}/status.
type SetStatusHandler struct {
	TransactionService statusSetter
}

// NewSetStatusHandler creates a new SetStatusHandler.
func NewSetStatusHandler(svc statusSetter) *SetStatusHandler {
	return &SetStatusHandler{TransactionService: svc}
}

// Register registers the set status endpoint with the Huma API.
func (h *SetStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-transaction-status",
		Method:      http.MethodPatch,
		Path:        "/api/transactions/{id}/status",
		Summary:     "Approve or reject transaction",
		Description: "Admin only. Sets the status of a transaction to APPROVED or REJECTED.",
		Tags:        []string{"Transactions"},
		Metadata:    map[string]any{access.AdminOnly: true},
	}, h.handle)
}

func (h *SetStatusHandler) handle(ctx context.Context, input *SetStatusInput) (*SetStatusOutput, error) {
	logging.GetLogData(ctx).AddData("transactionId", input.ID)

	updated, err := h.TransactionService.SetStatus(ctx, input.UserID, input.ID, input.Body.Status)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to update transaction status")
	}

	return &SetStatusOutput{Body: fromCore(updated)}, nil
}
