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

// CreateTransactionBody is the request body for creating a transaction.
// Field rules are enforced by the service so every problem is reported at once.
type CreateTransactionBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Amount      *float64 `json:"amount,omitempty" doc:"Positive amount"`
	Type        string   `json:"type,omitempty" doc:"EXPENSE or INCOME"`
	Category    string   `json:"category,omitempty" doc:"SALARY, FREELANCE, INVESTMENT, FOOD, TRANSPORT, UTILITIES, ENTERTAINMENT, HEALTHCARE, SHOPPING or OTHER"`
	Description *string  `json:"description,omitempty" doc:"Free text description, may be empty"`
	Date        string   `json:"date,omitempty" doc:"ISO-8601 date, e.g. 2024-01-15"`
	UserID      string   `json:"userId,omitempty" doc:"Must equal the caller when given"`
	SourceID    string   `json:"sourceId,omitempty" doc:"Source id, defaults to personal"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"user-id" doc:"Caller identity"`
	Body   CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, token string, input service.TransactionInput) (*core.Transaction, error)
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/transactions",
		Summary:       "Create transaction",
		Description:   "Records a new PENDING transaction for the caller.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) service.TransactionInput {
	parsed := service.TransactionInput{
		Type:        input.Body.Type,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		Date:        input.Body.Date,
		UserID:      input.Body.UserID,
		SourceID:    input.Body.SourceID,
	}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		parsed.Amount = &amount
	}
	return parsed
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	created, err := h.TransactionService.Create(ctx, input.UserID, parseCreateTransactionInput(input))
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to create transaction")
	}

	return &CreateTransactionOutput{Body: fromCore(created)}, nil
}
