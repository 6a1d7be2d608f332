package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/access"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/hustle-tracker/internal/service"
)

// mockTransactionService implements every narrow interface in this package.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Create(ctx context.Context, token string, input service.TransactionInput) (*core.Transaction, error) {
	args := m.Called(ctx, token, input)
	tx, _ := args.Get(0).(*core.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListForCaller(ctx context.Context, token string) ([]core.Transaction, error) {
	args := m.Called(ctx, token)
	txs, _ := args.Get(0).([]core.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) SetStatus(ctx context.Context, token string, id string, status string) (*core.Transaction, error) {
	args := m.Called(ctx, token, id, status)
	tx, _ := args.Get(0).(*core.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Edit(ctx context.Context, token string, id string, patch service.TransactionPatch) (*core.Transaction, error) {
	args := m.Called(ctx, token, id, patch)
	tx, _ := args.Get(0).(*core.Transaction)
	return tx, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewSetStatusHandler(svc).Register(api)
	NewEditTransactionHandler(svc).Register(api)
	return api
}

func sampleTransaction() *core.Transaction {
	return &core.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString("50"),
		Type:        core.TransactionTypeIncome,
		SourceID:    core.PersonalSourceID,
		Category:    core.CategorySalary,
		Description: "Pay",
		Date:        "2024-01-15",
		UserID:      "u1",
		Status:      core.StatusPending,
		CreatedAt:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func decodeError(t *testing.T, body []byte) apierror.ErrorModel {
	t.Helper()
	var model apierror.ErrorModel
	require.NoError(t, json.Unmarshal(body, &model))
	return model
}

// -- create --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	svc := new(mockTransactionService)
	created := sampleTransaction()
	svc.On("Create", mock.Anything, "u1", mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Amount != nil && in.Amount.Equal(decimal.NewFromInt(50)) &&
			in.Type == "INCOME" && in.Category == "SALARY" &&
			in.Description != nil && *in.Description == "Pay" && in.Date == "2024-01-15" && in.UserID == "u1" && in.SourceID == ""
	})).Return(created, nil)

	resp := newTestAPI(t, svc).Post("/api/transactions", "user-id: u1", map[string]any{
		"amount":      50,
		"type":        "INCOME",
		"category":    "SALARY",
		"description": "Pay",
		"date":        "2024-01-15",
		"userId":      "u1",
		"extra":       "ignored",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, 50.0, body.Amount)
	assert.Equal(t, "PENDING", body.Status)
	assert.Equal(t, "personal", body.SourceID)
	assert.Equal(t, "2024-01-15T09:00:00Z", body.CreatedAt)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_EmptyDescriptionIsPresent(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Create", mock.Anything, "u1", mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Description != nil && *in.Description == ""
	})).Return(sampleTransaction(), nil)

	resp := newTestAPI(t, svc).Post("/api/transactions", "user-id: u1", map[string]any{
		"amount": 50, "type": "INCOME", "category": "SALARY", "description": "", "date": "2024-01-15",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_SetStatus_MarkedAdminOnly(t *testing.T) {
	_, api := humatest.New(t)
	NewSetStatusHandler(new(mockTransactionService)).Register(api)

	op := api.OpenAPI().Paths["/api/transactions/{id}/status"].Patch
	require.NotNil(t, op)
	assert.Equal(t, true, op.Metadata[access.AdminOnly])
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Create", mock.Anything, "u1", mock.Anything).Return(nil, &service.ValidationError{
		Message: "Validation failed",
		Fields: []service.FieldError{
			{Field: "amount", Message: "must be a positive number"},
			{Field: "date", Message: "is required"},
		},
	})

	resp := newTestAPI(t, svc).Post("/api/transactions", "user-id: u1", map[string]any{"amount": -1})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	model := decodeError(t, resp.Body.Bytes())
	assert.Equal(t, "Validation failed", model.Message)
	require.Len(t, model.Fields, 2)
	assert.Equal(t, "amount", model.Fields[0].Field)
}

func TestHTTP_CreateTransaction_WrongJSONTypeIs400(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newTestAPI(t, svc).Post("/api/transactions", "user-id: u1", map[string]any{"amount": "fifty"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	model := decodeError(t, resp.Body.Bytes())
	require.NotEmpty(t, model.Fields)
	assert.Equal(t, "amount", model.Fields[0].Field)
	svc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_Unauthorized(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Create", mock.Anything, "", mock.Anything).Return(nil, service.ErrUnauthenticated)

	resp := newTestAPI(t, svc).Post("/api/transactions", map[string]any{"amount": 5})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, resp.Body.Bytes()).Message)
}

func TestHTTP_CreateTransaction_InternalError(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Create", mock.Anything, "u1", mock.Anything).Return(nil, errors.New("operator stopped"))

	resp := newTestAPI(t, svc).Post("/api/transactions", "user-id: u1", map[string]any{"amount": 5})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "failed to create transaction", decodeError(t, resp.Body.Bytes()).Message)
}

// -- list --

func TestHTTP_ListTransactions(t *testing.T) {
	svc := new(mockTransactionService)
	first, second := sampleTransaction(), sampleTransaction()
	svc.On("ListForCaller", mock.Anything, "u1").Return([]core.Transaction{*first, *second}, nil)

	resp := newTestAPI(t, svc).Get("/api/transactions", "user-id: u1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, first.ID.String(), body[0].ID)
	assert.Equal(t, second.ID.String(), body[1].ID)
}

func TestHTTP_ListTransactions_EmptyIsArray(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("ListForCaller", mock.Anything, "u1").Return([]core.Transaction{}, nil)

	resp := newTestAPI(t, svc).Get("/api/transactions", "user-id: u1")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_ListTransactions_Unauthorized(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("ListForCaller", mock.Anything, "").Return(nil, service.ErrUnauthenticated)

	resp := newTestAPI(t, svc).Get("/api/transactions")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// -- set status --

func TestHTTP_SetStatus(t *testing.T) {
	svc := new(mockTransactionService)
	updated := sampleTransaction()
	updated.Status = core.StatusApproved
	svc.On("SetStatus", mock.Anything, "admin1", updated.ID.String(), "APPROVED").Return(updated, nil)

	resp := newTestAPI(t, svc).Patch("/api/transactions/"+updated.ID.String()+"/status", "user-id: admin1", map[string]any{"status": "APPROVED"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "APPROVED", body.Status)
}

func TestHTTP_SetStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "no identity", err: service.ErrUnauthenticated, code: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "not admin", err: service.ErrForbidden, code: http.StatusForbidden, message: "Forbidden"},
		{name: "bad status", err: &service.ValidationError{Message: "Invalid status"}, code: http.StatusBadRequest, message: "Invalid status"},
		{name: "missing", err: &service.NotFoundError{Message: "Transaction not found"}, code: http.StatusNotFound, message: "Transaction not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockTransactionService)
			svc.On("SetStatus", mock.Anything, "u1", "abc", "DONE").Return(nil, tt.err)

			resp := newTestAPI(t, svc).Patch("/api/transactions/abc/status", "user-id: u1", map[string]any{"status": "DONE"})

			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, decodeError(t, resp.Body.Bytes()).Message)
		})
	}
}

// -- edit --

func TestHTTP_EditTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	edited := sampleTransaction()
	edited.Description = "Pay (Jan)"
	svc.On("Edit", mock.Anything, "u1", edited.ID.String(), mock.MatchedBy(func(p service.TransactionPatch) bool {
		return p.Amount == nil && p.Description != nil && *p.Description == "Pay (Jan)"
	})).Return(edited, nil)

	resp := newTestAPI(t, svc).Patch("/api/transactions/"+edited.ID.String(), "user-id: u1", map[string]any{"description": "Pay (Jan)"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pay (Jan)", body.Description)
	svc.AssertExpectations(t)
}

func TestHTTP_EditTransaction_NotOwner(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Edit", mock.Anything, "u2", "abc", mock.Anything).Return(nil, &service.NotFoundError{Message: "Transaction not found"})

	resp := newTestAPI(t, svc).Patch("/api/transactions/abc", "user-id: u2", map[string]any{"amount": 10})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestParseEditTransactionInput(t *testing.T) {
	amount := 12.5
	patch := parseEditTransactionInput(&EditTransactionInput{Body: EditTransactionBody{Amount: &amount}})
	require.NotNil(t, patch.Amount)
	assert.True(t, patch.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Nil(t, patch.Description)
}
