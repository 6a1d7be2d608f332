package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/logging"
	"github.com/carson-networks/hustle-tracker/internal/operator/actions"
	"github.com/carson-networks/hustle-tracker/internal/storage"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
	op      processor
	auth    *authenticator
	logger  *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op processor, resolver identity.Resolver, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		storage: store,
		op:      op,
		auth:    &authenticator{resolver: resolver},
		logger:  logger,
	}
}

// Create validates input and stores a new PENDING transaction for the caller.
func (s *TransactionService) Create(ctx context.Context, token string, input TransactionInput) (*core.Transaction, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := input.validate(caller.UserID); err != nil {
		return nil, err
	}

	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = core.PersonalSourceID
	}

	action := &actions.CreateTransaction{
		Create: transaction.TransactionCreate{
			Amount:      *input.Amount,
			Type:        core.TransactionType(input.Type),
			SourceID:    sourceID,
			Category:    core.Category(input.Category),
			Description: *input.Description,
			Date:        input.Date,
			UserID:      caller.UserID,
		},
	}

	endTimer := logging.GetLogData(ctx).AddTiming("operatorTime")
	err = s.op.Process(ctx, action)
	endTimer()
	if errors.Is(err, actions.ErrUnknownSource) {
		verr := &ValidationError{Message: "Validation failed"}
		verr.add("sourceId", "must reference one of your sources")
		return nil, verr
	}
	if err != nil {
		return nil, err
	}

	logging.GetLogData(ctx).AddData("transactionId", action.Result.ID.String())
	return action.Result, nil
}

// ListForCaller returns the caller's transactions in insertion order.
func (s *TransactionService) ListForCaller(ctx context.Context, token string) ([]core.Transaction, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}

	var rows []core.Transaction
	err = s.storage.View(ctx, func(r *storage.Reader) error {
		rows = r.Transactions.List(ctx, &transaction.TransactionFilter{UserID: &caller.UserID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus records an admin's decision. Checks run in order: identity,
// admin role, status value, existence. Re-deciding a transaction is allowed.
func (s *TransactionService) SetStatus(ctx context.Context, token string, rawID string, status string) (*core.Transaction, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	newStatus := core.Status(status)
	if !newStatus.Decided() {
		return nil, &ValidationError{Message: "Invalid status"}
	}

	id, err := uuid.FromString(rawID)
	if err != nil {
		return nil, &NotFoundError{Message: "Transaction not found"}
	}

	action := &actions.SetTransactionStatus{ID: id, Status: newStatus}
	err = s.op.Process(ctx, action)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil, &NotFoundError{Message: "Transaction not found"}
	}
	if err != nil {
		return nil, err
	}

	if action.Previous.Decided() {
		s.logger.WithFields(logrus.Fields{
			"transactionId": id.String(),
			"previous":      action.Previous,
			"status":        newStatus,
			"adminId":       caller.UserID,
		}).Warn("TransactionService.SetStatus.redecided")
	}
	return action.Result, nil
}

// Edit changes amount and/or description of one of the caller's transactions.
func (s *TransactionService) Edit(ctx context.Context, token string, rawID string, patch TransactionPatch) (*core.Transaction, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := patch.validate(); err != nil {
		return nil, err
	}

	id, err := uuid.FromString(rawID)
	if err != nil {
		return nil, &NotFoundError{Message: "Transaction not found"}
	}

	action := &actions.EditTransaction{
		ID:     id,
		UserID: caller.UserID,
		Update: transaction.TransactionUpdate{
			Amount:      patch.Amount,
			Description: patch.Description,
		},
	}
	err = s.op.Process(ctx, action)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil, &NotFoundError{Message: "Transaction not found"}
	}
	if err != nil {
		return nil, err
	}
	return action.Result, nil
}
