package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/insights"
	"github.com/carson-networks/hustle-tracker/internal/operator/actions"
	"github.com/carson-networks/hustle-tracker/internal/storage"
)

// processor runs a mutation through the operator queue.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Source      *SourceService
	Summary     *SummaryService
	Insight     *InsightService
}

// NewService creates a new Service. Reads go to store directly and
// mutations go through op.
func NewService(
	store *storage.Storage,
	op processor,
	resolver identity.Resolver,
	provider insights.Provider,
	logger *logrus.Logger,
) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op, resolver, logger),
		Source:      NewSourceService(store, op, resolver),
		Summary:     NewSummaryService(store, resolver),
		Insight:     NewInsightService(provider, resolver),
	}
}

type authenticator struct {
	resolver identity.Resolver
}

// caller resolves token, reporting any failure as ErrUnauthenticated.
func (a *authenticator) caller(ctx context.Context, token string) (identity.Caller, error) {
	c, err := a.resolver.Resolve(ctx, token)
	if err != nil {
		return identity.Caller{}, ErrUnauthenticated
	}
	return c, nil
}
