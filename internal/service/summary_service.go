package service

import (
	"context"

	"github.com/carson-networks/hustle-tracker/internal/aggregate"
	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/logging"
	"github.com/carson-networks/hustle-tracker/internal/storage"
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
)

// SummaryService computes dashboard aggregates over a snapshot of the caller's data.
type SummaryService struct {
	storage *storage.Storage
	auth    *authenticator
}

func NewSummaryService(store *storage.Storage, resolver identity.Resolver) *SummaryService {
	return &SummaryService{
		storage: store,
		auth:    &authenticator{resolver: resolver},
	}
}

// Summary aggregates the caller's transactions, optionally narrowed to sourceID.
func (s *SummaryService) Summary(ctx context.Context, token string, sourceID string) (*aggregate.Summary, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}

	var (
		txs     []core.Transaction
		sources []core.Source
	)
	endTimer := logging.GetLogData(ctx).AddTiming("snapshotTime")
	err = s.storage.View(ctx, func(r *storage.Reader) error {
		txs = r.Transactions.List(ctx, &transaction.TransactionFilter{UserID: &caller.UserID})
		sources = r.Sources.List(ctx, &source.SourceFilter{VisibleTo: caller.UserID})
		return nil
	})
	endTimer()
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(txs, sources, sourceID)
	return &summary, nil
}
