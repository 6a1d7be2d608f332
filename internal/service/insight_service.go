package service

import (
	"context"

	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/insights"
)

type InsightService struct {
	provider insights.Provider
	auth     *authenticator
}

func NewInsightService(provider insights.Provider, resolver identity.Resolver) *InsightService {
	return &InsightService{
		provider: provider,
		auth:     &authenticator{resolver: resolver},
	}
}

func (s *InsightService) List(ctx context.Context, token string) ([]insights.Insight, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.provider.Insights(ctx, caller.UserID)
}
