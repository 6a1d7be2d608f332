// Package insights serves spending insights. The only provider is a fixed list.
package insights

import (
	"context"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

type Impact string

const (
	ImpactHigh   Impact = "HIGH"
	ImpactMedium Impact = "MEDIUM"
	ImpactLow    Impact = "LOW"
)

type Insight struct {
	Type     string
	Message  string
	Impact   Impact
	Category core.Category
}

type Provider interface {
	Insights(ctx context.Context, userID string) ([]Insight, error)
}

// Static returns the same three insights to everyone.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (Static) Insights(_ context.Context, _ string) ([]Insight, error) {
	return []Insight{
		{
			Type:     "SPENDING_PATTERN",
			Message:  "Your food expenses have increased by 20% this month",
			Impact:   ImpactHigh,
			Category: core.CategoryFood,
		},
		{
			Type:     "BUDGET_RECOMMENDATION",
			Message:  "Consider setting a monthly entertainment budget of $200",
			Impact:   ImpactMedium,
			Category: core.CategoryEntertainment,
		},
		{
			Type:     "SAVING_OPPORTUNITY",
			Message:  "You could save $150 by optimizing your utility usage",
			Impact:   ImpactLow,
			Category: core.CategoryUtilities,
		},
	}, nil
}
