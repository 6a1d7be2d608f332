package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/aggregate"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
)

type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type Month struct {
	Month   string  `json:"month" doc:"Short month name, e.g. Jan"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount" doc:"Income and expense amounts summed together"`
}

type SourceTotals struct {
	SourceID string  `json:"sourceId"`
	Name     string  `json:"name"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
	Balance  float64 `json:"balance"`
}

type RecentTransaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	SourceID    string  `json:"sourceId"`
	SourceName  string  `json:"sourceName" doc:"Source name, or Unknown Source if it was deleted"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

type SummaryBody struct {
	SourceID      string              `json:"sourceId,omitempty" doc:"Source filter applied, empty for all"`
	Totals        Totals              `json:"totals"`
	Monthly       []Month             `json:"monthly"`
	MonthlyByYear []Month             `json:"monthlyByYear" doc:"Monthly series keyed by year and month, e.g. 2024-01"`
	Categories    []CategoryAmount    `json:"categories"`
	PerSource     []SourceTotals      `json:"perSource" doc:"Totals for every source, ignoring the filter"`
	Recent        []RecentTransaction `json:"recent" doc:"Five most recent transactions by date"`
}

type GetSummaryInput struct {
	UserID   string `header:"user-id" doc:"Caller identity"`
	SourceID string `query:"sourceId" doc:"Restrict to one source; omit or use all for every source"`
}

type GetSummaryOutput struct {
	Body SummaryBody
}

type summarizer interface {
	Summary(ctx context.Context, token string, sourceID string) (*aggregate.Summary, error)
}

// GetSummaryHandler handles GET /api/summary.
type GetSummaryHandler struct {
	SummaryService summarizer
}

func NewGetSummaryHandler(svc summarizer) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/api/summary",
		Summary:     "Dashboard summary",
		Description: "Totals, monthly series, category distribution, per-source totals and recent transactions for the caller.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	sourceID := input.SourceID
	if sourceID == "all" {
		sourceID = ""
	}

	s, err := h.SummaryService.Summary(ctx, input.UserID, sourceID)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to build summary")
	}

	return &GetSummaryOutput{Body: toBody(s)}, nil
}

func toBody(s *aggregate.Summary) SummaryBody {
	body := SummaryBody{
		SourceID: s.SourceID,
		Totals: Totals{
			Income:  s.Totals.Income.InexactFloat64(),
			Expense: s.Totals.Expense.InexactFloat64(),
			Balance: s.Totals.Balance.InexactFloat64(),
		},
		Monthly:       make([]Month, len(s.Monthly)),
		MonthlyByYear: make([]Month, len(s.MonthlyByYear)),
		Categories:    make([]CategoryAmount, len(s.Categories)),
		PerSource:     make([]SourceTotals, len(s.PerSource)),
		Recent:        make([]RecentTransaction, len(s.Recent)),
	}

	for i, m := range s.Monthly {
		body.Monthly[i] = Month{Month: m.Month, Income: m.Income.InexactFloat64(), Expense: m.Expense.InexactFloat64()}
	}
	for i, m := range s.MonthlyByYear {
		body.MonthlyByYear[i] = Month{Month: m.Month, Income: m.Income.InexactFloat64(), Expense: m.Expense.InexactFloat64()}
	}
	for i, c := range s.Categories {
		body.Categories[i] = CategoryAmount{Category: string(c.Category), Amount: c.Amount.InexactFloat64()}
	}
	for i, p := range s.PerSource {
		body.PerSource[i] = SourceTotals{
			SourceID: p.SourceID,
			Name:     p.Name,
			Income:   p.Income.InexactFloat64(),
			Expense:  p.Expense.InexactFloat64(),
			Balance:  p.Balance.InexactFloat64(),
		}
	}
	for i, r := range s.Recent {
		body.Recent[i] = RecentTransaction{
			ID:          r.ID.String(),
			Amount:      r.Amount.InexactFloat64(),
			Type:        string(r.Type),
			SourceID:    r.SourceID,
			SourceName:  r.SourceName,
			Category:    string(r.Category),
			Description: r.Description,
			Date:        r.Date,
			Status:      string(r.Status),
			CreatedAt:   r.CreatedAt.Format(time.RFC3339Nano),
		}
	}
	return body
}
