package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/hustle-tracker/internal/insights"
)

// Insight is the API response model for an insight.
type Insight struct {
	Type     string `json:"type" doc:"Insight kind, e.g. SPENDING_PATTERN"`
	Message  string `json:"message"`
	Impact   string `json:"impact" enum:"HIGH,MEDIUM,LOW"`
	Category string `json:"category"`
}

type ListInsightsInput struct {
	UserID string `header:"user-id" doc:"Caller identity"`
}

type ListInsightsOutput struct {
	Body []Insight
}

type insightLister interface {
	List(ctx context.Context, token string) ([]insights.Insight, error)
}

// ListInsightsHandler handles GET /api/insights.
type ListInsightsHandler struct {
	InsightService insightLister
}

func NewListInsightsHandler(svc insightLister) *ListInsightsHandler {
	return &ListInsightsHandler{InsightService: svc}
}

func (h *ListInsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-insights",
		Method:      http.MethodGet,
		Path:        "/api/insights",
		Summary:     "List insights",
		Description: "Returns spending insights for the caller.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *ListInsightsHandler) handle(ctx context.Context, input *ListInsightsInput) (*ListInsightsOutput, error) {
	list, err := h.InsightService.List(ctx, input.UserID)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to list insights")
	}

	resp := make([]Insight, len(list))
	for i, in := range list {
		resp[i] = Insight{
			Type:     in.Type,
			Message:  in.Message,
			Impact:   string(in.Impact),
			Category: string(in.Category),
		}
	}
	return &ListInsightsOutput{Body: resp}, nil
}
