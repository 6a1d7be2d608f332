package source

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
)

type ListSourcesInput struct {
	UserID string `header:"user-id" doc:"Caller identity"`
}

type ListSourcesOutput struct {
	Body []Source
}

type sourceLister interface {
	List(ctx context.Context, token string) ([]core.Source, error)
}

// ListSourcesHandler handles GET /api/sources.
type ListSourcesHandler struct {
	SourceService sourceLister
}

func NewListSourcesHandler(svc sourceLister) *ListSourcesHandler {
	return &ListSourcesHandler{SourceService: svc}
}

func (h *ListSourcesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sources",
		Method:      http.MethodGet,
		Path:        "/api/sources",
		Summary:     "List sources",
		Description: "Returns the personal source followed by the caller's side hustles.",
		Tags:        []string{"Sources"},
	}, h.handle)
}

func (h *ListSourcesHandler) handle(ctx context.Context, input *ListSourcesInput) (*ListSourcesOutput, error) {
	sources, err := h.SourceService.List(ctx, input.UserID)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to list sources")
	}

	resp := make([]Source, len(sources))
	for i := range sources {
		resp[i] = fromCore(&sources[i])
	}
	return &ListSourcesOutput{Body: resp}, nil
}
