package source

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/hustle-tracker/internal/service"
)

type CreateSourceBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Name        string   `json:"name,omitempty" doc:"Display name"`
	Type        string   `json:"type,omitempty" doc:"SIDE_HUSTLE (default)"`
	Platform    string   `json:"platform,omitempty" doc:"Where the side hustle runs"`
	Description string   `json:"description,omitempty" doc:"Free text description"`
}

type CreateSourceInput struct {
	UserID string `header:"user-id" doc:"Caller identity"`
	Body   CreateSourceBody
}

type CreateSourceOutput struct {
	Body Source
}

type sourceCreator interface {
	Create(ctx context.Context, token string, input service.SourceInput) (*core.Source, error)
}

// CreateSourceHandler handles POST /api/sources.
type CreateSourceHandler struct {
	SourceService sourceCreator
}

func NewCreateSourceHandler(svc sourceCreator) *CreateSourceHandler {
	return &CreateSourceHandler{SourceService: svc}
}

func (h *CreateSourceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-source",
		Method:        http.MethodPost,
		Path:          "/api/sources",
		Summary:       "Create source",
		Description:   "Adds a side hustle owned by the caller.",
		Tags:          []string{"Sources"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateSourceHandler) handle(ctx context.Context, input *CreateSourceInput) (*CreateSourceOutput, error) {
	created, err := h.SourceService.Create(ctx, input.UserID, service.SourceInput{
		Name:        input.Body.Name,
		Type:        input.Body.Type,
		Platform:    input.Body.Platform,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to create source")
	}
	return &CreateSourceOutput{Body: fromCore(created)}, nil
}
