package source

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/hustle-tracker/internal/logging"
)

type DeleteSourceInput struct {
	UserID string `header:"user-id" doc:"Caller identity"`
	ID     string `path:"id" doc:"Source id"`
}

type sourceDeleter interface {
	Delete(ctx context.Context, token string, id string) error
}

// DeleteSourceHandler handles DELETE /api/sources/{id}.
type DeleteSourceHandler struct {
	SourceService sourceDeleter
}

func NewDeleteSourceHandler(svc sourceDeleter) *DeleteSourceHandler {
	return &DeleteSourceHandler{SourceService: svc}
}

func (h *DeleteSourceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-source",
		Method:        http.MethodDelete,
		Path:          "/api/sources/{id}",
		Summary:       "Delete source",
		Description:   "Removes one of the caller's sources. Its transactions are kept. The personal source cannot be removed; deleting it succeeds without effect.",
		Tags:          []string{"Sources"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteSourceHandler) handle(ctx context.Context, input *DeleteSourceInput) (*struct{}, error) {
	logging.GetLogData(ctx).AddData("sourceId", input.ID)

	if err := h.SourceService.Delete(ctx, input.UserID, input.ID); err != nil {
		return nil, apierror.FromService(ctx, err, "failed to delete source")
	}
	return nil, nil
}
