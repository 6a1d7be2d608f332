// Package apierror defines the error body every endpoint returns and maps
// service errors onto it.
package apierror

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/logging"
	"github.com/carson-networks/hustle-tracker/internal/service"
)

// FieldDetail names one offending request field.
type FieldDetail struct {
	Field   string `json:"field" doc:"Request field, e.g. amount"`
	Message string `json:"message" doc:"What is wrong with the field"`
}

// ErrorModel is the JSON error body: {"error": "...", "fields": [...]}.
type ErrorModel struct {
	status  int
	Message string        `json:"error" doc:"Human readable error"`
	Fields  []FieldDetail `json:"fields,omitempty" doc:"Per-field validation problems"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = New
}

// New builds an ErrorModel. Schema validation failures (422) are reported as
// 400, and huma's error details become field entries.
func New(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	model := &ErrorModel{status: status, Message: msg}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			detail := detailer.ErrorDetail()
			model.Fields = append(model.Fields, FieldDetail{
				Field:   fieldName(detail.Location),
				Message: detail.Message,
			})
		}
	}
	return model
}

// fieldName turns a huma location such as "body.amount" into "amount".
func fieldName(location string) string {
	return strings.TrimPrefix(location, "body.")
}

// FromService converts a service error into the HTTP error for it. Anything
// unrecognised becomes a 500 with fallback as the message; the cause is kept
// in the request log only.
func FromService(ctx context.Context, err error, fallback string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		model := &ErrorModel{status: http.StatusBadRequest, Message: verr.Message}
		for _, f := range verr.Fields {
			model.Fields = append(model.Fields, FieldDetail{Field: f.Field, Message: f.Message})
		}
		return model
	case errors.Is(err, service.ErrUnauthenticated):
		return &ErrorModel{status: http.StatusUnauthorized, Message: "Unauthorized"}
	case errors.Is(err, service.ErrForbidden):
		return &ErrorModel{status: http.StatusForbidden, Message: "Forbidden"}
	case errors.Is(err, service.ErrNotFound):
		return &ErrorModel{status: http.StatusNotFound, Message: err.Error()}
	}

	logging.GetLogData(ctx).AddData("cause", err.Error())
	return &ErrorModel{status: http.StatusInternalServerError, Message: fallback}
}
