package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/hustle-tracker/internal/logging"
)

// operatorState reports whether mutations can still be processed.
type operatorState interface {
	Running() bool
}

type Handler struct {
	Operator operatorState
}

func NewHandler(op operatorState) Handler {
	return Handler{Operator: op}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "application/json")
	if !h.Operator.Running() {
		logData.AddData("operator", "stopped")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
		return errors.New("status: operator not running")
	}

	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
