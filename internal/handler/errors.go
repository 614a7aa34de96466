package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
)

// StateErrorResponse is returned when a transition is not allowed. Clients
// refresh their view from CurrentStatus instead of retrying.
// swagger:model StateErrorResponse
type StateErrorResponse struct {
	Message       string `json:"message"`
	CurrentStatus string `json:"currentStatus"`
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var stateErr *entities.StateError

	switch {
	case errors.As(err, &stateErr):
		utils.WriteJSON(w, StateErrorResponse{Message: err.Error(), CurrentStatus: stateErr.Current}, http.StatusBadRequest)
	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	default:
		h.logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
