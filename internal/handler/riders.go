package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
)

// UpdateRiderLocation сохраняет последнюю позицию курьера.
// @Summary      Обновить позицию курьера
// @Description  Позиция уходит в комнаты всех активных доставок курьера
// @Tags         riders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        location  body      LocationRequest  true  "Координаты"
// @Success      200       {object}  repo.Rider
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /deliveries/location [put]
func (h *HTTPHandler) UpdateRiderLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LocationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	rider, err := h.riders.UpdateRiderLocation(ctx, actorFrom(ctx).ID, *req.Latitude, *req.Longitude)
	if err != nil {
		h.writeServiceError(w, r, "update rider location", err)
		return
	}

	utils.WriteJSON(w, repo.RiderFromEntity(rider), http.StatusOK)
}

// SetAvailability включает или выключает прием новых доставок.
// @Summary      Доступность курьера
// @Tags         riders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        availability  body      AvailabilityRequest  true  "Доступность"
// @Success      200           {object}  repo.Rider
// @Router       /riders/availability [put]
func (h *HTTPHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AvailabilityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	rider, err := h.riders.SetAvailability(ctx, actorFrom(ctx).ID, *req.Available)
	if err != nil {
		h.writeServiceError(w, r, "set availability", err)
		return
	}

	utils.WriteJSON(w, repo.RiderFromEntity(rider), http.StatusOK)
}
