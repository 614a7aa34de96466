package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// CreateDelivery создает доставку документа без заказа.
// @Summary      Создать доставку документа
// @Tags         deliveries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        delivery  body      CreateDeliveryRequest  true  "Доставка"
// @Success      201       {object}  repo.Delivery
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /deliveries [post]
func (h *HTTPHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDeliveryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	delivery, err := h.svc.CreateDelivery(ctx, actorFrom(ctx), req.toInput())
	if err != nil {
		h.writeServiceError(w, r, "create delivery", err)
		return
	}

	utils.WriteJSON(w, repo.DeliveryFromEntity(delivery), http.StatusCreated)
}

// ListPendingDeliveries возвращает доставки, которые ждут курьера.
// @Summary      Свободные доставки
// @Tags         deliveries
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   repo.Delivery
// @Router       /deliveries/pending [get]
func (h *HTTPHandler) ListPendingDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.svc.ListPendingDeliveries(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list pending deliveries", err)
		return
	}
	utils.WriteJSON(w, deliveriesToJSON(deliveries), http.StatusOK)
}

// ListRiderDeliveries возвращает доставки текущего курьера.
// @Summary      Мои доставки
// @Tags         deliveries
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   repo.Delivery
// @Router       /deliveries/mine [get]
func (h *HTTPHandler) ListRiderDeliveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deliveries, err := h.svc.ListRiderDeliveries(ctx, actorFrom(ctx).ID)
	if err != nil {
		h.writeServiceError(w, r, "list rider deliveries", err)
		return
	}
	utils.WriteJSON(w, deliveriesToJSON(deliveries), http.StatusOK)
}

// AssignDelivery закрепляет свободную доставку за курьером.
// @Summary      Взять доставку
// @Description  Из двух одновременных запросов успешен ровно один, второй получает текущий статус
// @Tags         deliveries
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID доставки"
// @Success      200  {object}  repo.Delivery
// @Failure      400  {object}  StateErrorResponse "Доставка уже назначена"
// @Failure      404  {object}  utils.ErrorResponse "Доставка не найдена"
// @Router       /deliveries/{id}/assign [put]
func (h *HTTPHandler) AssignDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	delivery, err := h.svc.AssignDelivery(ctx, chi.URLParam(r, "id"), actorFrom(ctx).ID)
	if err != nil {
		h.writeServiceError(w, r, "assign delivery", err)
		return
	}

	utils.WriteJSON(w, repo.DeliveryFromEntity(delivery), http.StatusOK)
}

// UpdateDeliveryStatus добавляет запись в трекинг доставки.
// @Summary      Обновить статус доставки
// @Tags         deliveries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "ID доставки"
// @Param        status  body      DeliveryStatusRequest  true  "Новый статус"
// @Success      200     {object}  repo.Delivery
// @Failure      400     {object}  StateErrorResponse "Недопустимый переход"
// @Failure      403     {object}  utils.ErrorResponse "Доставка другого курьера"
// @Failure      404     {object}  utils.ErrorResponse "Доставка не найдена"
// @Router       /deliveries/{id}/status [put]
func (h *HTTPHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeliveryStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	delivery, err := h.svc.UpdateDeliveryStatus(ctx, chi.URLParam(r, "id"), actorFrom(ctx), req.toInput())
	if err != nil {
		h.writeServiceError(w, r, "update delivery status", err)
		return
	}

	utils.WriteJSON(w, repo.DeliveryFromEntity(delivery), http.StatusOK)
}

// TrackDelivery возвращает доставку с курьером и заказом. Токен не нужен.
// @Summary      Отследить доставку
// @Tags         deliveries
// @Produce      json
// @Param        id   path      string  true  "ID доставки"
// @Success      200  {object}  TrackResponse
// @Failure      404  {object}  utils.ErrorResponse "Доставка не найдена"
// @Router       /deliveries/{id}/track [get]
func (h *HTTPHandler) TrackDelivery(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.TrackDelivery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, "track delivery", err)
		return
	}

	utils.WriteJSON(w, trackToJSON(view), http.StatusOK)
}

// DeleteDelivery удаляет доставку. Только для обслуживания.
// @Summary      Удалить доставку
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "ID доставки"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Доставка не найдена"
// @Router       /deliveries/{id} [delete]
func (h *HTTPHandler) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteDelivery(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, "delete delivery", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
