package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// CreateOrder создает заказ от имени покупателя.
// @Summary      Создать заказ
// @Description  Списывает остатки товаров и уведомляет продавца
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  repo.Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404    {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, actorFrom(ctx).ID, req.toInput())
	if err != nil {
		h.writeServiceError(w, r, "create order", err)
		return
	}

	utils.WriteJSON(w, repo.OrderFromEntity(order), http.StatusCreated)
}

// ListOrders возвращает заказы, где пользователь покупатель или продавец.
// @Summary      Мои заказы
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   repo.Order
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx, actorFrom(ctx))
	if err != nil {
		h.writeServiceError(w, r, "list orders", err)
		return
	}

	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  repo.Order
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.svc.GetOrder(ctx, chi.URLParam(r, "id"), actorFrom(ctx))
	if err != nil {
		h.writeServiceError(w, r, "get order", err)
		return
	}

	utils.WriteJSON(w, repo.OrderFromEntity(order), http.StatusOK)
}

// UpdateOrderStatus двигает заказ по жизненному циклу.
// @Summary      Обновить статус заказа
// @Description  Подтверждение заказа создает доставку. Статус назад не двигается.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "ID заказа"
// @Param        status  body      OrderStatusRequest  true  "Новый статус"
// @Success      200     {object}  repo.Order
// @Failure      400     {object}  StateErrorResponse "Недопустимый переход"
// @Failure      403     {object}  utils.ErrorResponse "Заказ другого продавца"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/status [put]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, chi.URLParam(r, "id"), actorFrom(ctx), entities.OrderStatus(req.Status), req.Note)
	if err != nil {
		h.writeServiceError(w, r, "update order status", err)
		return
	}

	utils.WriteJSON(w, repo.OrderFromEntity(order), http.StatusOK)
}

// CancelOrder отменяет заказ покупателя.
// @Summary      Отменить заказ
// @Description  Доступно только в статусах pending и confirmed, остатки возвращаются
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "ID заказа"
// @Param        reason  body      CancelOrderRequest  false "Причина"
// @Success      200     {object}  repo.Order
// @Failure      400     {object}  StateErrorResponse "Заказ уже нельзя отменить"
// @Failure      403     {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/cancel [put]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CancelOrderRequest
	// тело необязательно
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CancelOrder(ctx, chi.URLParam(r, "id"), actorFrom(ctx).ID, req.Reason)
	if err != nil {
		h.writeServiceError(w, r, "cancel order", err)
		return
	}

	utils.WriteJSON(w, repo.OrderFromEntity(order), http.StatusOK)
}

// DeleteOrder удаляет заказ. Только для обслуживания.
// @Summary      Удалить заказ
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "ID заказа"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, "delete order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
