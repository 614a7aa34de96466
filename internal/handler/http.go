package handler

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/middleware"
	"github.com/SergeyBogomolovv/courier-hub/internal/service"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Coordinator interface {
	CreateOrder(ctx context.Context, buyerID string, in service.OrderInput) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, actor entities.Actor, status entities.OrderStatus, note string) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, buyerID, reason string) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error

	CreateDelivery(ctx context.Context, actor entities.Actor, in service.DeliveryInput) (entities.Delivery, error)
	AssignDelivery(ctx context.Context, deliveryID, riderID string) (entities.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID string, actor entities.Actor, in service.DeliveryStatusInput) (entities.Delivery, error)
	ListPendingDeliveries(ctx context.Context) ([]entities.Delivery, error)
	ListRiderDeliveries(ctx context.Context, riderID string) ([]entities.Delivery, error)
	DeleteDelivery(ctx context.Context, deliveryID string) error
	TrackDelivery(ctx context.Context, deliveryID string) (entities.TrackView, error)
}

type RiderDirectory interface {
	UpdateRiderLocation(ctx context.Context, riderID string, lat, lng float64) (entities.Rider, error)
	SetAvailability(ctx context.Context, riderID string, available bool) (entities.Rider, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     *middleware.Authenticator
	svc      Coordinator
	riders   RiderDirectory
}

func NewHTTPHandler(logger *slog.Logger, auth *middleware.Authenticator, svc Coordinator, riders RiderDirectory) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		auth:     auth,
		svc:      svc,
		riders:   riders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/deliveries/{id}/track", h.TrackDelivery)

	r.Group(func(r chi.Router) {
		r.Use(h.auth.Authenticate)

		buyer := middleware.RequireRole(entities.RoleBuyer)
		rider := middleware.RequireRole(entities.RoleRider)
		admin := middleware.RequireRole(entities.RoleSuperadmin)

		r.With(middleware.RequireRole(entities.RoleBuyer, entities.RoleSeller)).Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.With(middleware.RequireRole(entities.RoleBuyer, entities.RoleSeller, entities.RoleSuperadmin)).Get("/orders/{id}", h.GetOrder)
		r.With(middleware.RequireRole(entities.RoleSeller, entities.RoleSuperadmin)).Put("/orders/{id}/status", h.UpdateOrderStatus)
		r.With(buyer).Put("/orders/{id}/cancel", h.CancelOrder)
		r.With(admin).Delete("/orders/{id}", h.DeleteOrder)

		r.With(middleware.RequireRole(entities.RoleSeller, entities.RoleBuyer)).Post("/deliveries", h.CreateDelivery)
		r.With(rider).Get("/deliveries/pending", h.ListPendingDeliveries)
		r.With(rider).Get("/deliveries/mine", h.ListRiderDeliveries)
		r.With(rider).Put("/deliveries/location", h.UpdateRiderLocation)
		r.With(rider).Put("/deliveries/{id}/assign", h.AssignDelivery)
		r.With(middleware.RequireRole(entities.RoleRider, entities.RoleSuperadmin)).Put("/deliveries/{id}/status", h.UpdateDeliveryStatus)
		r.With(admin).Delete("/deliveries/{id}", h.DeleteDelivery)

		r.With(rider).Put("/riders/availability", h.SetAvailability)
	})
}

func actorFrom(ctx context.Context) entities.Actor {
	actor, _ := middleware.ActorFromContext(ctx)
	return actor
}
