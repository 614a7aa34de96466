package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
)

type OrderRepo interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type DeliveryRepo interface {
	Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error)
	GetByID(ctx context.Context, id string) (entities.Delivery, error)
	// Update must apply fn atomically: the claim protocol relies on it.
	Update(ctx context.Context, id string, fn func(d *entities.Delivery) error) (entities.Delivery, error)
	ListByStatus(ctx context.Context, status entities.DeliveryStatus) ([]entities.Delivery, error)
	ListByRider(ctx context.Context, riderID string) ([]entities.Delivery, error)
	Delete(ctx context.Context, id string) error
}

type ProductRepo interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error)
}

type RiderRepo interface {
	GetByID(ctx context.Context, id string) (entities.Rider, error)
	UpdateLocation(ctx context.Context, id string, lat, lng float64) (entities.Rider, error)
	SetAvailability(ctx context.Context, id string, available bool) (entities.Rider, error)
	ListAvailable(ctx context.Context) ([]entities.Rider, error)
}

type Publisher interface {
	PublishToUser(ctx context.Context, userID, event string, payload any) error
	PublishToDelivery(ctx context.Context, deliveryID, event string, payload any) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// notifier emits fanout events. Delivery is best effort: a failed publish is
// logged and counted, never returned to the caller.
type notifier struct {
	logger    *slog.Logger
	publisher Publisher
	timeout   time.Duration
}

func (n notifier) toUser(ctx context.Context, userID, event string, payload any) {
	if userID == "" {
		return
	}
	n.emit(ctx, event, func(ctx context.Context) error {
		return n.publisher.PublishToUser(ctx, userID, event, payload)
	})
}

func (n notifier) toDelivery(ctx context.Context, deliveryID, event string, payload any) {
	n.emit(ctx, event, func(ctx context.Context) error {
		return n.publisher.PublishToDelivery(ctx, deliveryID, event, payload)
	})
}

func (n notifier) emit(ctx context.Context, event string, publish func(ctx context.Context) error) {
	// запрос мог уже завершиться, событие все равно отправляем
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := publish(ctx); err != nil {
		fanoutFailures.WithLabelValues(event).Inc()
		n.logger.WarnContext(ctx, "failed to publish event",
			slog.String("event", event),
			slog.Any("error", fmt.Errorf("%w: %w", entities.ErrUpstream, err)),
		)
	}
}

func trackKey(deliveryID string) string {
	return "track:" + deliveryID
}
