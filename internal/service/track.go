package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"

	"golang.org/x/sync/errgroup"
)

var readRetry = utils.RetryConfig{
	InitialDelay: 50 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

// TrackDelivery returns the delivery with its rider and order resolved.
// Views are cached briefly and dropped on every change to the delivery.
func (c *Coordinator) TrackDelivery(ctx context.Context, deliveryID string) (entities.TrackView, error) {
	key := trackKey(deliveryID)
	if data, ok := c.cache.Get(key); ok {
		var view entities.TrackView
		err := view.Unmarshal(data)
		if err == nil {
			return view, nil
		}
		c.logger.ErrorContext(ctx, "failed to unmarshal track view", slog.String("delivery_id", deliveryID), slog.Any("error", err))
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		view, err := c.loadTrackView(ctx, deliveryID)
		if err != nil {
			return nil, err
		}
		data, err := view.Marshal()
		if err != nil {
			c.logger.ErrorContext(ctx, "failed to marshal track view", slog.String("delivery_id", deliveryID), slog.Any("error", err))
			return view, nil
		}
		c.cache.Set(key, data)
		return view, nil
	})
	if err != nil {
		return entities.TrackView{}, err
	}
	return v.(entities.TrackView), nil
}

func (c *Coordinator) loadTrackView(ctx context.Context, deliveryID string) (entities.TrackView, error) {
	var delivery entities.Delivery
	err := utils.RetryContext(ctx, readRetry, func() error {
		var err error
		delivery, err = c.deliveries.GetByID(ctx, deliveryID)
		return err
	}, entities.ErrDeliveryNotFound)
	if err != nil {
		return entities.TrackView{}, err
	}

	view := entities.TrackView{Delivery: delivery}

	eg, ctx := errgroup.WithContext(ctx)
	if delivery.RiderID != "" {
		eg.Go(func() error {
			rider, err := c.riders.GetByID(ctx, delivery.RiderID)
			if errors.Is(err, entities.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			view.Rider = &rider
			return nil
		})
	}
	if delivery.OrderID != "" {
		eg.Go(func() error {
			order, err := c.orders.GetByID(ctx, delivery.OrderID)
			if errors.Is(err, entities.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			view.Order = &order
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return entities.TrackView{}, err
	}
	return view, nil
}
