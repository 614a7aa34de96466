package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
)

// RiderDirectory keeps rider availability and last known location, and
// streams location changes to the rooms of the rider's active deliveries.
type RiderDirectory struct {
	logger *slog.Logger
	notifier

	riders     RiderRepo
	deliveries DeliveryRepo
	cache      Cache
}

func NewRiderDirectory(logger *slog.Logger, riders RiderRepo, deliveries DeliveryRepo, publisher Publisher, cache Cache, publishTimeout time.Duration) *RiderDirectory {
	logger = logger.With(slog.String("service", "rider_directory"))
	return &RiderDirectory{
		logger:     logger,
		notifier:   notifier{logger: logger, publisher: publisher, timeout: publishTimeout},
		riders:     riders,
		deliveries: deliveries,
		cache:      cache,
	}
}

func (s *RiderDirectory) UpdateRiderLocation(ctx context.Context, riderID string, lat, lng float64) (entities.Rider, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return entities.Rider{}, entities.Validationf("coordinates %f,%f are out of range", lat, lng)
	}

	rider, err := s.riders.UpdateLocation(ctx, riderID, lat, lng)
	if err != nil {
		return entities.Rider{}, err
	}

	deliveries, err := s.deliveries.ListByRider(ctx, riderID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list rider deliveries",
			slog.String("rider_id", riderID),
			slog.Any("error", fmt.Errorf("%w: %w", entities.ErrUpstream, err)),
		)
		return rider, nil
	}

	for _, d := range deliveries {
		if !d.Status.Active() {
			continue
		}
		s.cache.Delete(trackKey(d.ID))
		s.toDelivery(ctx, d.ID, fanout.EventLocationUpdated, LocationUpdatedEvent{
			DeliveryID: d.ID,
			RiderID:    riderID,
			Latitude:   lat,
			Longitude:  lng,
			Status:     string(d.Status),
			Timestamp:  rider.Location.LastUpdated,
		})
	}
	return rider, nil
}

func (s *RiderDirectory) SetAvailability(ctx context.Context, riderID string, available bool) (entities.Rider, error) {
	rider, err := s.riders.SetAvailability(ctx, riderID, available)
	if err != nil {
		return entities.Rider{}, err
	}
	s.logger.DebugContext(ctx, "rider availability changed", slog.String("rider_id", riderID), slog.Bool("available", available))
	return rider, nil
}

func (s *RiderDirectory) ListAvailableRiders(ctx context.Context) ([]entities.Rider, error) {
	return s.riders.ListAvailable(ctx)
}
