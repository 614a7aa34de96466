package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errNoMirror = errors.New("order status already reflects delivery")

// CreateDelivery opens a standalone document delivery that is not linked to
// an order.
func (c *Coordinator) CreateDelivery(ctx context.Context, actor entities.Actor, in DeliveryInput) (entities.Delivery, error) {
	if in.DocumentDetails == nil {
		return entities.Delivery{}, entities.Validationf("document details are required")
	}
	if in.PickupAddress == "" || in.DeliveryAddress == "" {
		return entities.Delivery{}, entities.Validationf("pickup and delivery addresses are required")
	}
	if in.DeliveryFee.IsNegative() {
		return entities.Delivery{}, entities.Validationf("delivery fee must not be negative")
	}

	recipient := in.RecipientID
	if recipient == "" {
		recipient = actor.ID
	}

	now := time.Now().UTC()
	details := *in.DocumentDetails
	delivery, err := c.deliveries.Create(ctx, entities.Delivery{
		ID:                  uuid.NewString(),
		DeliveryNumber:      newNumber("DEL", now),
		SenderID:            actor.ID,
		BuyerID:             recipient,
		PickupAddress:       in.PickupAddress,
		PickupCoordinates:   in.PickupCoordinates,
		DeliveryAddress:     in.DeliveryAddress,
		DeliveryCoordinates: in.DeliveryCoordinates,
		DeliveryFee:         decimal.Max(in.DeliveryFee, c.quoteFee(in.Distance)),
		Distance:            in.Distance,
		DocumentDetails:     &details,
		Status:              entities.DeliveryPending,
		Tracking: []entities.TrackingEntry{
			{Status: entities.DeliveryPending, Note: "delivery created", Timestamp: now},
		},
	})
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	transitionsTotal.WithLabelValues("delivery", string(delivery.Status)).Inc()
	c.logger.InfoContext(ctx, "delivery created", slog.String("delivery_id", delivery.ID))

	c.requestRiders(ctx, delivery, in.PreferredRiderID)
	return delivery, nil
}

// AssignDelivery claims a pending delivery for the rider. The pending check
// and the write happen in one conditional update, so of two concurrent claims
// exactly one succeeds and the other gets the status it lost to.
func (c *Coordinator) AssignDelivery(ctx context.Context, deliveryID, riderID string) (entities.Delivery, error) {
	location := c.lastKnownLocation(ctx, riderID)

	delivery, err := c.deliveries.Update(ctx, deliveryID, func(d *entities.Delivery) error {
		if d.Status != entities.DeliveryPending || d.RiderID != "" {
			return entities.NewAlreadyAssignedError(d.Status)
		}
		d.RiderID = riderID
		d.Status = entities.DeliveryAssigned
		d.Tracking = append(d.Tracking, entities.TrackingEntry{
			Status:    entities.DeliveryAssigned,
			Location:  location,
			Note:      "rider assigned",
			Timestamp: time.Now().UTC(),
		})
		return nil
	})
	if errors.Is(err, entities.ErrAlreadyAssigned) {
		claimsTotal.WithLabelValues(claimLost).Inc()
		return entities.Delivery{}, err
	}
	if err != nil {
		return entities.Delivery{}, err
	}

	claimsTotal.WithLabelValues(claimWon).Inc()
	transitionsTotal.WithLabelValues("delivery", string(delivery.Status)).Inc()
	c.logger.InfoContext(ctx, "delivery claimed",
		slog.String("delivery_id", delivery.ID),
		slog.String("rider_id", riderID),
	)

	c.afterDeliveryChange(ctx, delivery, "rider assigned")
	return delivery, nil
}

// lastKnownLocation is the placeholder location of a claim: the rider's last
// reported position, or the zero point when there is none.
func (c *Coordinator) lastKnownLocation(ctx context.Context, riderID string) *entities.Coordinates {
	rider, err := c.riders.GetByID(ctx, riderID)
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) {
			c.logger.WarnContext(ctx, "failed to get rider location", slog.String("rider_id", riderID), slog.Any("error", err))
		}
		return &entities.Coordinates{}
	}
	if rider.Location == nil {
		return &entities.Coordinates{}
	}
	return &entities.Coordinates{Latitude: rider.Location.Latitude, Longitude: rider.Location.Longitude}
}

func (c *Coordinator) UpdateDeliveryStatus(ctx context.Context, deliveryID string, actor entities.Actor, in DeliveryStatusInput) (entities.Delivery, error) {
	if !in.Status.Valid() {
		return entities.Delivery{}, entities.Validationf("unknown delivery status %q", in.Status)
	}
	if actor.Role != entities.RoleRider && !actor.IsSuperadmin() {
		return entities.Delivery{}, entities.Forbiddenf("only riders can update deliveries")
	}

	var claimed bool
	delivery, err := c.deliveries.Update(ctx, deliveryID, func(d *entities.Delivery) error {
		claimed = false
		switch {
		case actor.IsSuperadmin(), d.RiderID == actor.ID:
		case d.RiderID == "" && c.dispatch.AutoClaim:
			claimed = true
		case d.RiderID == "":
			return entities.Forbiddenf("delivery %s must be claimed first", d.ID)
		default:
			return entities.Forbiddenf("delivery %s is assigned to another rider", d.ID)
		}

		if !d.Status.CanTransition(in.Status) {
			return entities.NewDeliveryStateError(d.Status, in.Status)
		}

		now := time.Now().UTC()
		if claimed {
			d.RiderID = actor.ID
		}
		d.Status = in.Status
		d.Tracking = append(d.Tracking, entities.TrackingEntry{
			Status:    in.Status,
			Location:  in.Location,
			Note:      in.Note,
			Timestamp: now,
		})
		// повторный delivered не перезаписывает время и подтверждение
		if in.Status == entities.DeliveryDelivered && d.ActualDeliveryTime == nil {
			d.ActualDeliveryTime = &now
			d.ProofOfDelivery = in.ProofOfDelivery
		}
		return nil
	})
	if err != nil {
		return entities.Delivery{}, err
	}

	if claimed {
		claimsTotal.WithLabelValues(claimAuto).Inc()
		c.logger.InfoContext(ctx, "delivery claimed by status update",
			slog.String("delivery_id", delivery.ID),
			slog.String("rider_id", actor.ID),
		)
	}
	transitionsTotal.WithLabelValues("delivery", string(delivery.Status)).Inc()

	c.afterDeliveryChange(ctx, delivery, in.Note)

	if in.Location != nil {
		c.toDelivery(ctx, delivery.ID, fanout.EventLocationUpdated, LocationUpdatedEvent{
			DeliveryID: delivery.ID,
			RiderID:    delivery.RiderID,
			Latitude:   in.Location.Latitude,
			Longitude:  in.Location.Longitude,
			Status:     string(delivery.Status),
			Timestamp:  time.Now().UTC(),
		})
	}
	return delivery, nil
}

// afterDeliveryChange mirrors the delivery milestone onto the linked order and
// tells the buyer.
func (c *Coordinator) afterDeliveryChange(ctx context.Context, d entities.Delivery, note string) {
	c.invalidateTrack(d.ID)

	var order *entities.Order
	if d.OrderID != "" {
		order = c.mirror(ctx, d)
	}

	buyerID := d.BuyerID
	if order != nil {
		buyerID = order.BuyerID
	}
	c.toUser(ctx, buyerID, fanout.EventOrderUpdate, deliveryUpdateEvent(d, order, note))
}

// mirror moves the linked order along the delivery milestone. It never moves
// an order backwards and leaves finished orders alone. Failures are logged:
// the delivery write already happened and stays.
func (c *Coordinator) mirror(ctx context.Context, d entities.Delivery) *entities.Order {
	order, err := c.orders.Update(ctx, d.OrderID, func(o *entities.Order) error {
		next, ok := entities.MirrorTarget(o.Status, d.Status)
		if !ok {
			return errNoMirror
		}
		o.Status = next
		o.StatusHistory = append(o.StatusHistory, entities.StatusEntry{
			Status:    next,
			Note:      "delivery " + string(d.Status),
			Timestamp: time.Now().UTC(),
		})
		return nil
	})

	switch {
	case err == nil:
		mirrorsTotal.WithLabelValues(string(order.Status)).Inc()
		transitionsTotal.WithLabelValues("order", string(order.Status)).Inc()
		return &order
	case errors.Is(err, errNoMirror):
		current, err := c.orders.GetByID(ctx, d.OrderID)
		if err != nil {
			return nil
		}
		return &current
	default:
		c.logger.ErrorContext(ctx, "failed to mirror delivery status",
			slog.String("delivery_id", d.ID),
			slog.String("order_id", d.OrderID),
			slog.Any("error", fmt.Errorf("%w: %w", entities.ErrUpstream, err)),
		)
		return nil
	}
}

func (c *Coordinator) ListPendingDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	return c.deliveries.ListByStatus(ctx, entities.DeliveryPending)
}

func (c *Coordinator) ListRiderDeliveries(ctx context.Context, riderID string) ([]entities.Delivery, error) {
	return c.deliveries.ListByRider(ctx, riderID)
}

func (c *Coordinator) DeleteDelivery(ctx context.Context, deliveryID string) error {
	if err := c.deliveries.Delete(ctx, deliveryID); err != nil {
		return err
	}
	c.invalidateTrack(deliveryID)
	c.logger.InfoContext(ctx, "delivery deleted", slog.String("delivery_id", deliveryID))
	return nil
}
