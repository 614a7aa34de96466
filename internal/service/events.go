package service

import (
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
)

// Socket payloads. Orders and deliveries travel in their stored document shape.

type OrderUpdateEvent struct {
	OrderID        string `json:"orderId,omitempty"`
	OrderNumber    string `json:"orderNumber,omitempty"`
	Status         string `json:"status,omitempty"`
	DeliveryID     string `json:"deliveryId,omitempty"`
	DeliveryStatus string `json:"deliveryStatus,omitempty"`
	Note           string `json:"note,omitempty"`
}

type OrderCancelledEvent struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Reason      string `json:"reason,omitempty"`
}

type LocationUpdatedEvent struct {
	DeliveryID string    `json:"deliveryId"`
	RiderID    string    `json:"riderId,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Status     string    `json:"status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func orderUpdateEvent(o entities.Order, note string) OrderUpdateEvent {
	return OrderUpdateEvent{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		DeliveryID:  o.DeliveryID,
		Note:        note,
	}
}

func deliveryUpdateEvent(d entities.Delivery, order *entities.Order, note string) OrderUpdateEvent {
	e := OrderUpdateEvent{
		DeliveryID:     d.ID,
		DeliveryStatus: string(d.Status),
		Note:           note,
	}
	if order != nil {
		e.OrderID = order.ID
		e.OrderNumber = order.OrderNumber
		e.Status = string(order.Status)
	} else {
		e.OrderID = d.OrderID
	}
	return e
}

func orderDocument(o entities.Order) repo.Order {
	return repo.OrderFromEntity(o)
}

func deliveryDocument(d entities.Delivery) repo.Delivery {
	return repo.DeliveryFromEntity(d)
}
