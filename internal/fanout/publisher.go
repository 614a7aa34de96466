// Package fanout pushes lifecycle and location events to clients grouped in
// rooms. Every event targets exactly one room: a user room or a delivery room.
package fanout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	EventNewOrderReceived     = "newOrderReceived"
	EventNewOrderNotification = "newOrderNotification"
	EventNewDeliveryRequest   = "newDeliveryRequest"
	EventOrderUpdate          = "orderUpdate"
	EventOrderCancelled       = "orderCancelled"
	EventLocationUpdated      = "locationUpdated"
)

var ErrHubClosed = errors.New("fanout hub is closed")

func UserRoom(userID string) string {
	return "user_" + userID
}

func DeliveryRoom(deliveryID string) string {
	return "delivery_" + deliveryID
}

// Message is one event addressed to a room, already encoded for the wire.
type Message struct {
	Room  string          `json:"room" validate:"required"`
	Event string          `json:"event" validate:"required"`
	Data  json.RawMessage `json:"data"`
}

// Transport moves a message towards the clients of its room. The local Hub is
// a transport; broker relays are transports that end in every instance's Hub.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

type Publisher interface {
	PublishToUser(ctx context.Context, userID, event string, payload any) error
	PublishToDelivery(ctx context.Context, deliveryID, event string, payload any) error
}

type roomPublisher struct {
	transport Transport
}

func NewPublisher(transport Transport) Publisher {
	return &roomPublisher{transport: transport}
}

func (p *roomPublisher) PublishToUser(ctx context.Context, userID, event string, payload any) error {
	return p.publish(ctx, UserRoom(userID), event, payload)
}

func (p *roomPublisher) PublishToDelivery(ctx context.Context, deliveryID, event string, payload any) error {
	return p.publish(ctx, DeliveryRoom(deliveryID), event, payload)
}

func (p *roomPublisher) publish(ctx context.Context, room, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event, err)
	}
	if err := p.transport.Send(ctx, Message{Room: room, Event: event, Data: data}); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event, room, err)
	}
	return nil
}
