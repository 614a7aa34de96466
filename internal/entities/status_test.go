package entities_test

import (
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name string
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{name: "forward", from: entities.OrderPending, to: entities.OrderConfirmed, want: true},
		{name: "skip ahead", from: entities.OrderConfirmed, to: entities.OrderReady, want: true},
		{name: "same status", from: entities.OrderProcessing, to: entities.OrderProcessing, want: true},
		{name: "backwards", from: entities.OrderReady, to: entities.OrderConfirmed, want: false},
		{name: "cancel pending", from: entities.OrderPending, to: entities.OrderCancelled, want: true},
		{name: "cancel confirmed", from: entities.OrderConfirmed, to: entities.OrderCancelled, want: true},
		{name: "cancel processing", from: entities.OrderProcessing, to: entities.OrderCancelled, want: false},
		{name: "from delivered", from: entities.OrderDelivered, to: entities.OrderDelivered, want: false},
		{name: "from cancelled", from: entities.OrderCancelled, to: entities.OrderConfirmed, want: false},
		{name: "unknown target", from: entities.OrderPending, to: "shipped", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestDeliveryStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name string
		from entities.DeliveryStatus
		to   entities.DeliveryStatus
		want bool
	}{
		{name: "pending to assigned", from: entities.DeliveryPending, to: entities.DeliveryAssigned, want: true},
		{name: "pending to picked up", from: entities.DeliveryPending, to: entities.DeliveryPickedUp, want: true},
		{name: "repeat in transit", from: entities.DeliveryInTransit, to: entities.DeliveryInTransit, want: true},
		{name: "back to pending", from: entities.DeliveryAssigned, to: entities.DeliveryPending, want: false},
		{name: "backwards", from: entities.DeliveryInTransit, to: entities.DeliveryPickedUp, want: false},
		{name: "fail in transit", from: entities.DeliveryInTransit, to: entities.DeliveryFailed, want: true},
		{name: "after delivered", from: entities.DeliveryDelivered, to: entities.DeliveryFailed, want: false},
		{name: "repeat delivered", from: entities.DeliveryDelivered, to: entities.DeliveryDelivered, want: true},
		{name: "repeat failed", from: entities.DeliveryFailed, to: entities.DeliveryFailed, want: true},
		{name: "repeat pending", from: entities.DeliveryPending, to: entities.DeliveryPending, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestMirrorTarget(t *testing.T) {
	testCases := []struct {
		name     string
		order    entities.OrderStatus
		delivery entities.DeliveryStatus
		want     entities.OrderStatus
		ok       bool
	}{
		{name: "claim picks up order", order: entities.OrderConfirmed, delivery: entities.DeliveryAssigned, want: entities.OrderPickedUp, ok: true},
		{name: "in transit", order: entities.OrderPickedUp, delivery: entities.DeliveryInTransit, want: entities.OrderInTransit, ok: true},
		{name: "delivered", order: entities.OrderReady, delivery: entities.DeliveryDelivered, want: entities.OrderDelivered, ok: true},
		{name: "already equal", order: entities.OrderInTransit, delivery: entities.DeliveryInTransit, ok: false},
		{name: "never regresses", order: entities.OrderInTransit, delivery: entities.DeliveryPickedUp, ok: false},
		{name: "cancelled order untouched", order: entities.OrderCancelled, delivery: entities.DeliveryDelivered, ok: false},
		{name: "failed has no mirror", order: entities.OrderInTransit, delivery: entities.DeliveryFailed, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := entities.MirrorTarget(tc.order, tc.delivery)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStateError_Is(t *testing.T) {
	claimErr := entities.NewAlreadyAssignedError(entities.DeliveryAssigned)
	assert.True(t, errors.Is(claimErr, entities.ErrAlreadyAssigned))
	assert.True(t, errors.Is(claimErr, entities.ErrInvalidState))
	assert.Contains(t, claimErr.Error(), `"assigned"`)

	orderErr := entities.NewOrderStateError(entities.OrderProcessing, entities.OrderCancelled)
	assert.True(t, errors.Is(orderErr, entities.ErrInvalidState))
	assert.False(t, errors.Is(orderErr, entities.ErrAlreadyAssigned))
}
