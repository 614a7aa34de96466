package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/SergeyBogomolovv/courier-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_ConcurrentClaim(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	order, delivery := f.confirmedOrder(t)

	const riders = 16
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]error, riders)
	)
	for i := range riders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, results[i] = f.coord.AssignDelivery(ctx, delivery.ID, riderID(i))
		}()
	}
	close(start)
	wg.Wait()

	var winner string
	for i, err := range results {
		if err == nil {
			require.Empty(t, winner, "two riders claimed the same delivery")
			winner = riderID(i)
			continue
		}
		require.ErrorIs(t, err, entities.ErrAlreadyAssigned)
		require.ErrorIs(t, err, entities.ErrInvalidState)

		var stateErr *entities.StateError
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, string(entities.DeliveryAssigned), stateErr.Current)
	}
	require.NotEmpty(t, winner)

	got, err := f.deliveries.GetByID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, winner, got.RiderID)
	assert.Equal(t, entities.DeliveryAssigned, got.Status)
	assert.Len(t, got.Tracking, 2)

	linked, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderPickedUp, linked.Status)
	requireHistoryConsistent(t, linked)
}

func riderID(i int) string {
	return "rider-" + string(rune('a'+i))
}

func TestCoordinator_AssignUsesLastKnownLocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	_, delivery := f.confirmedOrder(t)
	_, err := f.riders.UpdateLocation(ctx, riderA.ID, 14.55, 121.02)
	require.NoError(t, err)

	assigned, err := f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	last := assigned.Tracking[len(assigned.Tracking)-1]
	require.NotNil(t, last.Location)
	assert.Equal(t, 14.55, last.Location.Latitude)

	_, err = f.coord.AssignDelivery(ctx, "missing", riderA.ID)
	assert.ErrorIs(t, err, entities.ErrDeliveryNotFound)
}

func TestCoordinator_DeliveredCompletesOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	location := &entities.Coordinates{Latitude: 14.6, Longitude: 121.03}

	f.pub.EXPECT().PublishToDelivery(mock.Anything, mock.Anything, fanout.EventLocationUpdated, mock.MatchedBy(func(e service.LocationUpdatedEvent) bool {
		return e.Latitude == location.Latitude && e.RiderID == riderA.ID
	})).Return(nil).Once()
	f.pub.EXPECT().PublishToUser(mock.Anything, "b1", fanout.EventOrderUpdate, mock.MatchedBy(func(e service.OrderUpdateEvent) bool {
		return e.DeliveryStatus == string(entities.DeliveryDelivered) && e.Status == string(entities.OrderDelivered)
	})).Return(nil).Once()
	f.allowEvents()

	order, delivery := f.confirmedOrder(t)
	_, err := f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	done, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, service.DeliveryStatusInput{
		Status:          entities.DeliveryDelivered,
		Location:        location,
		Note:            "left with the guard",
		ProofOfDelivery: &entities.ProofOfDelivery{Signature: "sig.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.DeliveryDelivered, done.Status)
	require.NotNil(t, done.ActualDeliveryTime)
	require.NotNil(t, done.ProofOfDelivery)
	assert.Equal(t, "sig.png", done.ProofOfDelivery.Signature)

	linked, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderDelivered, linked.Status)
	requireHistoryConsistent(t, linked)

	_, err = f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, service.DeliveryStatusInput{Status: entities.DeliveryFailed})
	assert.ErrorIs(t, err, entities.ErrInvalidState)
}

func TestCoordinator_RepeatedStatusIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	order, delivery := f.confirmedOrder(t)
	_, err := f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	in := service.DeliveryStatusInput{Status: entities.DeliveryInTransit}
	first, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, in)
	require.NoError(t, err)
	second, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, in)
	require.NoError(t, err)

	assert.Equal(t, entities.DeliveryInTransit, second.Status)
	assert.Len(t, second.Tracking, len(first.Tracking)+1)

	linked, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderInTransit, linked.Status)
	requireHistoryConsistent(t, linked)

	// статус доставки назад не двигается
	_, err = f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, service.DeliveryStatusInput{Status: entities.DeliveryPickedUp})
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	done, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, service.DeliveryStatusInput{
		Status:          entities.DeliveryDelivered,
		ProofOfDelivery: &entities.ProofOfDelivery{Signature: "first.png"},
	})
	require.NoError(t, err)
	require.NotNil(t, done.ActualDeliveryTime)

	repeated, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderA, service.DeliveryStatusInput{
		Status:          entities.DeliveryDelivered,
		ProofOfDelivery: &entities.ProofOfDelivery{Signature: "second.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryDelivered, repeated.Status)
	assert.Len(t, repeated.Tracking, len(done.Tracking)+1)
	require.NotNil(t, repeated.ActualDeliveryTime)
	assert.True(t, done.ActualDeliveryTime.Equal(*repeated.ActualDeliveryTime))
	require.NotNil(t, repeated.ProofOfDelivery)
	assert.Equal(t, "first.png", repeated.ProofOfDelivery.Signature)

	linked, err = f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderDelivered, linked.Status)
	assert.Equal(t, entities.OrderDelivered, linked.StatusHistory[len(linked.StatusHistory)-1].Status)
	assert.NotEqual(t, entities.OrderDelivered, linked.StatusHistory[len(linked.StatusHistory)-2].Status, "repeated delivery status mirrored twice")
	requireHistoryConsistent(t, linked)
}

func TestCoordinator_UpdateDeliveryStatusAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	_, delivery := f.confirmedOrder(t)
	_, err := f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		actor   entities.Actor
		status  entities.DeliveryStatus
		wantErr error
	}{
		{name: "another rider", actor: riderB, status: entities.DeliveryPickedUp, wantErr: entities.ErrForbidden},
		{name: "buyer", actor: buyer, status: entities.DeliveryPickedUp, wantErr: entities.ErrForbidden},
		{name: "back to pending", actor: riderA, status: entities.DeliveryPending, wantErr: entities.ErrInvalidState},
		{name: "unknown status", actor: riderA, status: "teleported", wantErr: entities.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, tc.actor, service.DeliveryStatusInput{Status: tc.status})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	got, err := f.deliveries.GetByID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, riderA.ID, got.RiderID)
	assert.Equal(t, entities.DeliveryAssigned, got.Status)

	updated, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, admin, service.DeliveryStatusInput{Status: entities.DeliveryPickedUp})
	require.NoError(t, err)
	assert.Equal(t, riderA.ID, updated.RiderID)
}

func TestCoordinator_AutoClaim(t *testing.T) {
	testCases := []struct {
		name      string
		autoClaim bool
		wantErr   error
		wantRider string
		wantOrder entities.OrderStatus
	}{
		{name: "enabled", autoClaim: true, wantRider: riderB.ID, wantOrder: entities.OrderPickedUp},
		{name: "disabled", autoClaim: false, wantErr: entities.ErrForbidden, wantOrder: entities.OrderConfirmed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, config.Dispatch{AutoClaim: tc.autoClaim})
			f.allowEvents()

			order, delivery := f.confirmedOrder(t)

			_, err := f.coord.UpdateDeliveryStatus(ctx, delivery.ID, riderB, service.DeliveryStatusInput{Status: entities.DeliveryPickedUp})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, err := f.deliveries.GetByID(ctx, delivery.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRider, got.RiderID)

			linked, err := f.orders.GetByID(ctx, order.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, linked.Status)

			// после автоназначения обычный claim проигрывает
			if tc.autoClaim {
				_, err = f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
				assert.ErrorIs(t, err, entities.ErrAlreadyAssigned)
			}
		})
	}
}

func TestCoordinator_MirrorSkipsCancelledOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	order, delivery := f.confirmedOrder(t)
	_, err := f.coord.CancelOrder(ctx, order.ID, buyer.ID, "no longer needed")
	require.NoError(t, err)

	_, err = f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	linked, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderCancelled, linked.Status)
	requireHistoryConsistent(t, linked)
}

func TestCoordinator_StandaloneDelivery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.pub.EXPECT().PublishToUser(mock.Anything, "r1", fanout.EventNewDeliveryRequest, mock.Anything).Return(nil).Once()
	f.pub.EXPECT().PublishToUser(mock.Anything, "b7", fanout.EventOrderUpdate, mock.Anything).Return(nil).Once()

	in := service.DeliveryInput{
		RecipientID:      "b7",
		PreferredRiderID: "r1",
		DocumentDetails:  &entities.DocumentDetails{Description: "passport", Quantity: 1},
		PickupAddress:    "Embassy",
		DeliveryAddress:  "Home",
	}

	delivery, err := f.coord.CreateDelivery(ctx, seller, in)
	require.NoError(t, err)
	assert.Empty(t, delivery.OrderID)
	assert.Equal(t, seller.ID, delivery.SenderID)
	assert.Equal(t, "b7", delivery.BuyerID)
	assert.Equal(t, entities.DeliveryPending, delivery.Status)

	_, err = f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	_, err = f.coord.CreateDelivery(ctx, seller, service.DeliveryInput{PickupAddress: "a", DeliveryAddress: "b"})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestCoordinator_TrackDelivery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	order, delivery := f.confirmedOrder(t)

	view, err := f.coord.TrackDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, delivery.ID, view.Delivery.ID)
	assert.Nil(t, view.Rider)
	require.NotNil(t, view.Order)
	assert.Equal(t, order.ID, view.Order.ID)

	_, err = f.directory.UpdateRiderLocation(ctx, riderA.ID, 10, 20)
	require.NoError(t, err)
	_, err = f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	view, err = f.coord.TrackDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Rider)
	assert.Equal(t, 10.0, view.Rider.Location.Latitude)
	assert.Equal(t, entities.OrderPickedUp, view.Order.Status)

	_, err = f.directory.UpdateRiderLocation(ctx, riderA.ID, 11, 21)
	require.NoError(t, err)

	view, err = f.coord.TrackDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, 11.0, view.Rider.Location.Latitude)

	_, err = f.coord.TrackDelivery(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrDeliveryNotFound)
}

func TestCoordinator_TrackDeliveryCorruptCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	_, delivery := f.confirmedOrder(t)
	f.cache.Set("track:"+delivery.ID, []byte("garbage"))

	view, err := f.coord.TrackDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, delivery.ID, view.Delivery.ID)
	assert.Contains(t, f.logs.String(), "failed to unmarshal track view")

	// битое значение заменено свежим
	data, ok := f.cache.Get("track:" + delivery.ID)
	require.True(t, ok)
	assert.NotEqual(t, []byte("garbage"), data)
}

func TestCoordinator_RiderDeliveriesAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})
	f.allowEvents()

	_, delivery := f.confirmedOrder(t)
	_, err := f.coord.AssignDelivery(ctx, delivery.ID, riderA.ID)
	require.NoError(t, err)

	mine, err := f.coord.ListRiderDeliveries(ctx, riderA.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, f.coord.DeleteDelivery(ctx, delivery.ID))
	assert.ErrorIs(t, f.coord.DeleteDelivery(ctx, delivery.ID), entities.ErrDeliveryNotFound)

	_, err = f.coord.TrackDelivery(ctx, delivery.ID)
	assert.ErrorIs(t, err, entities.ErrDeliveryNotFound)
}
