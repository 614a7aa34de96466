package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRiderDirectory_UpdateRiderLocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})

	for _, d := range []entities.Delivery{
		{ID: "d-active", Status: entities.DeliveryInTransit, RiderID: riderA.ID},
		{ID: "d-done", Status: entities.DeliveryDelivered, RiderID: riderA.ID},
		{ID: "d-other", Status: entities.DeliveryAssigned, RiderID: riderB.ID},
	} {
		_, err := f.deliveries.Create(ctx, d)
		require.NoError(t, err)
	}

	f.pub.EXPECT().PublishToDelivery(mock.Anything, "d-active", fanout.EventLocationUpdated, mock.Anything).Return(nil).Once()

	rider, err := f.directory.UpdateRiderLocation(ctx, riderA.ID, 14.5, 121)
	require.NoError(t, err)
	require.NotNil(t, rider.Location)
	assert.Equal(t, 14.5, rider.Location.Latitude)
	assert.False(t, rider.Location.LastUpdated.IsZero())

	_, err = f.directory.UpdateRiderLocation(ctx, riderA.ID, 91, 0)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestRiderDirectory_Availability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.Dispatch{})

	_, err := f.directory.SetAvailability(ctx, riderA.ID, true)
	require.NoError(t, err)
	_, err = f.directory.SetAvailability(ctx, riderB.ID, true)
	require.NoError(t, err)
	_, err = f.directory.SetAvailability(ctx, riderB.ID, false)
	require.NoError(t, err)

	available, err := f.directory.ListAvailableRiders(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, riderA.ID, available[0].ID)
}
