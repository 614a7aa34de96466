package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
)

type RiderRepo struct {
	riders *docstore.Collection[Rider]
}

func NewRiderRepo(store docstore.Store) *RiderRepo {
	return &RiderRepo{riders: docstore.NewCollection[Rider](store, ridersCollection)}
}

func (r *RiderRepo) Create(ctx context.Context, rider entities.Rider) error {
	rider.UpdatedAt = time.Now().UTC()
	if err := r.riders.Insert(ctx, rider.ID, RiderFromEntity(rider)); err != nil {
		return fmt.Errorf("failed to save rider: %w", err)
	}
	return nil
}

func (r *RiderRepo) GetByID(ctx context.Context, id string) (entities.Rider, error) {
	doc, err := r.riders.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Rider{}, entities.ErrRiderNotFound
	}
	if err != nil {
		return entities.Rider{}, fmt.Errorf("failed to get rider: %w", err)
	}
	return RiderToEntity(doc), nil
}

// UpdateLocation overwrites the last known location. No history is kept.
func (r *RiderRepo) UpdateLocation(ctx context.Context, id string, lat, lng float64) (entities.Rider, error) {
	return r.upsert(ctx, id, func(rider *entities.Rider) {
		rider.Location = &entities.Location{
			Latitude:    lat,
			Longitude:   lng,
			LastUpdated: time.Now().UTC(),
		}
	})
}

func (r *RiderRepo) SetAvailability(ctx context.Context, id string, available bool) (entities.Rider, error) {
	return r.upsert(ctx, id, func(rider *entities.Rider) {
		rider.Available = available
	})
}

func (r *RiderRepo) ListAvailable(ctx context.Context) ([]entities.Rider, error) {
	docs, err := r.riders.Find(ctx, docstore.Filter{"available": true})
	if err != nil {
		return nil, fmt.Errorf("failed to find riders: %w", err)
	}
	result := make([]entities.Rider, 0, len(docs))
	for _, doc := range docs {
		result = append(result, RiderToEntity(doc))
	}
	return result, nil
}

// Rider profiles are owned by the user service, so the directory record is
// created on first write.
func (r *RiderRepo) upsert(ctx context.Context, id string, fn func(rider *entities.Rider)) (entities.Rider, error) {
	for range 2 {
		doc, err := r.riders.Update(ctx, id, func(doc *Rider) error {
			rider := RiderToEntity(*doc)
			fn(&rider)
			rider.UpdatedAt = time.Now().UTC()
			*doc = RiderFromEntity(rider)
			return nil
		})
		if err == nil {
			return RiderToEntity(doc), nil
		}
		if !errors.Is(err, docstore.ErrNotFound) {
			return entities.Rider{}, fmt.Errorf("failed to update rider: %w", err)
		}

		rider := entities.Rider{ID: id}
		fn(&rider)
		rider.UpdatedAt = time.Now().UTC()
		err = r.riders.Insert(ctx, id, RiderFromEntity(rider))
		if errors.Is(err, docstore.ErrDuplicate) {
			continue
		}
		if err != nil {
			return entities.Rider{}, fmt.Errorf("failed to save rider: %w", err)
		}
		return rider, nil
	}
	return entities.Rider{}, fmt.Errorf("failed to upsert rider %s", id)
}
