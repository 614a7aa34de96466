package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
)

type DeliveryRepo struct {
	deliveries *docstore.Collection[Delivery]
}

func NewDeliveryRepo(store docstore.Store) *DeliveryRepo {
	return &DeliveryRepo{deliveries: docstore.NewCollection[Delivery](store, deliveriesCollection)}
}

func (r *DeliveryRepo) Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error) {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := r.deliveries.Insert(ctx, d.ID, DeliveryFromEntity(d)); err != nil {
		return entities.Delivery{}, fmt.Errorf("failed to save delivery: %w", err)
	}
	return d, nil
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (entities.Delivery, error) {
	doc, err := r.deliveries.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Delivery{}, entities.ErrDeliveryNotFound
	}
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}
	return DeliveryToEntity(doc), nil
}

// Update is the conditional write used by claims and status updates: fn sees
// the current document and may reject the change by returning an error.
func (r *DeliveryRepo) Update(ctx context.Context, id string, fn func(d *entities.Delivery) error) (entities.Delivery, error) {
	doc, err := r.deliveries.Update(ctx, id, func(doc *Delivery) error {
		d := DeliveryToEntity(*doc)
		if err := fn(&d); err != nil {
			return err
		}
		d.UpdatedAt = time.Now().UTC()
		*doc = DeliveryFromEntity(d)
		return nil
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Delivery{}, entities.ErrDeliveryNotFound
	}
	if err != nil {
		return entities.Delivery{}, err
	}
	return DeliveryToEntity(doc), nil
}

func (r *DeliveryRepo) ListByStatus(ctx context.Context, status entities.DeliveryStatus) ([]entities.Delivery, error) {
	return r.find(ctx, docstore.Filter{"status": string(status)})
}

func (r *DeliveryRepo) ListByRider(ctx context.Context, riderID string) ([]entities.Delivery, error) {
	return r.find(ctx, docstore.Filter{"riderId": riderID})
}

func (r *DeliveryRepo) Delete(ctx context.Context, id string) error {
	err := r.deliveries.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.ErrDeliveryNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	return nil
}

func (r *DeliveryRepo) find(ctx context.Context, filter docstore.Filter) ([]entities.Delivery, error) {
	docs, err := r.deliveries.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find deliveries: %w", err)
	}
	result := make([]entities.Delivery, 0, len(docs))
	for _, doc := range docs {
		result = append(result, DeliveryToEntity(doc))
	}
	return result, nil
}
