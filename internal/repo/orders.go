package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
)

type OrderRepo struct {
	orders *docstore.Collection[Order]
}

func NewOrderRepo(store docstore.Store) *OrderRepo {
	return &OrderRepo{orders: docstore.NewCollection[Order](store, ordersCollection)}
}

func (r *OrderRepo) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := r.orders.Insert(ctx, o.ID, OrderFromEntity(o)); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (entities.Order, error) {
	doc, err := r.orders.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(doc), nil
}

// Update applies fn to the stored order atomically. Errors returned by fn are
// passed through untouched.
func (r *OrderRepo) Update(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error) {
	doc, err := r.orders.Update(ctx, id, func(doc *Order) error {
		o := OrderToEntity(*doc)
		if err := fn(&o); err != nil {
			return err
		}
		o.UpdatedAt = time.Now().UTC()
		*doc = OrderFromEntity(o)
		return nil
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(doc), nil
}

func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error) {
	return r.find(ctx, docstore.Filter{"buyerId": buyerID})
}

func (r *OrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]entities.Order, error) {
	return r.find(ctx, docstore.Filter{"sellerId": sellerID})
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	err := r.orders.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) find(ctx context.Context, filter docstore.Filter) ([]entities.Order, error) {
	docs, err := r.orders.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	result := make([]entities.Order, 0, len(docs))
	for _, doc := range docs {
		result = append(result, OrderToEntity(doc))
	}
	return result, nil
}
