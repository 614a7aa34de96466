package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
)

// ProductRepo exposes only what the order lifecycle needs from the catalog:
// reads and stock adjustments.
type ProductRepo struct {
	products *docstore.Collection[Product]
}

func NewProductRepo(store docstore.Store) *ProductRepo {
	return &ProductRepo{products: docstore.NewCollection[Product](store, productsCollection)}
}

func (r *ProductRepo) Create(ctx context.Context, p entities.Product) error {
	if err := r.products.Insert(ctx, p.ID, ProductFromEntity(p)); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (entities.Product, error) {
	doc, err := r.products.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(doc), nil
}

// AdjustStock adds delta to the product stock in one conditional write.
// A decrement that would take stock below zero fails with ErrInsufficientStock.
func (r *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error) {
	doc, err := r.products.Update(ctx, id, func(p *Product) error {
		if p.Stock+delta < 0 {
			return fmt.Errorf("%w: %s has %d left", entities.ErrInsufficientStock, p.Name, p.Stock)
		}
		p.Stock += delta
		return nil
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, err
	}
	return ProductToEntity(doc), nil
}
