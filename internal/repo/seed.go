package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
)

// Catalog is the seed file layout: products sold through orders and known riders.
type Catalog struct {
	Products []Product `json:"products"`
	Riders   []Rider   `json:"riders"`
}

// CatalogSeeder loads a catalog file into the store on start. Documents that
// already exist are kept as they are.
type CatalogSeeder struct {
	logger   *slog.Logger
	path     string
	products *ProductRepo
	riders   *RiderRepo
}

func NewCatalogSeeder(logger *slog.Logger, path string, products *ProductRepo, riders *RiderRepo) *CatalogSeeder {
	return &CatalogSeeder{
		logger:   logger.With(slog.String("component", "seeder")),
		path:     path,
		products: products,
		riders:   riders,
	}
}

func (s *CatalogSeeder) Start(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to decode catalog: %w", err)
	}

	return s.Seed(ctx, catalog)
}

func (s *CatalogSeeder) Seed(ctx context.Context, catalog Catalog) error {
	var created int
	for _, p := range catalog.Products {
		err := s.products.Create(ctx, ProductToEntity(p))
		if errors.Is(err, docstore.ErrDuplicate) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}
	for _, r := range catalog.Riders {
		err := s.riders.Create(ctx, RiderToEntity(r))
		if errors.Is(err, docstore.ErrDuplicate) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}

	s.logger.Info("catalog seeded", slog.Int("created", created),
		slog.Int("total", len(catalog.Products)+len(catalog.Riders)))
	return nil
}
