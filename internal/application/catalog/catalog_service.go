package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
)

// Service exposes read access to the product catalog. The catalog is
// seeded at startup and treated as read-only by the storefront.
type Service struct {
	products catalog.ProductRepository
}

// NewService creates a catalog service
func NewService(products catalog.ProductRepository) *Service {
	return &Service{products: products}
}

// Get returns one product by id
func (s *Service) Get(ctx context.Context, id string) (*ProductResponse, error) {
	product, err := s.products.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns the full catalog, optionally filtered by category
func (s *Service) List(ctx context.Context, category string) ([]ProductResponse, error) {
	var (
		products []catalog.Product
		err      error
	)
	if category != "" {
		products, err = s.products.FindByCategory(ctx, category)
	} else {
		products, err = s.products.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, 0, len(products))
	for idx := range products {
		out = append(out, *toProductResponse(&products[idx]))
	}
	return out, nil
}
