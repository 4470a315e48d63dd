package catalog

import "context"

// ProductRepository defines persistence operations for catalog products
type ProductRepository interface {
	// Lookup finds a product by its ID.
	// Returns shared.ErrNotFound when the product does not exist; call
	// sites must handle absence explicitly.
	Lookup(ctx context.Context, id string) (*Product, error)

	// All returns every product in the catalog in stable order
	All(ctx context.Context) ([]Product, error)

	// FindByCategory returns products in the given category
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	// Save inserts or updates a product (used by seeding only)
	Save(ctx context.Context, product *Product) error
}
