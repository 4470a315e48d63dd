package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Lookup finds a product by its ID
func (r *GormProductRepository) Lookup(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, wrapStorageError(err)
	}
	return &product, nil
}

// All returns every product ordered by name
func (r *GormProductRepository) All(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, wrapStorageError(err)
	}
	return products, nil
}

// FindByCategory returns products in the given category ordered by name
func (r *GormProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, wrapStorageError(err)
	}
	return products, nil
}

// Save inserts or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(product).Error; err != nil {
		return wrapStorageError(err)
	}
	return nil
}
