package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save persists an order together with its items
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return wrapStorageError(err)
	}
	return nil
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, wrapStorageError(err)
	}
	return &o, nil
}

// FindBySession returns the session's orders, most recent first
func (r *GormOrderRepository) FindBySession(ctx context.Context, sessionID string) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("session_id = ?", sessionID).
		Order("placed_at DESC").
		Find(&orders).Error; err != nil {
		return nil, wrapStorageError(err)
	}
	return orders, nil
}
