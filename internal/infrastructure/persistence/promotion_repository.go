package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormPromotionRepository implements promotion.Repository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByCode finds a promotion by its normalized code
func (r *GormPromotionRepository) FindByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	var promo promotion.Promotion
	if err := r.db.WithContext(ctx).First(&promo, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, wrapStorageError(err)
	}
	return &promo, nil
}

// All returns every known promotion ordered by code
func (r *GormPromotionRepository) All(ctx context.Context) ([]promotion.Promotion, error) {
	var promos []promotion.Promotion
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&promos).Error; err != nil {
		return nil, wrapStorageError(err)
	}
	return promos, nil
}

// Save inserts or updates a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, promo *promotion.Promotion) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(promo).Error; err != nil {
		return wrapStorageError(err)
	}
	return nil
}
