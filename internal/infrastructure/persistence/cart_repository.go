package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartLineModel is the stored form of one cart line. Position keeps
// insertion order stable across reloads.
type CartLineModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SessionID string    `gorm:"type:varchar(100);not null;index:idx_cart_session"`
	ProductID string    `gorm:"type:varchar(50);not null"`
	Quantity  int       `gorm:"not null"`
	Position  int       `gorm:"not null"`
	AddedAt   time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (CartLineModel) TableName() string {
	return "cart_lines"
}

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Load reads the stored cart for a session. A session with no rows
// yields an empty cart. Rows that fail basic validation (missing
// product id, non-positive quantity) are dropped rather than failing
// the load.
func (r *GormCartRepository) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := cart.New(sessionID)
	if err != nil {
		return nil, err
	}

	var models []CartLineModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position ASC").
		Find(&models).Error; err != nil {
		return nil, wrapStorageError(err)
	}

	lines := make([]cart.Line, 0, len(models))
	var updatedAt time.Time
	for _, m := range models {
		if m.ProductID == "" || m.Quantity <= 0 {
			continue
		}
		lines = append(lines, cart.Line{
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			AddedAt:   m.AddedAt,
		})
		if m.UpdatedAt.After(updatedAt) {
			updatedAt = m.UpdatedAt
		}
	}

	c.Lines = lines
	if !updatedAt.IsZero() {
		c.UpdatedAt = updatedAt
	}
	return c, nil
}

// Save replaces the session's stored rows with the cart's current
// lines in one transaction
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", c.SessionID).Delete(&CartLineModel{}).Error; err != nil {
			return err
		}
		if len(c.Lines) == 0 {
			return nil
		}

		models := make([]CartLineModel, 0, len(c.Lines))
		for idx, line := range c.Lines {
			models = append(models, CartLineModel{
				SessionID: c.SessionID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Position:  idx,
				AddedAt:   line.AddedAt,
				UpdatedAt: c.UpdatedAt,
			})
		}
		return tx.Create(&models).Error
	})
	if err != nil {
		return wrapStorageError(err)
	}
	return nil
}

// Delete removes every stored row for the session
func (r *GormCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&CartLineModel{}).Error; err != nil {
		return wrapStorageError(err)
	}
	return nil
}

// wrapStorageError tags database failures with the storage error code
// so the HTTP layer maps them consistently
func wrapStorageError(err error) error {
	return shared.NewDomainError(shared.ErrStorageUnavailable.Code, err.Error())
}
