package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a purchasable item in the catalog.
// The catalog is loaded once at startup and is read-only as far as the
// cart engine is concerned.
type Product struct {
	ID            string           `gorm:"type:varchar(50);primaryKey"`
	Name          string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	Category      string           `gorm:"type:varchar(50);index"`
	UnitPrice     decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(18,4)"` // Pre-discount price for savings display
	Status        ProductStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(id, name, category string, unitPrice valueobject.Money) (*Product, error) {
	if err := validateProductID(id); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &Product{
		ID:        id,
		Name:      name,
		Category:  category,
		UnitPrice: unitPrice.Amount(),
		Status:    ProductStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetOriginalPrice records the pre-discount price used for savings display.
// The original price must be at least the current unit price.
func (p *Product) SetOriginalPrice(price valueobject.Money) error {
	if price.Amount().LessThan(p.UnitPrice) {
		return shared.NewDomainError("INVALID_PRICE", "Original price must be at least the unit price")
	}
	amount := price.Amount()
	p.OriginalPrice = &amount
	p.UpdatedAt = time.Now()
	return nil
}

// UnitPriceMoney returns the unit price as a Money value object
func (p *Product) UnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.UnitPrice)
}

// Savings returns the per-unit savings when an original price above the
// unit price is set; zero otherwise.
func (p *Product) Savings() valueobject.Money {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.UnitPrice) {
		return valueobject.ZeroUSD()
	}
	return valueobject.NewMoneyUSD(p.OriginalPrice.Sub(p.UnitPrice))
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateProductID(id string) error {
	if id == "" {
		return shared.NewDomainError("INVALID_ID", "Product ID cannot be empty")
	}
	if len(id) > 50 {
		return shared.NewDomainError("INVALID_ID", "Product ID cannot exceed 50 characters")
	}
	for _, r := range id {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return shared.NewDomainError("INVALID_ID", "Product ID can only contain lowercase letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
