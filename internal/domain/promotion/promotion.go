package promotion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Kind enumerates the supported promotion discount strategies
type Kind string

const (
	// KindPercent applies a percentage-based discount to the subtotal
	KindPercent Kind = "percent"
	// KindFixed applies a fixed monetary discount capped at the subtotal
	KindFixed Kind = "fixed"
	// KindFreeDelivery waives the delivery fee without touching the subtotal
	KindFreeDelivery Kind = "free_delivery"
)

// IsValid checks if the kind is a supported promotion kind
func (k Kind) IsValid() bool {
	switch k {
	case KindPercent, KindFixed, KindFreeDelivery:
		return true
	}
	return false
}

// Promotion is a redeemable discount code.
// Codes are stored normalized (trimmed, uppercased).
type Promotion struct {
	Code      string          `gorm:"type:varchar(30);primaryKey"`
	Kind      Kind            `gorm:"type:varchar(20);not null"`
	Value     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Percent in (0,100] or fixed amount > 0; unused for free delivery
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// NormalizeCode trims surrounding whitespace and uppercases a
// user-supplied code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewPromotion creates a promotion after validating its magnitude
func NewPromotion(code string, kind Kind, value decimal.Decimal) (*Promotion, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Promotion code cannot be empty")
	}
	if len(normalized) > 30 {
		return nil, shared.NewDomainError("INVALID_CODE", "Promotion code cannot exceed 30 characters")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unsupported promotion kind")
	}

	switch kind {
	case KindPercent:
		if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
			return nil, shared.NewDomainError("INVALID_VALUE", "Percentage must be in (0, 100]")
		}
	case KindFixed:
		if !value.IsPositive() {
			return nil, shared.NewDomainError("INVALID_VALUE", "Fixed discount must be positive")
		}
	case KindFreeDelivery:
		value = decimal.Zero
	}

	now := time.Now()
	return &Promotion{
		Code:      normalized,
		Kind:      kind,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Discount computes the subtotal discount this promotion grants.
// The result never exceeds the subtotal; free-delivery promotions
// contribute nothing here and instead waive the delivery fee.
func (p *Promotion) Discount(subtotal valueobject.Money) valueobject.Money {
	switch p.Kind {
	case KindPercent:
		discount := subtotal.CalculatePercentage(p.Value)
		if exceeds, _ := discount.GreaterThanOrEqual(subtotal); exceeds {
			return subtotal
		}
		return discount
	case KindFixed:
		fixed := valueobject.NewMoneyUSD(p.Value)
		if exceeds, _ := fixed.GreaterThanOrEqual(subtotal); exceeds {
			return subtotal
		}
		return fixed
	default:
		return valueobject.Zero(subtotal.Currency())
	}
}

// WaivesDelivery returns true when the promotion zeroes the delivery fee
func (p *Promotion) WaivesDelivery() bool {
	return p.Kind == KindFreeDelivery
}
