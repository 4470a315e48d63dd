package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/pricing"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Item is one line of a finalized order with product details resolved
// at checkout time. Prices are frozen here; later catalog changes do
// not affect placed orders.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Category    string          `gorm:"type:varchar(50)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity    int             `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"` // UnitPrice * Quantity
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// Order is the immutable snapshot handed to the confirmation flow when
// a checkout succeeds
type Order struct {
	shared.BaseEntity
	OrderNumber string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	SessionID   string          `gorm:"type:varchar(100);not null;index"`
	Items       []Item          `gorm:"foreignKey:OrderID"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Savings     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tax         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PromoCode   string          `gorm:"type:varchar(30)"`
	PlacedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// ItemInput carries one resolved line into NewOrder
type ItemInput struct {
	ProductID   string
	ProductName string
	Category    string
	UnitPrice   valueobject.Money
	Quantity    int
}

// NewOrder freezes a quote and its resolved lines into an order
// snapshot. An order without items is rejected; the checkout guard for
// empty carts lives in the application layer, this is the backstop.
func NewOrder(sessionID string, items []ItemInput, quote pricing.Quote) (*Order, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Session ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	base := shared.NewBaseEntity()

	orderItems := make([]Item, 0, len(items))
	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, shared.ErrInvalidQuantity
		}
		orderItems = append(orderItems, Item{
			ID:          uuid.New(),
			OrderID:     base.ID,
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Category:    in.Category,
			UnitPrice:   in.UnitPrice.Amount(),
			Quantity:    in.Quantity,
			Amount:      in.UnitPrice.MultiplyByInt(int64(in.Quantity)).Amount(),
			CreatedAt:   base.CreatedAt,
		})
	}

	return &Order{
		BaseEntity:  base,
		OrderNumber: generateOrderNumber(base.CreatedAt),
		SessionID:   sessionID,
		Items:       orderItems,
		Subtotal:    quote.Subtotal.Amount(),
		Savings:     quote.Savings.Amount(),
		DeliveryFee: quote.DeliveryFee.Amount(),
		Tax:         quote.Tax.Round(2).Amount(),
		Discount:    quote.Discount.Amount(),
		Total:       quote.Total.Round(2).Amount(),
		PromoCode:   quote.PromoCode,
		PlacedAt:    base.CreatedAt,
	}, nil
}

// TotalMoney returns the grand total as a Money value object
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total)
}

// ItemCount returns the sum of all item quantities
func (o *Order) ItemCount() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// generateOrderNumber builds a display order number from the placement
// time plus a short random suffix
func generateOrderNumber(at time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), suffix)
}
