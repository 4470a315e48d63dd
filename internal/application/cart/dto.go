package cart

import (
	"time"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/pricing"
	"github.com/storefront/backend/internal/domain/promotion"
)

// ItemResponse is one cart line with product details resolved
type ItemResponse struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	UnitPrice string    `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal string    `json:"line_total"`
	AddedAt   time.Time `json:"added_at"`
}

// SummaryResponse is the priced breakdown for the current cart.
// Amounts are fixed to two decimal places at this boundary; internal
// computation keeps full precision.
type SummaryResponse struct {
	Subtotal     string `json:"subtotal"`
	Savings      string `json:"savings"`
	DeliveryFee  string `json:"delivery_fee"`
	Tax          string `json:"tax"`
	Discount     string `json:"discount"`
	Total        string `json:"total"`
	PromoCode    string `json:"promo_code,omitempty"`
	PromoStatus  string `json:"promo_status"`
	FreeDelivery bool   `json:"free_delivery"`
}

// CartResponse is the full cart view returned by every cart operation
type CartResponse struct {
	SessionID string          `json:"session_id"`
	Items     []ItemResponse  `json:"items"`
	ItemCount int             `json:"item_count"`
	Summary   SummaryResponse `json:"summary"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItemResponse is one frozen line of a placed order
type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category,omitempty"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Amount      string `json:"amount"`
}

// OrderResponse is the confirmation snapshot returned by checkout
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	SessionID   string              `json:"session_id"`
	Items       []OrderItemResponse `json:"items"`
	ItemCount   int                 `json:"item_count"`
	Subtotal    string              `json:"subtotal"`
	Savings     string              `json:"savings"`
	DeliveryFee string              `json:"delivery_fee"`
	Tax         string              `json:"tax"`
	Discount    string              `json:"discount"`
	Total       string              `json:"total"`
	PromoCode   string              `json:"promo_code,omitempty"`
	PlacedAt    time.Time           `json:"placed_at"`
}

func toCartResponse(c *cart.Cart, cat pricing.Catalog, quote pricing.Quote) *CartResponse {
	items := make([]ItemResponse, 0, len(c.Lines))
	for _, line := range c.Lines {
		product, ok := cat.Lookup(line.ProductID)
		if !ok {
			// stale line; priced as zero, not shown
			continue
		}
		lineTotal := product.UnitPriceMoney().MultiplyByInt(int64(line.Quantity))
		items = append(items, ItemResponse{
			ProductID: line.ProductID,
			Name:      product.Name,
			Category:  product.Category,
			UnitPrice: product.UnitPriceMoney().StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: lineTotal.StringFixed(2),
			AddedAt:   line.AddedAt,
		})
	}

	return &CartResponse{
		SessionID: c.SessionID,
		Items:     items,
		ItemCount: c.ItemCount(),
		Summary:   toSummaryResponse(quote),
		UpdatedAt: c.UpdatedAt,
	}
}

func toSummaryResponse(quote pricing.Quote) SummaryResponse {
	status := promotion.StatusNone
	if quote.PromoCode != "" {
		status = promotion.StatusApplied
	}
	return SummaryResponse{
		Subtotal:     quote.Subtotal.StringFixed(2),
		Savings:      quote.Savings.StringFixed(2),
		DeliveryFee:  quote.DeliveryFee.StringFixed(2),
		Tax:          quote.Tax.StringFixed(2),
		Discount:     quote.Discount.StringFixed(2),
		Total:        quote.Total.StringFixed(2),
		PromoCode:    quote.PromoCode,
		PromoStatus:  status.String(),
		FreeDelivery: quote.FreeDelivery,
	}
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Category:    item.Category,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Quantity:    item.Quantity,
			Amount:      item.Amount.StringFixed(2),
		})
	}

	return &OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		SessionID:   o.SessionID,
		Items:       items,
		ItemCount:   o.ItemCount(),
		Subtotal:    o.Subtotal.StringFixed(2),
		Savings:     o.Savings.StringFixed(2),
		DeliveryFee: o.DeliveryFee.StringFixed(2),
		Tax:         o.Tax.StringFixed(2),
		Discount:    o.Discount.StringFixed(2),
		Total:       o.Total.StringFixed(2),
		PromoCode:   o.PromoCode,
		PlacedAt:    o.PlacedAt,
	}
}
