package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Catalog is the read-only product view the engine prices against.
// Lookup reports absence explicitly; a cart line whose product is
// missing contributes zero to every sum. The cart may reference stale
// ids after a catalog change, so under-pricing such a cart is possible;
// see the skipped-line behavior below.
type Catalog interface {
	Lookup(productID string) (*catalog.Product, bool)
}

// MapCatalog is a snapshot Catalog backed by a map, built by the
// application layer before a pricing computation
type MapCatalog map[string]*catalog.Product

// Lookup implements Catalog
func (m MapCatalog) Lookup(productID string) (*catalog.Product, bool) {
	p, ok := m[productID]
	return p, ok
}

// Config carries the per-storefront fee model. The two reference
// profiles differ only here: the food storefront charges a 2.99 flat
// delivery fee below a 30.00 free-delivery threshold and no tax, the
// electronics storefront charges 8% tax and no delivery fee.
type Config struct {
	TaxRate               decimal.Decimal   // 0 disables tax
	DeliveryFee           valueobject.Money // flat fee below the threshold
	FreeDeliveryThreshold valueobject.Money // subtotal at or above which delivery is free
}

// Subtotal sums unit price times quantity over every line whose product
// exists in the catalog. Lines referencing missing products are
// skipped.
func Subtotal(lines []cart.Line, cat Catalog) valueobject.Money {
	total := valueobject.ZeroUSD()
	for _, line := range lines {
		product, ok := cat.Lookup(line.ProductID)
		if !ok {
			continue
		}
		lineTotal := product.UnitPriceMoney().MultiplyByInt(int64(line.Quantity))
		total = total.MustAdd(lineTotal)
	}
	return total
}

// TotalSavings sums per-line savings against original prices. Lines
// without an original price above the unit price, and lines whose
// product is missing, contribute zero.
func TotalSavings(lines []cart.Line, cat Catalog) valueobject.Money {
	total := valueobject.ZeroUSD()
	for _, line := range lines {
		product, ok := cat.Lookup(line.ProductID)
		if !ok {
			continue
		}
		total = total.MustAdd(product.Savings().MultiplyByInt(int64(line.Quantity)))
	}
	return total
}

// DeliveryFee returns zero when the subtotal meets the free-delivery
// threshold, the configured flat fee otherwise. A zero-valued fee in
// the config disables delivery charges entirely.
func DeliveryFee(subtotal valueobject.Money, cfg Config) valueobject.Money {
	if cfg.DeliveryFee.IsZero() {
		return valueobject.Zero(subtotal.Currency())
	}
	if free, _ := subtotal.GreaterThanOrEqual(cfg.FreeDeliveryThreshold); free {
		return valueobject.Zero(subtotal.Currency())
	}
	return cfg.DeliveryFee
}

// Tax returns subtotal times rate at full precision. Rounding to the
// smallest currency unit happens once at the display boundary, never
// on intermediate sums.
func Tax(subtotal valueobject.Money, rate decimal.Decimal) valueobject.Money {
	if !rate.IsPositive() {
		return valueobject.Zero(subtotal.Currency())
	}
	return subtotal.Multiply(rate)
}

// GrandTotal combines the parts, clamping at zero; a discount can never
// drive the total negative.
func GrandTotal(subtotal, deliveryFee, tax, discount valueobject.Money) valueobject.Money {
	total := subtotal.MustAdd(deliveryFee).MustAdd(tax).MustSubtract(discount)
	return total.ClampNonNegative()
}

// Quote is the full derivation for one cart snapshot. FreeDelivery is
// only set when a configured fee was actually waived; storefronts that
// never charge delivery do not get the flag.
type Quote struct {
	Subtotal     valueobject.Money
	Savings      valueobject.Money
	DeliveryFee  valueobject.Money
	Tax          valueobject.Money
	Discount     valueobject.Money
	Total        valueobject.Money
	PromoCode    string
	FreeDelivery bool
}

// Compute derives a Quote from a cart snapshot, catalog, fee config,
// and optional applied promotion. It never mutates its inputs.
func Compute(lines []cart.Line, cat Catalog, cfg Config, promo *promotion.Promotion) Quote {
	subtotal := Subtotal(lines, cat)
	savings := TotalSavings(lines, cat)
	delivery := DeliveryFee(subtotal, cfg)
	tax := Tax(subtotal, cfg.TaxRate)

	discount := valueobject.Zero(subtotal.Currency())
	promoCode := ""
	if promo != nil {
		promoCode = promo.Code
		discount = promo.Discount(subtotal)
		if promo.WaivesDelivery() {
			delivery = valueobject.Zero(subtotal.Currency())
		}
	}

	return Quote{
		Subtotal:     subtotal,
		Savings:      savings,
		DeliveryFee:  delivery,
		Tax:          tax,
		Discount:     discount,
		Total:        GrandTotal(subtotal, delivery, tax, discount),
		PromoCode:    promoCode,
		FreeDelivery: cfg.DeliveryFee.IsPositive() && delivery.IsZero(),
	}
}
