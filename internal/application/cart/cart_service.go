package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/pricing"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/session"
)

// Service orchestrates cart mutations, pricing, promotions, and
// checkout for one shopper session.
//
// Every mutation persists the cart before returning (write-through), so
// a page reload always sees the result of the last completed operation.
// The priced summary is recomputed from scratch on every call; nothing
// here caches derived amounts.
type Service struct {
	carts    cart.Repository
	products catalog.ProductRepository
	orders   order.Repository
	resolver *promotion.Resolver
	applied  session.PromotionStore
	fees     pricing.Config
}

// NewService creates a cart service
func NewService(
	carts cart.Repository,
	products catalog.ProductRepository,
	orders order.Repository,
	resolver *promotion.Resolver,
	applied session.PromotionStore,
	fees pricing.Config,
) *Service {
	return &Service{
		carts:    carts,
		products: products,
		orders:   orders,
		resolver: resolver,
		applied:  applied,
		fees:     fees,
	}
}

// Get returns the current cart with its priced summary
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, c)
}

// AddItem adds quantity of a product to the cart. The product must
// exist in the catalog; quantities merge into an existing line.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*CartResponse, error) {
	if _, err := s.products.Lookup(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrProductNotFound
		}
		return nil, err
	}

	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.AddItem(productID, quantity)
	})
}

// RemoveItem removes a product's line from the cart. Removing a product
// that is not in the cart is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*CartResponse, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.RemoveItem(productID)
		return nil
	})
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line; a product not in the cart is left untouched.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartResponse, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.SetQuantity(productID, quantity)
		return nil
	})
}

// Increment raises a line's quantity by one
func (s *Service) Increment(ctx context.Context, sessionID, productID string) (*CartResponse, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Increment(productID)
		return nil
	})
}

// Decrement lowers a line's quantity by one; decrementing from one
// removes the line
func (s *Service) Decrement(ctx context.Context, sessionID, productID string) (*CartResponse, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Decrement(productID)
		return nil
	})
}

// Clear empties the cart and drops any applied promotion
func (s *Service) Clear(ctx context.Context, sessionID string) (*CartResponse, error) {
	if err := s.applied.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// ApplyPromotion validates a raw code and applies it to the session.
// An invalid code returns shared.ErrInvalidPromoCode and leaves any
// previously applied code in place. A valid code replaces the prior
// one; codes never stack.
func (s *Service) ApplyPromotion(ctx context.Context, sessionID, rawCode string) (*CartResponse, error) {
	_, hasPrior, err := s.applied.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	status := promotion.StatusNone
	if hasPrior {
		status = promotion.StatusApplied
	}
	if !status.CanTransitionTo(promotion.StatusPendingValidation) {
		return nil, shared.ErrInvalidState
	}

	promo, err := s.resolver.Resolve(ctx, rawCode)
	if err != nil {
		// rejection leaves the prior applied code untouched
		return nil, err
	}

	if err := s.applied.Apply(ctx, sessionID, promo.Code); err != nil {
		return nil, err
	}

	return s.Get(ctx, sessionID)
}

// RemovePromotion clears the session's applied code, restoring
// undiscounted pricing
func (s *Service) RemovePromotion(ctx context.Context, sessionID string) (*CartResponse, error) {
	if err := s.applied.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

// Checkout freezes the current cart and its quote into an order,
// persists it, and resets the session. A cart with no purchasable
// lines is rejected with shared.ErrEmptyCart.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*OrderResponse, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	cat, err := s.snapshotCatalog(ctx, c)
	if err != nil {
		return nil, err
	}
	promo, err := s.appliedPromotion(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	quote := pricing.Compute(c.Lines, cat, s.fees, promo)

	items := make([]order.ItemInput, 0, len(c.Lines))
	for _, line := range c.Lines {
		product, ok := cat.Lookup(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, order.ItemInput{
			ProductID:   product.ID,
			ProductName: product.Name,
			Category:    product.Category,
			UnitPrice:   product.UnitPriceMoney(),
			Quantity:    line.Quantity,
		})
	}

	o, err := order.NewOrder(sessionID, items, quote)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	// Reset only after the order is durable
	c.Clear()
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	if err := s.applied.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// Order returns one placed order by id
func (s *Service) Order(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Orders returns the session's placed orders, most recent first
func (s *Service) Orders(ctx context.Context, sessionID string) ([]OrderResponse, error) {
	found, err := s.orders.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderResponse, 0, len(found))
	for idx := range found {
		out = append(out, *toOrderResponse(&found[idx]))
	}
	return out, nil
}

// mutate loads the cart, applies one domain operation, and writes the
// result back before building the response
func (s *Service) mutate(ctx context.Context, sessionID string, op func(*cart.Cart) error) (*CartResponse, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(c); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(ctx, c)
}

func (s *Service) respond(ctx context.Context, c *cart.Cart) (*CartResponse, error) {
	cat, err := s.snapshotCatalog(ctx, c)
	if err != nil {
		return nil, err
	}
	promo, err := s.appliedPromotion(ctx, c.SessionID)
	if err != nil {
		return nil, err
	}
	quote := pricing.Compute(c.Lines, cat, s.fees, promo)
	return toCartResponse(c, cat, quote), nil
}

// snapshotCatalog fetches every product the cart references. Missing
// products are left out of the snapshot; pricing treats their lines as
// zero rather than failing the whole cart.
func (s *Service) snapshotCatalog(ctx context.Context, c *cart.Cart) (pricing.MapCatalog, error) {
	snapshot := make(pricing.MapCatalog, len(c.Lines))
	for _, line := range c.Lines {
		product, err := s.products.Lookup(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		snapshot[line.ProductID] = product
	}
	return snapshot, nil
}

// appliedPromotion resolves the session's stored code. A stored code
// that no longer resolves is dropped silently so the cart keeps
// pricing without it.
func (s *Service) appliedPromotion(ctx context.Context, sessionID string) (*promotion.Promotion, error) {
	code, ok, err := s.applied.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	promo, err := s.resolver.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidPromoCode) {
			_ = s.applied.Clear(ctx, sessionID)
			return nil, nil
		}
		return nil, err
	}
	return promo, nil
}
