package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/pricing"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/session"
)

type fakeCartRepo struct {
	carts map[string]*cart.Cart
	saves int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*cart.Cart)}
}

func (r *fakeCartRepo) Load(_ context.Context, sessionID string) (*cart.Cart, error) {
	if c, ok := r.carts[sessionID]; ok {
		return c, nil
	}
	return cart.New(sessionID)
}

func (r *fakeCartRepo) Save(_ context.Context, c *cart.Cart) error {
	r.carts[c.SessionID] = c
	r.saves++
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.carts, sessionID)
	return nil
}

type fakeProductRepo struct {
	products map[string]*catalog.Product
}

func (r *fakeProductRepo) Lookup(_ context.Context, id string) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) All(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindByCategory(_ context.Context, category string) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

type fakeOrderRepo struct {
	orders []*order.Order
}

func (r *fakeOrderRepo) Save(_ context.Context, o *order.Order) error {
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindBySession(_ context.Context, sessionID string) ([]order.Order, error) {
	out := make([]order.Order, 0)
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakePromoRepo struct {
	promos map[string]*promotion.Promotion
}

func (r *fakePromoRepo) FindByCode(_ context.Context, code string) (*promotion.Promotion, error) {
	if p, ok := r.promos[code]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePromoRepo) All(_ context.Context) ([]promotion.Promotion, error) {
	out := make([]promotion.Promotion, 0, len(r.promos))
	for _, p := range r.promos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePromoRepo) Save(_ context.Context, promo *promotion.Promotion) error {
	r.promos[promo.Code] = promo
	return nil
}

func createTestProduct(t *testing.T, id, name string, price float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, name, "food", valueobject.NewMoneyUSDFromFloat(price))
	require.NoError(t, err)
	return p
}

func createTestPromotion(t *testing.T, code string, kind promotion.Kind, value float64) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(code, kind, decimal.NewFromFloat(value))
	require.NoError(t, err)
	return p
}

type testEnv struct {
	service *Service
	carts   *fakeCartRepo
	orders  *fakeOrderRepo
	applied session.PromotionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := &fakeProductRepo{products: map[string]*catalog.Product{
		"burger": createTestProduct(t, "burger", "Classic Burger", 20.00),
		"fries":  createTestProduct(t, "fries", "Fries", 5.00),
		"soda":   createTestProduct(t, "soda", "Soda", 2.50),
	}}

	promos := &fakePromoRepo{promos: map[string]*promotion.Promotion{
		"SAVE10":  createTestPromotion(t, "SAVE10", promotion.KindPercent, 10),
		"SAVE20":  createTestPromotion(t, "SAVE20", promotion.KindPercent, 20),
		"FLAT5":   createTestPromotion(t, "FLAT5", promotion.KindFixed, 5),
		"FREEDEL": createTestPromotion(t, "FREEDEL", promotion.KindFreeDelivery, 0),
	}}

	carts := newFakeCartRepo()
	orders := &fakeOrderRepo{}
	applied := session.NewInMemoryPromotionStore(time.Hour)
	t.Cleanup(func() { applied.Close() })

	fees := pricing.Config{
		DeliveryFee:           valueobject.NewMoneyUSDFromFloat(2.99),
		FreeDeliveryThreshold: valueobject.NewMoneyUSDFromFloat(30),
	}

	return &testEnv{
		service: NewService(carts, products, orders, promotion.NewResolver(promos), applied, fees),
		carts:   carts,
		orders:  orders,
		applied: applied,
	}
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line and persists it", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.service.AddItem(ctx, "s1", "burger", 1)
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "burger", resp.Items[0].ProductID)
		assert.Equal(t, 1, resp.Items[0].Quantity)
		assert.Equal(t, "20.00", resp.Items[0].UnitPrice)

		stored := env.carts.carts["s1"]
		require.NotNil(t, stored)
		assert.Equal(t, 1, stored.ItemCount())
	})

	t.Run("merges quantity into an existing line", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.AddItem(ctx, "s1", "burger", 1)
		require.NoError(t, err)
		resp, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)

		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
		assert.Equal(t, 3, resp.ItemCount)
	})

	t.Run("rejects a product missing from the catalog", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.AddItem(ctx, "s1", "ghost", 1)
		assert.ErrorIs(t, err, shared.ErrProductNotFound)
		assert.Zero(t, env.carts.saves)
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.AddItem(ctx, "s1", "burger", 0)
		assert.ErrorIs(t, err, shared.ErrInvalidQuantity)
	})
}

func TestService_QuantityChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("set quantity to zero removes the line", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)

		resp, err := env.service.SetQuantity(ctx, "s1", "burger", 0)
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})

	t.Run("decrement from one removes the line", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "fries", 1)
		require.NoError(t, err)

		resp, err := env.service.Decrement(ctx, "s1", "fries")
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})

	t.Run("increment raises quantity by one", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "fries", 1)
		require.NoError(t, err)

		resp, err := env.service.Increment(ctx, "s1", "fries")
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Items[0].Quantity)
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 1)
		require.NoError(t, err)

		resp, err := env.service.RemoveItem(ctx, "s1", "ghost")
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
	})
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("charges delivery below the threshold", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.service.AddItem(ctx, "s1", "burger", 1)
		require.NoError(t, err)
		assert.Equal(t, "20.00", resp.Summary.Subtotal)
		assert.Equal(t, "2.99", resp.Summary.DeliveryFee)
		assert.Equal(t, "22.99", resp.Summary.Total)
		assert.False(t, resp.Summary.FreeDelivery)
	})

	t.Run("waives delivery at the threshold", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)
		assert.Equal(t, "40.00", resp.Summary.Subtotal)
		assert.Equal(t, "0.00", resp.Summary.DeliveryFee)
		assert.Equal(t, "40.00", resp.Summary.Total)
		assert.True(t, resp.Summary.FreeDelivery)
	})

	t.Run("empty cart prices to zero with no delivery fee", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.service.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "0.00", resp.Summary.Subtotal)
		assert.Equal(t, "2.99", resp.Summary.DeliveryFee)
	})
}

func TestService_ApplyPromotion(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and applies a percentage code", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)

		resp, err := env.service.ApplyPromotion(ctx, "s1", "  save20 ")
		require.NoError(t, err)
		assert.Equal(t, "SAVE20", resp.Summary.PromoCode)
		assert.Equal(t, "APPLIED", resp.Summary.PromoStatus)
		assert.Equal(t, "8.00", resp.Summary.Discount)
		assert.Equal(t, "32.00", resp.Summary.Total)
	})

	t.Run("invalid code keeps the prior applied code", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)
		_, err = env.service.ApplyPromotion(ctx, "s1", "SAVE10")
		require.NoError(t, err)

		_, err = env.service.ApplyPromotion(ctx, "s1", "BOGUS")
		assert.ErrorIs(t, err, shared.ErrInvalidPromoCode)

		resp, err := env.service.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", resp.Summary.PromoCode)
	})

	t.Run("a new valid code replaces the prior one", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)
		_, err = env.service.ApplyPromotion(ctx, "s1", "SAVE10")
		require.NoError(t, err)

		resp, err := env.service.ApplyPromotion(ctx, "s1", "FLAT5")
		require.NoError(t, err)
		assert.Equal(t, "FLAT5", resp.Summary.PromoCode)
		assert.Equal(t, "5.00", resp.Summary.Discount)
	})

	t.Run("fixed discount never drives the total negative", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "soda", 1)
		require.NoError(t, err)

		resp, err := env.service.ApplyPromotion(ctx, "s1", "FLAT5")
		require.NoError(t, err)
		assert.Equal(t, "2.50", resp.Summary.Discount)
		assert.Equal(t, "2.99", resp.Summary.Total)
	})

	t.Run("free delivery code waives the fee below the threshold", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 1)
		require.NoError(t, err)

		resp, err := env.service.ApplyPromotion(ctx, "s1", "FREEDEL")
		require.NoError(t, err)
		assert.Equal(t, "0.00", resp.Summary.DeliveryFee)
		assert.Equal(t, "20.00", resp.Summary.Total)
	})

	t.Run("remove promotion restores undiscounted pricing", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)
		_, err = env.service.ApplyPromotion(ctx, "s1", "SAVE20")
		require.NoError(t, err)

		resp, err := env.service.RemovePromotion(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, resp.Summary.PromoCode)
		assert.Equal(t, "NONE", resp.Summary.PromoStatus)
		assert.Equal(t, "40.00", resp.Summary.Total)
	})
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.service.AddItem(ctx, "s1", "burger", 2)
	require.NoError(t, err)
	_, err = env.service.ApplyPromotion(ctx, "s1", "SAVE10")
	require.NoError(t, err)

	resp, err := env.service.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Empty(t, resp.Summary.PromoCode)
	assert.Equal(t, "0.00", resp.Summary.Subtotal)
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty cart", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.Checkout(ctx, "s1")
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
		assert.Empty(t, env.orders.orders)
	})

	t.Run("freezes the quote and resets the session", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 2)
		require.NoError(t, err)
		_, err = env.service.ApplyPromotion(ctx, "s1", "SAVE20")
		require.NoError(t, err)

		resp, err := env.service.Checkout(ctx, "s1")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.OrderNumber)
		assert.Equal(t, "40.00", resp.Subtotal)
		assert.Equal(t, "8.00", resp.Discount)
		assert.Equal(t, "32.00", resp.Total)
		assert.Equal(t, "SAVE20", resp.PromoCode)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Classic Burger", resp.Items[0].ProductName)

		require.Len(t, env.orders.orders, 1)

		after, err := env.service.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, after.Items)
		assert.Empty(t, after.Summary.PromoCode)

		_, applied, err := env.applied.Get(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("independent sessions keep independent carts", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.AddItem(ctx, "s1", "burger", 1)
		require.NoError(t, err)
		_, err = env.service.AddItem(ctx, "s2", "fries", 3)
		require.NoError(t, err)

		_, err = env.service.Checkout(ctx, "s1")
		require.NoError(t, err)

		other, err := env.service.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, 3, other.ItemCount)
	})
}

func TestService_StaleCartLines(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	c, err := cart.New("s1")
	require.NoError(t, err)
	require.NoError(t, c.AddItem("burger", 1))
	require.NoError(t, c.AddItem("discontinued", 2))
	require.NoError(t, env.carts.Save(ctx, c))

	resp, err := env.service.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "burger", resp.Items[0].ProductID)
	assert.Equal(t, "20.00", resp.Summary.Subtotal)
}
