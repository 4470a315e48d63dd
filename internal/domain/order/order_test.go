package order

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/pricing"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func testQuote() pricing.Quote {
	return pricing.Quote{
		Subtotal:    valueobject.NewMoneyUSDFromFloat(45),
		Savings:     valueobject.NewMoneyUSDFromFloat(5),
		DeliveryFee: valueobject.NewMoneyUSDFromFloat(2.99),
		Tax:         valueobject.ZeroUSD(),
		Discount:    valueobject.NewMoneyUSDFromFloat(4.50),
		Total:       valueobject.NewMoneyUSDFromFloat(43.49),
		PromoCode:   "SAVE10",
	}
}

func testItems() []ItemInput {
	return []ItemInput{
		{ProductID: "burger-classic", ProductName: "Classic Burger", Category: "burgers", UnitPrice: valueobject.NewMoneyUSDFromFloat(10), Quantity: 3},
		{ProductID: "fries-large", ProductName: "Large Fries", Category: "sides", UnitPrice: valueobject.NewMoneyUSDFromFloat(5), Quantity: 3},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("freezes quote and items", func(t *testing.T) {
		o, err := NewOrder("session-1", testItems(), testQuote())
		require.NoError(t, err)

		assert.Equal(t, "session-1", o.SessionID)
		assert.Len(t, o.Items, 2)
		assert.Equal(t, 6, o.ItemCount())
		assert.Equal(t, "45", o.Subtotal.String())
		assert.Equal(t, "43.49", o.Total.String())
		assert.Equal(t, "SAVE10", o.PromoCode)
		assert.False(t, o.PlacedAt.IsZero())

		// Line amounts are derived from frozen unit prices
		assert.Equal(t, "30", o.Items[0].Amount.String())
		assert.Equal(t, o.ID, o.Items[0].OrderID)
	})

	t.Run("assigns identity and timestamps", func(t *testing.T) {
		o, err := NewOrder("session-1", testItems(), testQuote())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID)
		assert.False(t, o.CreatedAt.IsZero())
		assert.Equal(t, o.CreatedAt, o.UpdatedAt)
		assert.Equal(t, o.CreatedAt, o.PlacedAt)
	})

	t.Run("generates display order number", func(t *testing.T) {
		o, err := NewOrder("session-1", testItems(), testQuote())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(o.OrderNumber, "ORD-"))
	})

	t.Run("order numbers are unique", func(t *testing.T) {
		a, err := NewOrder("session-1", testItems(), testQuote())
		require.NoError(t, err)
		b, err := NewOrder("session-1", testItems(), testQuote())
		require.NoError(t, err)
		assert.NotEqual(t, a.OrderNumber, b.OrderNumber)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewOrder("session-1", nil, testQuote())
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
	})

	t.Run("rejects empty session", func(t *testing.T) {
		_, err := NewOrder("", testItems(), testQuote())
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		items := []ItemInput{{ProductID: "x", ProductName: "X", UnitPrice: valueobject.ZeroUSD(), Quantity: 0}}
		_, err := NewOrder("session-1", items, testQuote())
		assert.ErrorIs(t, err, shared.ErrInvalidQuantity)
	})

	t.Run("rounds tax and total to currency precision", func(t *testing.T) {
		quote := testQuote()
		quote.Tax = valueobject.NewMoneyUSDFromFloat(1.844)
		quote.Total = valueobject.NewMoneyUSDFromFloat(46.844)
		o, err := NewOrder("session-1", testItems(), quote)
		require.NoError(t, err)
		assert.Equal(t, "1.84", o.Tax.StringFixed(2))
		assert.Equal(t, "46.84", o.Total.StringFixed(2))
	})
}

func TestOrder_TotalMoney(t *testing.T) {
	o, err := NewOrder("session-1", testItems(), testQuote())
	require.NoError(t, err)
	assert.Equal(t, "43.49 USD", o.TotalMoney().String())
}
