package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		p, err := NewProduct("wireless-headphones", "Wireless Headphones", "audio", valueobject.NewMoneyUSDFromFloat(79.99))
		require.NoError(t, err)
		assert.Equal(t, "wireless-headphones", p.ID)
		assert.Equal(t, ProductStatusActive, p.Status)
		assert.True(t, p.UnitPrice.Equal(decimal.NewFromFloat(79.99)))
		assert.Nil(t, p.OriginalPrice)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := NewProduct("", "Name", "cat", valueobject.ZeroUSD())
		assert.Error(t, err)
	})

	t.Run("rejects uppercase id", func(t *testing.T) {
		_, err := NewProduct("Wireless", "Name", "cat", valueobject.ZeroUSD())
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("id-1", "", "cat", valueobject.ZeroUSD())
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("id-1", "Name", "cat", valueobject.NewMoneyUSDFromFloat(-1))
		assert.Error(t, err)
	})
}

func TestProduct_SetOriginalPrice(t *testing.T) {
	p, err := NewProduct("gaming-mouse", "Gaming Mouse", "accessories", valueobject.NewMoneyUSDFromFloat(49.99))
	require.NoError(t, err)

	t.Run("accepts price above unit price", func(t *testing.T) {
		require.NoError(t, p.SetOriginalPrice(valueobject.NewMoneyUSDFromFloat(69.99)))
		require.NotNil(t, p.OriginalPrice)
		assert.True(t, p.OriginalPrice.Equal(decimal.NewFromFloat(69.99)))
	})

	t.Run("rejects price below unit price", func(t *testing.T) {
		assert.Error(t, p.SetOriginalPrice(valueobject.NewMoneyUSDFromFloat(10)))
	})
}

func TestProduct_Savings(t *testing.T) {
	t.Run("zero without original price", func(t *testing.T) {
		p, _ := NewProduct("item-a", "Item A", "cat", valueobject.NewMoneyUSDFromFloat(20))
		assert.True(t, p.Savings().IsZero())
	})

	t.Run("difference when original price is higher", func(t *testing.T) {
		p, _ := NewProduct("item-b", "Item B", "cat", valueobject.NewMoneyUSDFromFloat(20))
		require.NoError(t, p.SetOriginalPrice(valueobject.NewMoneyUSDFromFloat(25)))
		assert.Equal(t, "5.00", p.Savings().StringFixed(2))
	})

	t.Run("zero when original equals unit price", func(t *testing.T) {
		p, _ := NewProduct("item-c", "Item C", "cat", valueobject.NewMoneyUSDFromFloat(20))
		require.NoError(t, p.SetOriginalPrice(valueobject.NewMoneyUSDFromFloat(20)))
		assert.True(t, p.Savings().IsZero())
	})
}
