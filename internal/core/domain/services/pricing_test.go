package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/product"
	"bitebox/internal/core/domain/services"
)

func newCatalogProduct(t *testing.T, name string, price float64) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), name, "", price, "stationery", "Paper Place")
	require.NoError(t, err)

	return p
}

func TestPricingResolverResolve(t *testing.T) {
	resolver := services.NewPricingResolver()

	t.Run("prices each line and captures totals", func(t *testing.T) {
		catalog := []*product.Product{
			newCatalogProduct(t, "pencil", 3),
			newCatalogProduct(t, "eraser", 1),
		}

		lineItems, err := resolver.Resolve([]services.RequestedItem{
			{ProductName: "pencil", Quantity: 2},
			{ProductName: "eraser", Quantity: 1},
		}, catalog)

		require.NoError(t, err)
		require.Len(t, lineItems, 2)
		assert.Equal(t, "pencil", lineItems[0].ProductName())
		assert.Equal(t, 2, lineItems[0].Quantity())
		assert.InDelta(t, 6, lineItems[0].LineTotal(), 0.0001)
		assert.InDelta(t, 1, lineItems[1].LineTotal(), 0.0001)
	})

	t.Run("drops unknown products silently", func(t *testing.T) {
		catalog := []*product.Product{newCatalogProduct(t, "pencil", 3)}

		lineItems, err := resolver.Resolve([]services.RequestedItem{
			{ProductName: "pencil", Quantity: 1},
			{ProductName: "unicorn", Quantity: 5},
		}, catalog)

		require.NoError(t, err)
		require.Len(t, lineItems, 1)
		assert.Equal(t, "pencil", lineItems[0].ProductName())
	})

	t.Run("drops deleted products silently", func(t *testing.T) {
		deleted := newCatalogProduct(t, "pencil", 3)
		require.NoError(t, deleted.MarkDeleted())
		catalog := []*product.Product{deleted, newCatalogProduct(t, "eraser", 1)}

		lineItems, err := resolver.Resolve([]services.RequestedItem{
			{ProductName: "pencil", Quantity: 1},
			{ProductName: "eraser", Quantity: 1},
		}, catalog)

		require.NoError(t, err)
		require.Len(t, lineItems, 1)
		assert.Equal(t, "eraser", lineItems[0].ProductName())
	})

	t.Run("fails when every line drops", func(t *testing.T) {
		catalog := []*product.Product{newCatalogProduct(t, "pencil", 3)}

		_, err := resolver.Resolve([]services.RequestedItem{
			{ProductName: "unicorn", Quantity: 1},
		}, catalog)

		assert.ErrorIs(t, err, services.ErrEmptyOrder)
	})

	t.Run("fails on non-positive quantity", func(t *testing.T) {
		catalog := []*product.Product{newCatalogProduct(t, "pencil", 3)}

		_, err := resolver.Resolve([]services.RequestedItem{
			{ProductName: "pencil", Quantity: 0},
		}, catalog)

		assert.Error(t, err)
	})
}
