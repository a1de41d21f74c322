// internal/core/services/inventory_test.go
package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odalton/storekeep/internal/core/domain"
	"github.com/odalton/storekeep/internal/core/services"
	"github.com/odalton/storekeep/test/helpers"
)

func TestInventory_AddProduct(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())

	require.NoError(t, inv.AddProduct(helpers.NewTestElectronics(t, "E1", 5)))
	require.Equal(t, 1, inv.Len())

	t.Run("duplicate_id_is_rejected", func(t *testing.T) {
		err := inv.AddProduct(helpers.NewTestClothing(t, "E1", 3))

		var dupErr *domain.DuplicateProductIDError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "E1", dupErr.ProductID)
		assert.Equal(t, 1, inv.Len(), "failed add must leave the store unchanged")
	})
}

func TestInventory_RemoveProduct(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())
	require.NoError(t, inv.AddProduct(helpers.NewTestElectronics(t, "E1", 5)))

	removed, err := inv.RemoveProduct("E1")
	require.NoError(t, err)
	assert.Equal(t, "E1", removed.ID())
	assert.Equal(t, 0, inv.Len())

	_, err = inv.RemoveProduct("E1")
	var nfErr *domain.ProductNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "E1", nfErr.ProductID)
}

func TestInventory_ListAll_PreservesInsertionOrder(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())
	for _, id := range []string{"C3", "A1", "B2"} {
		require.NoError(t, inv.AddProduct(helpers.NewTestClothing(t, id, 1)))
	}

	var ids []string
	for _, p := range inv.ListAll() {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"C3", "A1", "B2"}, ids)

	// Removal keeps relative order of the rest.
	_, err := inv.RemoveProduct("A1")
	require.NoError(t, err)
	ids = ids[:0]
	for _, p := range inv.ListAll() {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"C3", "B2"}, ids)
}

func TestInventory_SearchByName(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())

	milk, err := domain.NewGrocery("G1", "Whole Milk", decimal.NewFromFloat(1.49), 5, time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	oat, err := domain.NewGrocery("G2", "Oat MILK Barista", decimal.NewFromFloat(2.19), 5, time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, inv.AddProduct(milk))
	require.NoError(t, inv.AddProduct(oat))
	require.NoError(t, inv.AddProduct(helpers.NewTestClothing(t, "C1", 2)))

	matches := inv.SearchByName("milk")
	require.Len(t, matches, 2)
	assert.Equal(t, "G1", matches[0].ID())
	assert.Equal(t, "G2", matches[1].ID())

	assert.Empty(t, inv.SearchByName("caviar"))
}

func TestInventory_SearchByType(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())
	require.NoError(t, inv.AddProduct(helpers.NewTestElectronics(t, "E1", 1)))
	require.NoError(t, inv.AddProduct(helpers.NewTestClothing(t, "C1", 1)))
	require.NoError(t, inv.AddProduct(helpers.NewTestElectronics(t, "E2", 1)))

	matches := inv.SearchByType(domain.TypeElectronics)
	require.Len(t, matches, 2)
	assert.Equal(t, "E1", matches[0].ID())
	assert.Equal(t, "E2", matches[1].ID())

	// Unrecognized tags are a query miss, not an error.
	assert.Empty(t, inv.SearchByType(domain.ProductType("Furniture")))
}

func TestInventory_SellAndRestock(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())
	require.NoError(t, inv.AddProduct(helpers.NewTestElectronics(t, "E1", 5)))

	require.NoError(t, inv.SellProduct("E1", 3))
	require.NoError(t, inv.RestockProduct("E1", 10))
	assert.Equal(t, 12, inv.ListAll()[0].Quantity())

	t.Run("stock_errors_propagate_unchanged", func(t *testing.T) {
		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, inv.SellProduct("E1", 13), &stockErr)
		assert.Equal(t, 12, inv.ListAll()[0].Quantity())

		var opErr *domain.InvalidOperationError
		require.ErrorAs(t, inv.SellProduct("E1", 0), &opErr)
		require.ErrorAs(t, inv.RestockProduct("E1", -1), &opErr)
	})

	t.Run("unknown_id", func(t *testing.T) {
		var nfErr *domain.ProductNotFoundError
		require.ErrorAs(t, inv.SellProduct("nope", 1), &nfErr)
		require.ErrorAs(t, inv.RestockProduct("nope", 1), &nfErr)
	})
}

func TestInventory_TotalValue(t *testing.T) {
	inv := services.NewInventory(helpers.TestLogger())
	assert.True(t, inv.TotalValue().IsZero(), "empty store must value to zero")

	a, err := domain.NewClothing("C1", "Jacket", decimal.NewFromFloat(59.90), 2, "M", "denim")
	require.NoError(t, err)
	b, err := domain.NewGrocery("G1", "Milk", decimal.NewFromFloat(1.50), 10, time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, inv.AddProduct(a))
	require.NoError(t, inv.AddProduct(b))

	// 2*59.90 + 10*1.50
	assert.True(t, inv.TotalValue().Equal(decimal.NewFromFloat(134.80)),
		"got %s", inv.TotalValue())
}

func TestInventory_RemoveExpired(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	inv := services.NewInventory(helpers.TestLogger(),
		services.WithClock(func() time.Time { return now }))

	expired := helpers.NewTestGrocery(t, "G1", 10, now.AddDate(0, 0, -1))
	fresh := helpers.NewTestGrocery(t, "G2", 3, now.AddDate(0, 0, 3))
	electronics := helpers.NewTestElectronics(t, "E1", 5)
	require.NoError(t, inv.AddProduct(expired))
	require.NoError(t, inv.AddProduct(electronics))
	require.NoError(t, inv.AddProduct(fresh))

	removed := inv.RemoveExpired()

	require.Len(t, removed, 1)
	assert.Equal(t, "G1", removed[0].ID())

	var ids []string
	for _, p := range inv.ListAll() {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"E1", "G2"}, ids)

	t.Run("second_sweep_finds_nothing", func(t *testing.T) {
		assert.Empty(t, inv.RemoveExpired())
		assert.Equal(t, 2, inv.Len())
	})
}

func TestNewInventoryFrom(t *testing.T) {
	products := []domain.Product{
		helpers.NewTestElectronics(t, "E1", 1),
		helpers.NewTestClothing(t, "C1", 1),
	}

	inv, err := services.NewInventoryFrom(helpers.TestLogger(), products)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.Len())

	t.Run("duplicate_in_slice", func(t *testing.T) {
		dup := append(products, helpers.NewTestClothing(t, "E1", 1))
		_, err := services.NewInventoryFrom(helpers.TestLogger(), dup)

		var dupErr *domain.DuplicateProductIDError
		require.ErrorAs(t, err, &dupErr)
	})
}
