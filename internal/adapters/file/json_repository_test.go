// internal/adapters/file/json_repository_test.go
package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odalton/storekeep/internal/adapters/file"
	"github.com/odalton/storekeep/internal/core/domain"
	"github.com/odalton/storekeep/test/helpers"
)

func newTestRepository(t *testing.T) *file.Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	return file.NewRepository(path, helpers.TestLogger())
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	products := []domain.Product{
		helpers.NewTestElectronics(t, "E1", 5),
		helpers.NewTestGrocery(t, "G1", 12, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		helpers.NewTestClothing(t, "C1", 3),
	}

	require.NoError(t, repo.SaveAll(ctx, products))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	for i, p := range products {
		back := loaded[i]
		assert.Equal(t, p.ID(), back.ID())
		assert.Equal(t, p.Name(), back.Name())
		assert.Equal(t, p.Type(), back.Type())
		assert.True(t, p.Price().Equal(back.Price()))
		assert.Equal(t, p.Quantity(), back.Quantity())
		assert.IsType(t, p, back)
	}

	g, ok := loaded[1].(*domain.Grocery)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), g.ExpiryDate())
}

func TestRepository_SaveEmptyStore(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, nil))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	var records []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Empty(t, records)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRepository_LoadIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name     string
		document string
		errorMsg string
	}{
		{
			name: "record_missing_price",
			document: `[
				{"type": "Electronics", "product_id": "E1", "name": "Laptop",
				 "price": "10", "quantity_in_stock": 1, "warranty_years": 1, "brand": "B"},
				{"type": "Clothing", "product_id": "C1", "name": "Jacket",
				 "quantity_in_stock": 1, "size": "M", "material": "wool"}
			]`,
			errorMsg: "missing price",
		},
		{
			name:     "unknown_discriminator",
			document: `[{"type": "Gadget", "product_id": "X1", "name": "X", "price": 1, "quantity_in_stock": 1}]`,
			errorMsg: "unknown product type",
		},
		{
			name: "duplicate_product_id",
			document: `[
				{"type": "Clothing", "product_id": "C1", "name": "A", "price": 1, "quantity_in_stock": 1, "size": "M", "material": "wool"},
				{"type": "Clothing", "product_id": "C1", "name": "B", "price": 1, "quantity_in_stock": 1, "size": "L", "material": "wool"}
			]`,
			errorMsg: "duplicate product_id",
		},
		{
			name:     "not_a_json_array",
			document: `{"type": "Clothing"}`,
			errorMsg: "malformed inventory document",
		},
		{
			name:     "truncated_document",
			document: `[{"type": "Clothing", "product_id":`,
			errorMsg: "malformed inventory document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t)
			require.NoError(t, os.WriteFile(repo.Path(), []byte(tt.document), 0o644))

			loaded, err := repo.LoadAll(context.Background())

			require.Error(t, err)
			assert.Nil(t, loaded, "a malformed record must abort the whole load")
			var dataErr *domain.InvalidProductDataError
			require.ErrorAs(t, err, &dataErr)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestRepository_LoadMissingFile(t *testing.T) {
	repo := file.NewRepository(filepath.Join(t.TempDir(), "absent.json"), helpers.TestLogger())

	_, err := repo.LoadAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepository_SaveReplacesPreviousDocument(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []domain.Product{helpers.NewTestElectronics(t, "E1", 5)}))
	require.NoError(t, repo.SaveAll(ctx, []domain.Product{helpers.NewTestClothing(t, "C1", 2)}))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "C1", loaded[0].ID())

	// No stray temp file left behind.
	_, err = os.Stat(repo.Path() + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
