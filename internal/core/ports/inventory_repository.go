// internal/core/ports/inventory_repository.go
package ports

import (
	"context"

	"github.com/odalton/storekeep/internal/core/domain"
)

// InventoryRepository defines the persistence port for the inventory.
// This interface is implemented by the file adapter.
type InventoryRepository interface {
	// SaveAll writes the ordered product sequence as a single structured
	// document, replacing any previous one. An empty slice is valid and
	// produces an empty document.
	SaveAll(ctx context.Context, products []domain.Product) error

	// LoadAll reads the document back into typed products, preserving
	// order. Loading is all-or-nothing: one malformed record fails the
	// whole load with a *domain.InvalidProductDataError in the chain.
	LoadAll(ctx context.Context) ([]domain.Product, error)
}
