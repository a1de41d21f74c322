// internal/adapters/file/json_repository.go
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/odalton/storekeep/internal/core/domain"
	"github.com/odalton/storekeep/internal/core/ports"
)

// Repository persists the inventory as a single JSON array of product
// records on the local filesystem.
type Repository struct {
	path   string
	logger *slog.Logger
}

// Statically assert that *Repository implements the InventoryRepository port.
var _ ports.InventoryRepository = (*Repository)(nil)

// NewRepository creates a repository writing to the given file path.
func NewRepository(path string, logger *slog.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger.With(slog.String("adapter", "file"), slog.String("path", path)),
	}
}

// Path returns the file path this repository reads and writes.
func (r *Repository) Path() string { return r.path }

// SaveAll serializes every product to its record and writes the ordered
// sequence as one JSON document. The write goes through a temp file and a
// rename so a failed save never truncates the previous document. An empty
// product slice writes an empty array.
func (r *Repository) SaveAll(ctx context.Context, products []domain.Product) error {
	records := make([]domain.Record, 0, len(products))
	for _, p := range products {
		records = append(records, p.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	data = append(data, '\n')

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace inventory file: %w", err)
	}

	r.logger.InfoContext(ctx, "inventory saved", slog.Int("products", len(products)))
	return nil
}

// LoadAll reads the document and reconstructs the typed products in order.
// Loading is all-or-nothing: the first malformed record, unknown
// discriminator or duplicate ID aborts the whole load, so a partially
// corrupt document can never pass as a valid inventory.
func (r *Repository) LoadAll(ctx context.Context) ([]domain.Product, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()

	var records []domain.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(r.path),
			&domain.InvalidProductDataError{Reason: fmt.Sprintf("malformed inventory document: %v", err)})
	}

	products := make([]domain.Product, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		p, err := domain.ProductFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[p.ID()]; dup {
			return nil, fmt.Errorf("record %d: %w", i,
				&domain.InvalidProductDataError{ProductID: p.ID(), Reason: "duplicate product_id in document"})
		}
		seen[p.ID()] = struct{}{}
		products = append(products, p)
	}

	r.logger.InfoContext(ctx, "inventory loaded", slog.Int("products", len(products)))
	return products, nil
}
