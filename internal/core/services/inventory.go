// internal/core/services/inventory.go
package services

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odalton/storekeep/internal/core/domain"
)

// Inventory manages the collection of products for a single operator. It
// owns its products exclusively and is the only mutation path for them.
// Iteration order is insertion order, so listings are deterministic. There
// is no internal locking: one operator, one goroutine.
type Inventory struct {
	products map[string]domain.Product
	order    []string
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithClock overrides the wall clock used by the expiry sweep.
func WithClock(now func() time.Time) Option {
	return func(inv *Inventory) { inv.now = now }
}

// NewInventory creates an empty inventory.
func NewInventory(logger *slog.Logger, opts ...Option) *Inventory {
	inv := &Inventory{
		products: make(map[string]domain.Product),
		logger:   logger.With(slog.String("service", "inventory")),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// NewInventoryFrom creates an inventory pre-populated with products, in the
// given order. It fails with *domain.DuplicateProductIDError if the slice
// carries two products with the same ID.
func NewInventoryFrom(logger *slog.Logger, products []domain.Product, opts ...Option) (*Inventory, error) {
	inv := NewInventory(logger, opts...)
	for _, p := range products {
		if err := inv.AddProduct(p); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// AddProduct inserts a product, preserving insertion order. Duplicate IDs
// are rejected with *domain.DuplicateProductIDError rather than silently
// overwritten.
func (inv *Inventory) AddProduct(p domain.Product) error {
	if _, exists := inv.products[p.ID()]; exists {
		return &domain.DuplicateProductIDError{ProductID: p.ID()}
	}
	inv.products[p.ID()] = p
	inv.order = append(inv.order, p.ID())

	inv.logger.Debug("product added",
		slog.String("product_id", p.ID()),
		slog.String("type", string(p.Type())))
	return nil
}

// RemoveProduct deletes a product and returns the removed record so callers
// can log or confirm it. Absent IDs fail with *domain.ProductNotFoundError.
func (inv *Inventory) RemoveProduct(productID string) (domain.Product, error) {
	p, exists := inv.products[productID]
	if !exists {
		return nil, &domain.ProductNotFoundError{ProductID: productID}
	}
	inv.delete(productID)

	inv.logger.Debug("product removed", slog.String("product_id", productID))
	return p, nil
}

// SearchByName returns the products whose name contains the given string,
// case-insensitively, in store order. An empty result is not an error.
func (inv *Inventory) SearchByName(name string) []domain.Product {
	needle := strings.ToLower(name)
	var matches []domain.Product
	for _, p := range inv.iterate() {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

// SearchByType returns the products whose variant tag equals t, in store
// order. An unrecognized tag yields an empty result, not an error: this is
// a query, not a type cast.
func (inv *Inventory) SearchByType(t domain.ProductType) []domain.Product {
	var matches []domain.Product
	for _, p := range inv.iterate() {
		if p.Type() == t {
			matches = append(matches, p)
		}
	}
	return matches
}

// ListAll returns every product in store order.
func (inv *Inventory) ListAll() []domain.Product {
	return inv.iterate()
}

// Len returns the number of products held.
func (inv *Inventory) Len() int {
	return len(inv.products)
}

// SellProduct resolves the product and delegates to its Sell. Stock errors
// propagate unchanged.
func (inv *Inventory) SellProduct(productID string, quantity int) error {
	p, exists := inv.products[productID]
	if !exists {
		return &domain.ProductNotFoundError{ProductID: productID}
	}
	if err := p.Sell(quantity); err != nil {
		return err
	}

	inv.logger.Info("product sold",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("remaining", p.Quantity()))
	return nil
}

// RestockProduct resolves the product and delegates to its Restock.
func (inv *Inventory) RestockProduct(productID string, quantity int) error {
	p, exists := inv.products[productID]
	if !exists {
		return &domain.ProductNotFoundError{ProductID: productID}
	}
	if err := p.Restock(quantity); err != nil {
		return err
	}

	inv.logger.Info("product restocked",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("in_stock", p.Quantity()))
	return nil
}

// TotalValue sums price * quantity over every held product. An empty store
// yields zero.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// RemoveExpired sweeps out every Grocery product whose expiry date falls
// before the current date and returns the removed products in store order.
// Other variants are never inspected. Expired items stay in the store until
// this sweep is called explicitly.
func (inv *Inventory) RemoveExpired() []domain.Product {
	now := inv.now()
	var expired []domain.Product
	for _, p := range inv.iterate() {
		g, ok := p.(*domain.Grocery)
		if !ok {
			continue
		}
		if g.IsExpired(now) {
			expired = append(expired, g)
		}
	}
	for _, p := range expired {
		inv.delete(p.ID())
		inv.logger.Info("expired product removed",
			slog.String("product_id", p.ID()),
			slog.String("expiry_date", p.(*domain.Grocery).ExpiryDate().Format(domain.ExpiryDateLayout)))
	}
	return expired
}

// iterate returns the products in insertion order.
func (inv *Inventory) iterate() []domain.Product {
	out := make([]domain.Product, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.products[id])
	}
	return out
}

func (inv *Inventory) delete(productID string) {
	delete(inv.products, productID)
	for i, id := range inv.order {
		if id == productID {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
}
