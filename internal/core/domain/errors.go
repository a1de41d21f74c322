// internal/core/domain/errors.go
package domain

import "fmt"

// InsufficientStockError reports a sell that exceeds the available stock.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// DuplicateProductIDError reports an add with an ID already present in the store.
type DuplicateProductIDError struct {
	ProductID string
}

func (e *DuplicateProductIDError) Error() string {
	return fmt.Sprintf("product with ID %s already exists", e.ProductID)
}

// ProductNotFoundError reports an operation that references an absent ID.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

// InvalidOperationError reports a stock operation with a non-positive amount.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid %s operation: %s", e.Op, e.Reason)
}

// InvalidProductDataError reports malformed, missing or out-of-range product
// data, typically encountered while loading persisted records.
type InvalidProductDataError struct {
	ProductID string
	Reason    string
}

func (e *InvalidProductDataError) Error() string {
	if e.ProductID == "" {
		return fmt.Sprintf("invalid product data: %s", e.Reason)
	}
	return fmt.Sprintf("invalid product data for %s: %s", e.ProductID, e.Reason)
}
