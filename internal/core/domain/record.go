// internal/core/domain/record.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpiryDateLayout is the wire format for grocery expiry dates.
const ExpiryDateLayout = "2006-01-02"

// Record is the flat persisted representation of a product. The Type field
// is the discriminator selecting the variant on decode. Required fields use
// pointer types so a missing value is distinguishable from a zero value;
// unknown extra fields in the source document are ignored by the decoder.
type Record struct {
	Type            ProductType      `json:"type"`
	ProductID       *string          `json:"product_id"`
	Name            *string          `json:"name"`
	Price           *decimal.Decimal `json:"price"`
	QuantityInStock *int             `json:"quantity_in_stock"`

	// Electronics
	WarrantyYears *int    `json:"warranty_years,omitempty"`
	Brand         *string `json:"brand,omitempty"`

	// Grocery
	ExpiryDate *string `json:"expiry_date,omitempty"`

	// Clothing
	Size     *string `json:"size,omitempty"`
	Material *string `json:"material,omitempty"`
}

// ProductFromRecord reconstructs the matching variant from a persisted
// record. It is total over raw record data: any missing or out-of-range
// field and any unknown discriminator yields an *InvalidProductDataError
// naming the offending product when its ID is determinable.
func ProductFromRecord(rec Record) (Product, error) {
	var id string
	if rec.ProductID != nil {
		id = *rec.ProductID
	}

	if rec.Type == "" {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing type discriminator"}
	}
	if id == "" {
		return nil, &InvalidProductDataError{Reason: "missing product_id"}
	}
	if rec.Name == nil {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing name"}
	}
	if rec.Price == nil {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing price"}
	}
	if rec.QuantityInStock == nil {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing quantity_in_stock"}
	}

	switch rec.Type {
	case TypeElectronics:
		if rec.WarrantyYears == nil {
			return nil, &InvalidProductDataError{ProductID: id, Reason: "missing warranty_years"}
		}
		if rec.Brand == nil {
			return nil, &InvalidProductDataError{ProductID: id, Reason: "missing brand"}
		}
		return NewElectronics(id, *rec.Name, *rec.Price, *rec.QuantityInStock, *rec.WarrantyYears, *rec.Brand)

	case TypeGrocery:
		if rec.ExpiryDate == nil {
			return nil, &InvalidProductDataError{ProductID: id, Reason: "missing expiry_date"}
		}
		expiry, err := time.Parse(ExpiryDateLayout, *rec.ExpiryDate)
		if err != nil {
			return nil, &InvalidProductDataError{
				ProductID: id,
				Reason:    fmt.Sprintf("malformed expiry_date %q: expected %s", *rec.ExpiryDate, ExpiryDateLayout),
			}
		}
		return NewGrocery(id, *rec.Name, *rec.Price, *rec.QuantityInStock, expiry)

	case TypeClothing:
		if rec.Size == nil {
			return nil, &InvalidProductDataError{ProductID: id, Reason: "missing size"}
		}
		if rec.Material == nil {
			return nil, &InvalidProductDataError{ProductID: id, Reason: "missing material"}
		}
		return NewClothing(id, *rec.Name, *rec.Price, *rec.QuantityInStock, *rec.Size, *rec.Material)

	default:
		return nil, &InvalidProductDataError{
			ProductID: id,
			Reason:    fmt.Sprintf("unknown product type %q", rec.Type),
		}
	}
}
