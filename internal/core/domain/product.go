// internal/core/domain/product.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductType identifies a concrete product variant. The set is closed: a
// product keeps its tag for its whole lifetime.
type ProductType string

// Variant tags. These double as the persisted discriminator values.
const (
	TypeElectronics ProductType = "Electronics"
	TypeGrocery     ProductType = "Grocery"
	TypeClothing    ProductType = "Clothing"
)

// ParseProductType maps an operator-supplied token to a variant tag.
// Matching is case-insensitive; the second return reports whether the token
// named a known variant.
func ParseProductType(token string) (ProductType, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "electronics":
		return TypeElectronics, true
	case "grocery":
		return TypeGrocery, true
	case "clothing":
		return TypeClothing, true
	}
	return "", false
}

// Product is the capability shared by every variant. Stock moves only
// through Restock and Sell, so the quantity can never go negative.
type Product interface {
	ID() string
	Name() string
	Price() decimal.Decimal
	Quantity() int
	Type() ProductType

	Restock(amount int) error
	Sell(quantity int) error
	TotalValue() decimal.Decimal
	Describe() string
	Record() Record
}

// base holds the fields and stock behavior every variant shares.
type base struct {
	id       string
	name     string
	price    decimal.Decimal
	quantity int
}

func newBase(id, name string, price decimal.Decimal, quantity int) (base, error) {
	if id == "" {
		return base{}, &InvalidProductDataError{Reason: "missing product_id"}
	}
	if name == "" {
		return base{}, &InvalidProductDataError{ProductID: id, Reason: "missing name"}
	}
	if price.IsNegative() {
		return base{}, &InvalidProductDataError{ProductID: id, Reason: "price cannot be negative"}
	}
	if quantity < 0 {
		return base{}, &InvalidProductDataError{ProductID: id, Reason: "quantity_in_stock cannot be negative"}
	}
	return base{id: id, name: name, price: price, quantity: quantity}, nil
}

func (b *base) ID() string             { return b.id }
func (b *base) Name() string           { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) Quantity() int          { return b.quantity }

// Restock increases the stock by amount. Amount must be positive; there is
// no upper bound.
func (b *base) Restock(amount int) error {
	if amount <= 0 {
		return &InvalidOperationError{
			Op:     "restock",
			Reason: fmt.Sprintf("amount must be positive, got %d", amount),
		}
	}
	b.quantity += amount
	return nil
}

// Sell decreases the stock by quantity, bounded by availability. A failed
// sell leaves the stock unchanged.
func (b *base) Sell(quantity int) error {
	if quantity <= 0 {
		return &InvalidOperationError{
			Op:     "sell",
			Reason: fmt.Sprintf("quantity must be positive, got %d", quantity),
		}
	}
	if quantity > b.quantity {
		return &InsufficientStockError{
			ProductID: b.id,
			Requested: quantity,
			Available: b.quantity,
		}
	}
	b.quantity -= quantity
	return nil
}

// TotalValue returns price * quantity_in_stock.
func (b *base) TotalValue() decimal.Decimal {
	return b.price.Mul(decimal.NewFromInt(int64(b.quantity)))
}

func (b *base) describe() string {
	return fmt.Sprintf("ID: %s | Name: %s | Price: %s | Stock: %d",
		b.id, b.name, b.price.StringFixed(2), b.quantity)
}

func (b *base) record(t ProductType) Record {
	id, name, qty := b.id, b.name, b.quantity
	price := b.price
	return Record{
		Type:            t,
		ProductID:       &id,
		Name:            &name,
		Price:           &price,
		QuantityInStock: &qty,
	}
}

// Electronics is a product with a warranty period and a brand.
type Electronics struct {
	base
	warrantyYears int
	brand         string
}

// NewElectronics creates a fully-initialized Electronics product.
func NewElectronics(id, name string, price decimal.Decimal, quantity, warrantyYears int, brand string) (*Electronics, error) {
	b, err := newBase(id, name, price, quantity)
	if err != nil {
		return nil, err
	}
	if warrantyYears < 0 {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "warranty_years cannot be negative"}
	}
	if brand == "" {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing brand"}
	}
	return &Electronics{base: b, warrantyYears: warrantyYears, brand: brand}, nil
}

func (e *Electronics) Type() ProductType { return TypeElectronics }
func (e *Electronics) WarrantyYears() int { return e.warrantyYears }
func (e *Electronics) Brand() string      { return e.brand }

func (e *Electronics) Describe() string {
	return fmt.Sprintf("%s | Warranty: %d years | Brand: %s",
		e.describe(), e.warrantyYears, e.brand)
}

func (e *Electronics) Record() Record {
	rec := e.record(TypeElectronics)
	warranty, brand := e.warrantyYears, e.brand
	rec.WarrantyYears = &warranty
	rec.Brand = &brand
	return rec
}

// Grocery is a product with a calendar expiry date.
type Grocery struct {
	base
	expiryDate time.Time
}

// NewGrocery creates a fully-initialized Grocery product. The expiry date is
// normalized to a calendar date (midnight UTC).
func NewGrocery(id, name string, price decimal.Decimal, quantity int, expiryDate time.Time) (*Grocery, error) {
	b, err := newBase(id, name, price, quantity)
	if err != nil {
		return nil, err
	}
	if expiryDate.IsZero() {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing expiry_date"}
	}
	y, m, d := expiryDate.Date()
	return &Grocery{base: b, expiryDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}, nil
}

func (g *Grocery) Type() ProductType     { return TypeGrocery }
func (g *Grocery) ExpiryDate() time.Time { return g.expiryDate }

// IsExpired reports whether the expiry date falls strictly before now's
// calendar date. Evaluated per call, never cached.
func (g *Grocery) IsExpired(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return g.expiryDate.Before(today)
}

func (g *Grocery) Describe() string {
	expired := "no"
	if g.IsExpired(time.Now()) {
		expired = "yes"
	}
	return fmt.Sprintf("%s | Expiry: %s | Expired: %s",
		g.describe(), g.expiryDate.Format(ExpiryDateLayout), expired)
}

func (g *Grocery) Record() Record {
	rec := g.record(TypeGrocery)
	expiry := g.expiryDate.Format(ExpiryDateLayout)
	rec.ExpiryDate = &expiry
	return rec
}

// Clothing is a product with a size token and a material.
type Clothing struct {
	base
	size     string
	material string
}

// NewClothing creates a fully-initialized Clothing product.
func NewClothing(id, name string, price decimal.Decimal, quantity int, size, material string) (*Clothing, error) {
	b, err := newBase(id, name, price, quantity)
	if err != nil {
		return nil, err
	}
	if size == "" {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing size"}
	}
	if material == "" {
		return nil, &InvalidProductDataError{ProductID: id, Reason: "missing material"}
	}
	return &Clothing{base: b, size: size, material: material}, nil
}

func (c *Clothing) Type() ProductType { return TypeClothing }
func (c *Clothing) Size() string      { return c.size }
func (c *Clothing) Material() string  { return c.material }

func (c *Clothing) Describe() string {
	return fmt.Sprintf("%s | Size: %s | Material: %s",
		c.describe(), c.size, c.material)
}

func (c *Clothing) Record() Record {
	rec := c.record(TypeClothing)
	size, material := c.size, c.material
	rec.Size = &size
	rec.Material = &material
	return rec
}
