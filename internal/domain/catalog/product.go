package catalog

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductKind distinguishes fuel grades from retail goods
type ProductKind string

const (
	ProductKindFuel  ProductKind = "fuel"
	ProductKindGoods ProductKind = "goods"
)

// IsValid checks if the kind is a valid ProductKind
func (k ProductKind) IsValid() bool {
	return k == ProductKindFuel || k == ProductKindGoods
}

// String returns the string representation of ProductKind
func (k ProductKind) String() string {
	return string(k)
}

// Product represents a sellable item: a fuel grade or a retail good.
// Stock quantity is tracked for goods only; fuel volume lives on tanks.
// A product referenced by a transaction is never hard-deleted, only deactivated.
type Product struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	Kind          ProductKind     `gorm:"type:varchar(10);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, kind ProductKind, unitPrice decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRODUCT_KIND", "Product kind must be fuel or goods")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Kind:              kind,
		UnitPrice:         unitPrice,
		StockQuantity:     decimal.Zero,
		Active:            true,
	}, nil
}

// IsFuel returns true for fuel products
func (p *Product) IsFuel() bool {
	return p.Kind == ProductKindFuel
}

// IsGoods returns true for retail goods
func (p *Product) IsGoods() bool {
	return p.Kind == ProductKindGoods
}

// DeductStock decrements the stock quantity by the given amount.
// No lower bound is enforced: the result may go negative and the caller is
// expected to surface that as a monitorable condition rather than reject it.
func (p *Product) DeductStock(quantity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return p.StockQuantity, shared.NewDomainError("INVALID_QUANTITY", "Deduct quantity must be positive")
	}

	p.StockQuantity = p.StockQuantity.Sub(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return p.StockQuantity, nil
}

// AddStock increments the stock quantity by the given amount
func (p *Product) AddStock(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Add quantity must be positive")
	}

	p.StockQuantity = p.StockQuantity.Add(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the product
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// HasNegativeStock returns true when deductions have pushed stock below zero
func (p *Product) HasNegativeStock() bool {
	return p.StockQuantity.IsNegative()
}
