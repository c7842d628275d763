package procurement

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus represents the lifecycle state of an import batch
type BatchStatus string

const (
	BatchStatusPending  BatchStatus = "pending"
	BatchStatusReceived BatchStatus = "received"
)

// ProfitStatus indicates whether reconciliation has run for a batch
type ProfitStatus string

const (
	ProfitStatusUncalculated ProfitStatus = "uncalculated"
	ProfitStatusCalculated   ProfitStatus = "calculated"
)

// ImportLineItem is one product delivered within a batch. Fuel lines carry
// the destination tank; retail goods lines leave it unset. Lines are created
// with the batch and never mutated afterward.
type ImportLineItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	BatchID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	TankID    *uuid.UUID      `gorm:"type:uuid"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ImportLineItem) TableName() string {
	return "import_line_items"
}

// ImportBatch is a supplier delivery. It is created pending and moves to
// received exactly once; the transition applies its stock and tank effects.
// Reconciliation later fills in total sales and net profit for the window
// between this batch and the next one.
type ImportBatch struct {
	shared.BaseAggregateRoot
	SupplierName string           `gorm:"type:varchar(255);not null"`
	Reference    string           `gorm:"type:varchar(100)"`
	ShippingCost decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Status       BatchStatus      `gorm:"type:varchar(20);not null;default:'pending';index"`
	ImportDate   time.Time        `gorm:"not null;index"`
	ReceivedAt   *time.Time       `gorm:"index"`
	TotalSales   decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	NetProfit    decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	ProfitStatus ProfitStatus     `gorm:"type:varchar(20);not null;default:'uncalculated'"`
	Items        []ImportLineItem `gorm:"foreignKey:BatchID"`
}

// TableName returns the table name for GORM
func (ImportBatch) TableName() string {
	return "import_batches"
}

// NewImportBatch creates a pending batch from supplier line items.
// Every line must name a positive amount; line totals are derived from
// amount and unit price, never supplied by the caller.
func NewImportBatch(supplierName, reference string, shippingCost decimal.Decimal, items []ImportLineItem) (*ImportBatch, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier name is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_BATCH", "Import batch must contain at least one line item")
	}
	if shippingCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Shipping cost cannot be negative")
	}

	batch := &ImportBatch{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierName:      supplierName,
		Reference:         reference,
		ShippingCost:      shippingCost,
		Status:            BatchStatusPending,
		ImportDate:        time.Now(),
		TotalSales:        decimal.Zero,
		NetProfit:         decimal.Zero,
		ProfitStatus:      ProfitStatusUncalculated,
	}

	for i := range items {
		item := items[i]
		if item.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Line item amount must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Line item unit price cannot be negative")
		}
		item.ID = uuid.New()
		item.BatchID = batch.ID
		item.Total = item.Amount.Mul(item.UnitPrice)
		batch.Items = append(batch.Items, item)
	}

	return batch, nil
}

// IsReceived reports whether the batch has been received
func (b *ImportBatch) IsReceived() bool {
	return b.Status == BatchStatusReceived
}

// LineTotal sums the line item totals, excluding shipping
func (b *ImportBatch) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Total)
	}
	return total
}

// TotalCost is the full cost of the batch: line totals plus shipping
func (b *ImportBatch) TotalCost() decimal.Decimal {
	return b.LineTotal().Add(b.ShippingCost)
}

// MarkReceived transitions the batch to received. Receiving twice is an
// error; the transition is one-way.
func (b *ImportBatch) MarkReceived(at time.Time) error {
	if b.Status == BatchStatusReceived {
		return shared.NewDomainError("ALREADY_RECEIVED", "Import batch has already been received")
	}
	b.Status = BatchStatusReceived
	b.ReceivedAt = &at
	b.IncrementVersion()
	return nil
}

// RecordProfit stores the reconciliation result for this batch.
// Recalculating overwrites the previous figures.
func (b *ImportBatch) RecordProfit(totalSales, netProfit decimal.Decimal) {
	b.TotalSales = totalSales
	b.NetProfit = netProfit
	b.ProfitStatus = ProfitStatusCalculated
	b.IncrementVersion()
}
