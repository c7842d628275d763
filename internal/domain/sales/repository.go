package sales

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepository persists immutable transaction records.
// There is deliberately no update or delete operation.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Transaction, int64, error)
	FindByShift(ctx context.Context, shiftID uuid.UUID) ([]*Transaction, error)
	// SumAmountByProductBetween totals completed sale amounts for one product
	// in the half-open window [from, to).
	SumAmountByProductBetween(ctx context.Context, productID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// ShiftRepository defines persistence for shifts
type ShiftRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shift, error)
	FindOpen(ctx context.Context) (*Shift, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Shift, int64, error)
	Save(ctx context.Context, shift *Shift) error
	SaveWithLock(ctx context.Context, shift *Shift) error
}
