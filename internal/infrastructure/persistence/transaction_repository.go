package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTransactionRepository implements the append-only TransactionRepository
// using GORM. Committed transactions are never updated or deleted.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create inserts a new transaction record
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *sales.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Transaction, error) {
	var transaction sales.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// FindAll finds transactions matching the filter, returning the total count
// before pagination
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*sales.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&sales.Transaction{})

	for key, value := range filter.Filters {
		switch key {
		case "shift_id":
			query = query.Where("shift_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "member_id":
			query = query.Where("member_id = ?", value)
		case "payment_type":
			query = query.Where("payment_type = ?", value)
		case "from":
			query = query.Where("created_at >= ?", value)
		case "to":
			query = query.Where("created_at < ?", value)
		}
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var transactions []*sales.Transaction
	query = applySort(query, filter, TransactionSortFields, "created_at")
	if err := query.Find(&transactions).Error; err != nil {
		return nil, 0, err
	}
	return transactions, count, nil
}

// FindByShift returns all transactions recorded against a shift
func (r *GormTransactionRepository) FindByShift(ctx context.Context, shiftID uuid.UUID) ([]*sales.Transaction, error) {
	var transactions []*sales.Transaction
	if err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// SumAmountByProductBetween totals completed sale amounts for one product
// in the half-open window [from, to)
func (r *GormTransactionRepository) SumAmountByProductBetween(ctx context.Context, productID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&sales.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("product_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			productID, sales.TransactionStatusCompleted, from, to).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ sales.TransactionRepository = (*GormTransactionRepository)(nil)
