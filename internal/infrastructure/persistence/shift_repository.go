package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShiftRepository implements ShiftRepository using GORM
type GormShiftRepository struct {
	db *gorm.DB
}

// NewGormShiftRepository creates a new GormShiftRepository
func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

// FindByID finds a shift by its ID
func (r *GormShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Shift, error) {
	var shift sales.Shift
	if err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shift, nil
}

// FindOpen returns the currently open shift, or ErrNotFound
func (r *GormShiftRepository) FindOpen(ctx context.Context) (*sales.Shift, error) {
	var shift sales.Shift
	if err := r.db.WithContext(ctx).
		Where("status = ?", sales.ShiftStatusOpen).
		Order("opened_at DESC").
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shift, nil
}

// FindAll finds shifts matching the filter, returning the total count
// before pagination
func (r *GormShiftRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*sales.Shift, int64, error) {
	query := r.db.WithContext(ctx).Model(&sales.Shift{})

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "cashier_name":
			query = query.Where("cashier_name LIKE ?", "%"+value.(string)+"%")
		}
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var shifts []*sales.Shift
	query = applySort(query, filter, ShiftSortFields, "opened_at")
	if err := query.Find(&shifts).Error; err != nil {
		return nil, 0, err
	}
	return shifts, count, nil
}

// Save creates or updates a shift
func (r *GormShiftRepository) Save(ctx context.Context, shift *sales.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormShiftRepository) SaveWithLock(ctx context.Context, shift *sales.Shift) error {
	result := r.db.WithContext(ctx).
		Model(shift).
		Where("id = ? AND version = ?", shift.ID, shift.Version-1).
		Updates(map[string]interface{}{
			"cashier_name": shift.CashierName,
			"status":       shift.Status,
			"opened_at":    shift.OpenedAt,
			"closed_at":    shift.ClosedAt,
			"notes":        shift.Notes,
			"version":      shift.Version,
			"updated_at":   shift.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Shift was modified by another transaction")
	}
	return nil
}

// Ensure GormShiftRepository implements ShiftRepository
var _ sales.ShiftRepository = (*GormShiftRepository)(nil)
