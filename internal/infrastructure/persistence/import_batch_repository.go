package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormImportBatchRepository implements ImportBatchRepository using GORM
type GormImportBatchRepository struct {
	db *gorm.DB
}

// NewGormImportBatchRepository creates a new GormImportBatchRepository
func NewGormImportBatchRepository(db *gorm.DB) *GormImportBatchRepository {
	return &GormImportBatchRepository{db: db}
}

// FindByID finds an import batch with its line items
func (r *GormImportBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.ImportBatch, error) {
	var batch procurement.ImportBatch
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindAll finds import batches matching the filter, returning the total
// count before pagination
func (r *GormImportBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*procurement.ImportBatch, int64, error) {
	query := r.db.WithContext(ctx).Model(&procurement.ImportBatch{})

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "supplier_name":
			query = query.Where("supplier_name LIKE ?", "%"+value.(string)+"%")
		case "from":
			query = query.Where("import_date >= ?", value)
		case "to":
			query = query.Where("import_date < ?", value)
		}
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var batches []*procurement.ImportBatch
	query = applySort(query, filter, ImportBatchSortFields, "import_date")
	if err := query.Preload("Items").Find(&batches).Error; err != nil {
		return nil, 0, err
	}
	return batches, count, nil
}

// FindLatestReceivedBefore returns the received batch with the greatest
// import date strictly before the given instant
func (r *GormImportBatchRepository) FindLatestReceivedBefore(ctx context.Context, before time.Time) (*procurement.ImportBatch, error) {
	var batch procurement.ImportBatch
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND import_date < ?", procurement.BatchStatusReceived, before).
		Order("import_date DESC").
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// Save creates or updates an import batch together with its line items
func (r *GormImportBatchRepository) Save(ctx context.Context, batch *procurement.ImportBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// SaveWithLock saves with optimistic locking (checks version). Line items
// are immutable once the batch is created, so only batch columns move.
func (r *GormImportBatchRepository) SaveWithLock(ctx context.Context, batch *procurement.ImportBatch) error {
	result := r.db.WithContext(ctx).
		Model(batch).
		Where("id = ? AND version = ?", batch.ID, batch.Version-1).
		Updates(map[string]interface{}{
			"supplier_name": batch.SupplierName,
			"reference":     batch.Reference,
			"shipping_cost": batch.ShippingCost,
			"status":        batch.Status,
			"import_date":   batch.ImportDate,
			"received_at":   batch.ReceivedAt,
			"total_sales":   batch.TotalSales,
			"net_profit":    batch.NetProfit,
			"profit_status": batch.ProfitStatus,
			"version":       batch.Version,
			"updated_at":    batch.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Import batch was modified by another transaction")
	}
	return nil
}

// Ensure GormImportBatchRepository implements ImportBatchRepository
var _ procurement.ImportBatchRepository = (*GormImportBatchRepository)(nil)
