package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNozzleRepository implements NozzleRepository using GORM
type GormNozzleRepository struct {
	db *gorm.DB
}

// NewGormNozzleRepository creates a new GormNozzleRepository
func NewGormNozzleRepository(db *gorm.DB) *GormNozzleRepository {
	return &GormNozzleRepository{db: db}
}

// FindByID finds a nozzle by its ID
func (r *GormNozzleRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Nozzle, error) {
	var nozzle station.Nozzle
	if err := r.db.WithContext(ctx).First(&nozzle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &nozzle, nil
}

// FindByDispenserAndProduct returns every nozzle serving the given
// dispenser/product pair
func (r *GormNozzleRepository) FindByDispenserAndProduct(ctx context.Context, dispenserID, productID uuid.UUID) ([]station.Nozzle, error) {
	var nozzles []station.Nozzle
	if err := r.db.WithContext(ctx).
		Where("dispenser_id = ? AND product_id = ?", dispenserID, productID).
		Order("created_at ASC").
		Find(&nozzles).Error; err != nil {
		return nil, err
	}
	return nozzles, nil
}

// FindByDispenser returns all nozzles on a dispenser
func (r *GormNozzleRepository) FindByDispenser(ctx context.Context, dispenserID uuid.UUID) ([]station.Nozzle, error) {
	var nozzles []station.Nozzle
	if err := r.db.WithContext(ctx).
		Where("dispenser_id = ?", dispenserID).
		Order("created_at ASC").
		Find(&nozzles).Error; err != nil {
		return nil, err
	}
	return nozzles, nil
}

// Save creates or updates a nozzle
func (r *GormNozzleRepository) Save(ctx context.Context, nozzle *station.Nozzle) error {
	return r.db.WithContext(ctx).Save(nozzle).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormNozzleRepository) SaveWithLock(ctx context.Context, nozzle *station.Nozzle) error {
	result := r.db.WithContext(ctx).
		Model(nozzle).
		Where("id = ? AND version = ?", nozzle.ID, nozzle.Version-1).
		Updates(map[string]interface{}{
			"dispenser_id":  nozzle.DispenserID,
			"product_id":    nozzle.ProductID,
			"tank_id":       nozzle.TankID,
			"meter_reading": nozzle.MeterReading,
			"status":        nozzle.Status,
			"version":       nozzle.Version,
			"updated_at":    nozzle.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Nozzle was modified by another transaction")
	}
	return nil
}

// Ensure GormNozzleRepository implements NozzleRepository
var _ station.NozzleRepository = (*GormNozzleRepository)(nil)
