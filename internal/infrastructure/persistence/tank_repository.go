package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTankRepository implements TankRepository using GORM
type GormTankRepository struct {
	db *gorm.DB
}

// NewGormTankRepository creates a new GormTankRepository
func NewGormTankRepository(db *gorm.DB) *GormTankRepository {
	return &GormTankRepository{db: db}
}

// FindByID finds a tank by its ID
func (r *GormTankRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Tank, error) {
	var tank station.Tank
	if err := r.db.WithContext(ctx).First(&tank, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tank, nil
}

// FindAll finds all tanks matching the filter
func (r *GormTankRepository) FindAll(ctx context.Context, filter shared.Filter) ([]station.Tank, error) {
	var tanks []station.Tank
	query := r.db.WithContext(ctx).Model(&station.Tank{})

	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "name":
			query = query.Where("name LIKE ?", "%"+value.(string)+"%")
		}
	}

	query = applySort(query, filter, TankSortFields, "created_at")
	if err := query.Find(&tanks).Error; err != nil {
		return nil, err
	}
	return tanks, nil
}

// Save creates or updates a tank
func (r *GormTankRepository) Save(ctx context.Context, tank *station.Tank) error {
	return r.db.WithContext(ctx).Save(tank).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormTankRepository) SaveWithLock(ctx context.Context, tank *station.Tank) error {
	result := r.db.WithContext(ctx).
		Model(tank).
		Where("id = ? AND version = ?", tank.ID, tank.Version-1).
		Updates(map[string]interface{}{
			"name":           tank.Name,
			"product_id":     tank.ProductID,
			"capacity":       tank.Capacity,
			"current_volume": tank.CurrentVolume,
			"version":        tank.Version,
			"updated_at":     tank.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Tank was modified by another transaction")
	}
	return nil
}

// Ensure GormTankRepository implements TankRepository
var _ station.TankRepository = (*GormTankRepository)(nil)
