package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDispenserRepository implements DispenserRepository using GORM
type GormDispenserRepository struct {
	db *gorm.DB
}

// NewGormDispenserRepository creates a new GormDispenserRepository
func NewGormDispenserRepository(db *gorm.DB) *GormDispenserRepository {
	return &GormDispenserRepository{db: db}
}

// FindByID finds a dispenser by its ID
func (r *GormDispenserRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Dispenser, error) {
	var dispenser station.Dispenser
	if err := r.db.WithContext(ctx).First(&dispenser, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &dispenser, nil
}

// FindAll finds all dispensers matching the filter
func (r *GormDispenserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]station.Dispenser, error) {
	var dispensers []station.Dispenser
	query := r.db.WithContext(ctx).Model(&station.Dispenser{})

	for key, value := range filter.Filters {
		switch key {
		case "code":
			query = query.Where("code = ?", value)
		case "name":
			query = query.Where("name LIKE ?", "%"+value.(string)+"%")
		}
	}

	query = applySort(query, filter, DispenserSortFields, "created_at")
	if err := query.Find(&dispensers).Error; err != nil {
		return nil, err
	}
	return dispensers, nil
}

// Save creates or updates a dispenser
func (r *GormDispenserRepository) Save(ctx context.Context, dispenser *station.Dispenser) error {
	return r.db.WithContext(ctx).Save(dispenser).Error
}

// Ensure GormDispenserRepository implements DispenserRepository
var _ station.DispenserRepository = (*GormDispenserRepository)(nil)
