package persistence

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTankReadingRepository implements the append-only TankReadingRepository
// using GORM. Readings are inserted and queried, never updated.
type GormTankReadingRepository struct {
	db *gorm.DB
}

// NewGormTankReadingRepository creates a new GormTankReadingRepository
func NewGormTankReadingRepository(db *gorm.DB) *GormTankReadingRepository {
	return &GormTankReadingRepository{db: db}
}

// Append persists a new reading
func (r *GormTankReadingRepository) Append(ctx context.Context, reading *station.TankReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

// FindByTank returns a tank's readings ordered by recording time
func (r *GormTankReadingRepository) FindByTank(ctx context.Context, tankID uuid.UUID, filter shared.Filter) ([]station.TankReading, error) {
	var readings []station.TankReading
	query := r.db.WithContext(ctx).
		Model(&station.TankReading{}).
		Where("tank_id = ?", tankID)

	query = applySort(query, filter, TankReadingSortFields, "recorded_at")
	if err := query.Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

// Ensure GormTankReadingRepository implements TankReadingRepository
var _ station.TankReadingRepository = (*GormTankReadingRepository)(nil)
