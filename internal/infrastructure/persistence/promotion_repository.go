package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPromotionRepository implements PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by its ID
func (r *GormPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Promotion, error) {
	var promotion membership.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

// FindActiveForProduct returns promotions that are active and live at the
// given instant. With a product the result includes promotions scoped to
// that product plus unscoped ones; without, only unscoped promotions.
func (r *GormPromotionRepository) FindActiveForProduct(ctx context.Context, at time.Time, productID *uuid.UUID) ([]membership.Promotion, error) {
	query := r.db.WithContext(ctx).
		Where("active = ? AND start_date <= ? AND end_date >= ?", true, at, at)

	if productID != nil {
		query = query.Where("product_id IS NULL OR product_id = ?", *productID)
	} else {
		query = query.Where("product_id IS NULL")
	}

	var promotions []membership.Promotion
	if err := query.Order("created_at ASC").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// FindActive returns every promotion active and live at the given instant,
// whatever its product scope.
func (r *GormPromotionRepository) FindActive(ctx context.Context, at time.Time) ([]membership.Promotion, error) {
	var promotions []membership.Promotion
	err := r.db.WithContext(ctx).
		Where("active = ? AND start_date <= ? AND end_date >= ?", true, at, at).
		Order("created_at ASC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

// FindAll finds all promotions matching the filter
func (r *GormPromotionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Promotion, error) {
	var promotions []membership.Promotion
	query := r.db.WithContext(ctx).Model(&membership.Promotion{})

	for key, value := range filter.Filters {
		switch key {
		case "kind":
			query = query.Where("kind = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		}
	}

	query = applySort(query, filter, PromotionSortFields, "created_at")
	if err := query.Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Save creates or updates a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, promotion *membership.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

// Ensure GormPromotionRepository implements PromotionRepository
var _ membership.PromotionRepository = (*GormPromotionRepository)(nil)
