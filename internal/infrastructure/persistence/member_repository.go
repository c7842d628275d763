package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMemberRepository implements MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByID finds a member by its ID
func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	var member membership.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// FindByPhone finds a member by its unique phone number
func (r *GormMemberRepository) FindByPhone(ctx context.Context, phone string) (*membership.Member, error) {
	var member membership.Member
	if err := r.db.WithContext(ctx).First(&member, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Save creates or updates a member
func (r *GormMemberRepository) Save(ctx context.Context, member *membership.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormMemberRepository) SaveWithLock(ctx context.Context, member *membership.Member) error {
	result := r.db.WithContext(ctx).
		Model(member).
		Where("id = ? AND version = ?", member.ID, member.Version-1).
		Updates(map[string]interface{}{
			"name":       member.Name,
			"phone":      member.Phone,
			"points":     member.Points,
			"version":    member.Version,
			"updated_at": member.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Member was modified by another transaction")
	}
	return nil
}

// Ensure GormMemberRepository implements MemberRepository
var _ membership.MemberRepository = (*GormMemberRepository)(nil)
