package membership

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MemberRepository defines persistence operations for members
type MemberRepository interface {
	// FindByID finds a member by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	// FindByPhone finds a member by its unique phone number
	FindByPhone(ctx context.Context, phone string) (*Member, error)
	// Save creates or updates a member
	Save(ctx context.Context, member *Member) error
	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, member *Member) error
}

// PromotionRepository defines read operations for promotions.
// The commit engine treats promotions as read-only reference data.
type PromotionRepository interface {
	// FindByID finds a promotion by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Promotion, error)
	// FindActiveForProduct returns promotions that are active, live at the
	// given instant, and scoped to the given product or unscoped. Passing a
	// nil product returns only unscoped promotions. Order is the store's
	// natural return order.
	FindActiveForProduct(ctx context.Context, at time.Time, productID *uuid.UUID) ([]Promotion, error)
	// FindActive returns every promotion that is active and live at the
	// given instant, regardless of product scope. Order is the store's
	// natural return order.
	FindActive(ctx context.Context, at time.Time) ([]Promotion, error)
	// FindAll finds all promotions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Promotion, error)
	// Save creates or updates a promotion
	Save(ctx context.Context, promotion *Promotion) error
}
