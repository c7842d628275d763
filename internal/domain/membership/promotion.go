package membership

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionKind represents the effect a promotion has on a sale
type PromotionKind string

const (
	PromotionKindDiscount        PromotionKind = "discount"
	PromotionKindPointMultiplier PromotionKind = "point_multiplier"
	PromotionKindFreebie         PromotionKind = "freebie"
)

// IsValid checks if the kind is a valid PromotionKind
func (k PromotionKind) IsValid() bool {
	switch k {
	case PromotionKindDiscount, PromotionKindPointMultiplier, PromotionKindFreebie:
		return true
	}
	return false
}

// Promotion is a loyalty rule active within a date window, optionally scoped
// to one product. The commit engine reads promotions but never mutates them.
type Promotion struct {
	shared.BaseAggregateRoot
	Name            string          `gorm:"type:varchar(200);not null"`
	Kind            PromotionKind   `gorm:"type:varchar(20);not null"`
	ConditionAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Value           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;index"`
	StartDate       time.Time       `gorm:"not null"`
	EndDate         time.Time       `gorm:"not null"`
	Active          bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// NewPromotion creates a new active promotion
func NewPromotion(name string, kind PromotionKind, conditionAmount, value decimal.Decimal, productID *uuid.UUID, startDate, endDate time.Time) (*Promotion, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PROMOTION_NAME", "Promotion name cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROMOTION_KIND", "Unknown promotion kind")
	}
	if endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Promotion end date precedes start date")
	}

	return &Promotion{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Kind:              kind,
		ConditionAmount:   conditionAmount,
		Value:             value,
		ProductID:         productID,
		StartDate:         startDate,
		EndDate:           endDate,
		Active:            true,
	}, nil
}

// AppliesAt reports whether the promotion is live at the given instant
func (p *Promotion) AppliesAt(now time.Time) bool {
	return p.Active && !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// Qualifies reports whether a sale amount clears the condition threshold
func (p *Promotion) Qualifies(amount decimal.Decimal) bool {
	return p.ConditionAmount.LessThanOrEqual(amount)
}
