package membership

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest registers a new loyalty member
type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// MemberResponse represents a member in API responses
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMemberResponse converts a domain member to a response DTO
func ToMemberResponse(m *membership.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Points:    m.Points,
		CreatedAt: m.CreatedAt,
	}
}

// CreatePromotionRequest registers a new promotion
type CreatePromotionRequest struct {
	Name            string          `json:"name" binding:"required"`
	Kind            string          `json:"kind" binding:"required,oneof=discount point_multiplier freebie"`
	ConditionAmount decimal.Decimal `json:"condition_amount"`
	Value           decimal.Decimal `json:"value" binding:"required"`
	ProductID       *uuid.UUID      `json:"product_id"`
	StartDate       time.Time       `json:"start_date" binding:"required"`
	EndDate         time.Time       `json:"end_date" binding:"required"`
}

// PromotionResponse represents a promotion in API responses
type PromotionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Kind            string          `json:"kind"`
	ConditionAmount decimal.Decimal `json:"condition_amount"`
	Value           decimal.Decimal `json:"value"`
	ProductID       *uuid.UUID      `json:"product_id"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Active          bool            `json:"active"`
}

// ToPromotionResponse converts a domain promotion to a response DTO
func ToPromotionResponse(p *membership.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              p.ID,
		Name:            p.Name,
		Kind:            string(p.Kind),
		ConditionAmount: p.ConditionAmount,
		Value:           p.Value,
		ProductID:       p.ProductID,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Active:          p.Active,
	}
}
