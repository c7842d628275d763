package membership

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
)

// Member represents a loyalty program member identified by a unique phone
// number. Points accumulate through sale commits and are never deducted here;
// redemption is a separate concern outside this core.
type Member struct {
	shared.BaseAggregateRoot
	Name   string `gorm:"type:varchar(100);not null"`
	Phone  string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Points int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Member) TableName() string {
	return "members"
}

// NewMember creates a new member with zero points
func NewMember(name, phone string) (*Member, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_MEMBER_NAME", "Member name cannot be empty")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Member phone cannot be empty")
	}

	return &Member{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Points:            0,
	}, nil
}

// EarnPoints adds the points computed for a committed sale
func (m *Member) EarnPoints(points int64) error {
	if points < 0 {
		return shared.NewDomainError("INVALID_POINTS", "Earned points cannot be negative")
	}

	m.Points += points
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}
