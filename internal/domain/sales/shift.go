package sales

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ShiftStatus represents the status of a cashier shift
type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "open"
	ShiftStatusClosed ShiftStatus = "closed"
)

// Shift groups the transactions committed between an opening and a closing.
// At most one shift may be open at a time.
type Shift struct {
	shared.BaseAggregateRoot
	CashierName string      `gorm:"type:varchar(255);not null"`
	Status      ShiftStatus `gorm:"type:varchar(20);not null;default:'open';index"`
	OpenedAt    time.Time   `gorm:"not null"`
	ClosedAt    *time.Time
	Notes       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Shift) TableName() string {
	return "shifts"
}

// OpenShift creates a new open shift
func OpenShift(cashierName string) (*Shift, error) {
	if cashierName == "" {
		return nil, shared.NewDomainError("INVALID_CASHIER", "Cashier name is required")
	}
	return &Shift{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CashierName:       cashierName,
		Status:            ShiftStatusOpen,
		OpenedAt:          time.Now(),
	}, nil
}

// IsOpen reports whether the shift still accepts transactions
func (s *Shift) IsOpen() bool {
	return s.Status == ShiftStatusOpen
}

// Close finishes the shift. Closing an already closed shift is an error.
func (s *Shift) Close(notes string) error {
	if s.Status == ShiftStatusClosed {
		return shared.NewDomainError("INVALID_STATE", "Shift is already closed")
	}
	now := time.Now()
	s.Status = ShiftStatusClosed
	s.ClosedAt = &now
	s.Notes = notes
	s.IncrementVersion()
	return nil
}

// NewShiftID parses a shift identifier
func NewShiftID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_SHIFT_ID", "Invalid shift ID format")
	}
	return parsed, nil
}
