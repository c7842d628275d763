package station

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NozzleStatus represents the operational state of a nozzle
type NozzleStatus string

const (
	NozzleStatusIdle   NozzleStatus = "idle"
	NozzleStatusLocked NozzleStatus = "locked"
)

// IsValid checks if the status is a valid NozzleStatus
func (s NozzleStatus) IsValid() bool {
	return s == NozzleStatusIdle || s == NozzleStatusLocked
}

// Dispenser represents a pump island hosting one or more nozzles
type Dispenser struct {
	shared.BaseAggregateRoot
	Code string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Dispenser) TableName() string {
	return "dispensers"
}

// NewDispenser creates a new dispenser
func NewDispenser(code, name string) (*Dispenser, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_DISPENSER_CODE", "Dispenser code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_DISPENSER_NAME", "Dispenser name cannot be empty")
	}

	return &Dispenser{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
	}, nil
}

// Nozzle is a fuel-dispensing point bound to one dispenser, one product and
// optionally one tank. Its cumulative meter reading is monotonically
// non-decreasing across its lifetime.
type Nozzle struct {
	shared.BaseAggregateRoot
	DispenserID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_nozzle_dispenser_product"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_nozzle_dispenser_product"`
	TankID       *uuid.UUID      `gorm:"type:uuid;index"`
	MeterReading decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status       NozzleStatus    `gorm:"type:varchar(10);not null;default:'idle'"`
}

// TableName returns the table name for GORM
func (Nozzle) TableName() string {
	return "nozzles"
}

// NewNozzle creates a new idle nozzle
func NewNozzle(dispenserID, productID uuid.UUID, tankID *uuid.UUID) (*Nozzle, error) {
	if dispenserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DISPENSER", "Dispenser ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	return &Nozzle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DispenserID:       dispenserID,
		ProductID:         productID,
		TankID:            tankID,
		MeterReading:      decimal.Zero,
		Status:            NozzleStatusIdle,
	}, nil
}

// MeterSnapshot captures the meter interval covered by one sale
type MeterSnapshot struct {
	StartMeter decimal.Decimal
	EndMeter   decimal.Decimal
}

// Advance moves the cumulative meter forward by the sold liters and returns
// the start/end snapshot for the transaction record. A locked nozzle cannot
// dispense, and the meter never moves backwards.
func (n *Nozzle) Advance(liters decimal.Decimal) (MeterSnapshot, error) {
	if n.Status == NozzleStatusLocked {
		return MeterSnapshot{}, shared.NewDomainError("NOZZLE_LOCKED", "Nozzle is locked and cannot dispense")
	}
	if liters.IsNegative() {
		return MeterSnapshot{}, shared.NewDomainError("INVALID_VOLUME", "Sold liters cannot be negative")
	}

	snapshot := MeterSnapshot{
		StartMeter: n.MeterReading,
		EndMeter:   n.MeterReading.Add(liters),
	}

	n.MeterReading = snapshot.EndMeter
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return snapshot, nil
}

// Lock puts the nozzle out of service
func (n *Nozzle) Lock() error {
	if n.Status == NozzleStatusLocked {
		return shared.NewDomainError("INVALID_STATE", "Nozzle is already locked")
	}

	n.Status = NozzleStatusLocked
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return nil
}

// Unlock returns the nozzle to service
func (n *Nozzle) Unlock() error {
	if n.Status != NozzleStatusLocked {
		return shared.NewDomainError("INVALID_STATE", "Nozzle is not locked")
	}

	n.Status = NozzleStatusIdle
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return nil
}

// IsLocked returns true if the nozzle is out of service
func (n *Nozzle) IsLocked() bool {
	return n.Status == NozzleStatusLocked
}
