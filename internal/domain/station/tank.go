package station

import (
	"fmt"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tank represents an underground fuel tank assigned to one product.
// Invariant: after any committed receipt, 0 <= current_volume <= capacity.
// Dispensing enforces no floor, so sales can legitimately drive the computed
// volume below zero; that condition is tolerated and surfaced to monitoring.
type Tank struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(100);not null"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Capacity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CurrentVolume decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Tank) TableName() string {
	return "tanks"
}

// NewTank creates a new tank for a fuel product
func NewTank(name string, productID uuid.UUID, capacity decimal.Decimal) (*Tank, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TANK_NAME", "Tank name cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if capacity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Tank capacity must be positive")
	}

	return &Tank{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ProductID:         productID,
		Capacity:          capacity,
		CurrentVolume:     decimal.Zero,
	}, nil
}

// Fill increases the tank volume by the given liters.
// Overfilling is rejected with a CAPACITY_EXCEEDED error naming the tank and
// the remaining headroom, so a batch receipt can abort atomically.
func (t *Tank) Fill(liters decimal.Decimal) error {
	if liters.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_VOLUME", "Fill volume must be positive")
	}

	volume := valueobject.NewVolume(t.CurrentVolume).Add(valueobject.NewVolume(liters))
	capacity := valueobject.NewVolume(t.Capacity)
	if volume.Exceeds(capacity) {
		headroom := valueobject.NewVolume(t.CurrentVolume).HeadroomAgainst(capacity)
		return shared.NewDomainError("CAPACITY_EXCEEDED",
			fmt.Sprintf("Tank %s cannot take %s liters, only %s liters of headroom remain",
				t.Name, liters.String(), headroom.String()))
	}

	t.CurrentVolume = volume.Liters()
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Dispense decreases the tank volume by the given liters.
// No floor is enforced: depletion below zero is possible and tolerated.
func (t *Tank) Dispense(liters decimal.Decimal) error {
	if liters.IsNegative() {
		return shared.NewDomainError("INVALID_VOLUME", "Dispense volume cannot be negative")
	}

	t.CurrentVolume = t.CurrentVolume.Sub(liters)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Headroom returns the remaining volume before the tank reaches capacity
func (t *Tank) Headroom() decimal.Decimal {
	return valueobject.NewVolume(t.CurrentVolume).
		HeadroomAgainst(valueobject.NewVolume(t.Capacity)).Liters()
}

// IsDepleted returns true when dispensing has driven the volume below zero
func (t *Tank) IsDepleted() bool {
	return t.CurrentVolume.IsNegative()
}

// NewReading snapshots the tank's current volume into an append-only reading
func (t *Tank) NewReading() *TankReading {
	return &TankReading{
		ID:         uuid.New(),
		TankID:     t.ID,
		Volume:     t.CurrentVolume,
		RecordedAt: time.Now(),
	}
}

// TankReading is an append-only historical snapshot of a tank's volume.
// Readings are written in the same transactional scope as the volume change
// that produced them and are never updated or deleted.
type TankReading struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	TankID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Volume     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	RecordedAt time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TankReading) TableName() string {
	return "tank_readings"
}
