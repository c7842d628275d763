package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Volume is a value object representing a fuel volume in liters.
// Negative volumes are representable: dispensing enforces no floor, so a tank
// whose meters drift can legitimately report a negative computed volume.
type Volume struct {
	liters decimal.Decimal
}

// NewVolume creates a Volume from a decimal liter amount
func NewVolume(liters decimal.Decimal) Volume {
	return Volume{liters: liters}
}

// NewVolumeFromString creates a Volume from a string representation
func NewVolumeFromString(liters string) (Volume, error) {
	d, err := decimal.NewFromString(liters)
	if err != nil {
		return Volume{}, fmt.Errorf("invalid volume string: %w", err)
	}
	return Volume{liters: d}, nil
}

// ZeroVolume returns a zero-value Volume
func ZeroVolume() Volume {
	return Volume{liters: decimal.Zero}
}

// Liters returns the decimal liter amount
func (v Volume) Liters() decimal.Decimal {
	return v.liters
}

// Add returns a new Volume with the sum of both volumes
func (v Volume) Add(other Volume) Volume {
	return Volume{liters: v.liters.Add(other.liters)}
}

// Sub returns a new Volume with the difference of both volumes
func (v Volume) Sub(other Volume) Volume {
	return Volume{liters: v.liters.Sub(other.liters)}
}

// Exceeds returns true if the volume is strictly greater than the capacity
func (v Volume) Exceeds(capacity Volume) bool {
	return v.liters.GreaterThan(capacity.liters)
}

// HeadroomAgainst returns the remaining volume before the given capacity is
// reached. The result can be negative when the volume already exceeds it.
func (v Volume) HeadroomAgainst(capacity Volume) Volume {
	return Volume{liters: capacity.liters.Sub(v.liters)}
}

// IsNegative returns true if the volume is below zero
func (v Volume) IsNegative() bool {
	return v.liters.IsNegative()
}

// IsPositive returns true if the volume is above zero
func (v Volume) IsPositive() bool {
	return v.liters.IsPositive()
}

// Equal returns true if both volumes are equal
func (v Volume) Equal(other Volume) bool {
	return v.liters.Equal(other.liters)
}

// String returns the string representation in liters
func (v Volume) String() string {
	return v.liters.String()
}
