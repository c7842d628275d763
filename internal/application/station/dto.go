package station

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDispenserRequest registers a new dispenser
type CreateDispenserRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// DispenserResponse represents a dispenser in API responses
type DispenserResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// CreateTankRequest registers a new tank
type CreateTankRequest struct {
	Name      string          `json:"name" binding:"required"`
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Capacity  decimal.Decimal `json:"capacity" binding:"required"`
}

// TankResponse represents a tank in API responses
type TankResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	ProductID     uuid.UUID       `json:"product_id"`
	Capacity      decimal.Decimal `json:"capacity"`
	CurrentVolume decimal.Decimal `json:"current_volume"`
	Headroom      decimal.Decimal `json:"headroom"`
}

// CreateNozzleRequest attaches a nozzle to a dispenser
type CreateNozzleRequest struct {
	DispenserID uuid.UUID  `json:"dispenser_id" binding:"required"`
	ProductID   uuid.UUID  `json:"product_id" binding:"required"`
	TankID      *uuid.UUID `json:"tank_id"`
}

// NozzleResponse represents a nozzle in API responses
type NozzleResponse struct {
	ID           uuid.UUID       `json:"id"`
	DispenserID  uuid.UUID       `json:"dispenser_id"`
	ProductID    uuid.UUID       `json:"product_id"`
	TankID       *uuid.UUID      `json:"tank_id"`
	MeterReading decimal.Decimal `json:"meter_reading"`
	Status       string          `json:"status"`
}

// TankReadingResponse is one historical volume snapshot
type TankReadingResponse struct {
	ID         uuid.UUID       `json:"id"`
	TankID     uuid.UUID       `json:"tank_id"`
	Volume     decimal.Decimal `json:"volume"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// ToDispenserResponse converts a domain dispenser to a response DTO
func ToDispenserResponse(d *station.Dispenser) DispenserResponse {
	return DispenserResponse{ID: d.ID, Code: d.Code, Name: d.Name}
}

// ToTankResponse converts a domain tank to a response DTO
func ToTankResponse(t *station.Tank) TankResponse {
	return TankResponse{
		ID:            t.ID,
		Name:          t.Name,
		ProductID:     t.ProductID,
		Capacity:      t.Capacity,
		CurrentVolume: t.CurrentVolume,
		Headroom:      t.Headroom(),
	}
}

// ToNozzleResponse converts a domain nozzle to a response DTO
func ToNozzleResponse(n *station.Nozzle) NozzleResponse {
	return NozzleResponse{
		ID:           n.ID,
		DispenserID:  n.DispenserID,
		ProductID:    n.ProductID,
		TankID:       n.TankID,
		MeterReading: n.MeterReading,
		Status:       string(n.Status),
	}
}

// ToTankReadingResponse converts a domain tank reading to a response DTO
func ToTankReadingResponse(r station.TankReading) TankReadingResponse {
	return TankReadingResponse{
		ID:         r.ID,
		TankID:     r.TankID,
		Volume:     r.Volume,
		RecordedAt: r.RecordedAt,
	}
}
