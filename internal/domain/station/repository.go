package station

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TankRepository defines persistence operations for tanks
type TankRepository interface {
	// FindByID finds a tank by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tank, error)
	// FindAll finds all tanks matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tank, error)
	// Save creates or updates a tank
	Save(ctx context.Context, tank *Tank) error
	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, tank *Tank) error
}

// TankReadingRepository is the append-only store for tank volume history
type TankReadingRepository interface {
	// Append persists a new reading; readings are never updated or deleted
	Append(ctx context.Context, reading *TankReading) error
	// FindByTank returns a tank's readings ordered by recording time
	FindByTank(ctx context.Context, tankID uuid.UUID, filter shared.Filter) ([]TankReading, error)
}

// NozzleRepository defines persistence operations for nozzles
type NozzleRepository interface {
	// FindByID finds a nozzle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Nozzle, error)
	// FindByDispenserAndProduct returns every nozzle serving the given
	// dispenser/product pair, in the store's natural order
	FindByDispenserAndProduct(ctx context.Context, dispenserID, productID uuid.UUID) ([]Nozzle, error)
	// FindByDispenser returns all nozzles on a dispenser
	FindByDispenser(ctx context.Context, dispenserID uuid.UUID) ([]Nozzle, error)
	// Save creates or updates a nozzle
	Save(ctx context.Context, nozzle *Nozzle) error
	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, nozzle *Nozzle) error
}

// DispenserRepository defines persistence operations for dispensers
type DispenserRepository interface {
	// FindByID finds a dispenser by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Dispenser, error)
	// FindAll finds all dispensers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Dispenser, error)
	// Save creates or updates a dispenser
	Save(ctx context.Context, dispenser *Dispenser) error
}
