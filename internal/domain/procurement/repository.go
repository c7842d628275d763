package procurement

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ImportBatchRepository defines persistence for import batches
type ImportBatchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ImportBatch, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*ImportBatch, int64, error)
	// FindLatestReceivedBefore returns the received batch with the greatest
	// import date strictly before the given instant, or ErrNotFound.
	FindLatestReceivedBefore(ctx context.Context, before time.Time) (*ImportBatch, error)
	Save(ctx context.Context, batch *ImportBatch) error
	SaveWithLock(ctx context.Context, batch *ImportBatch) error
}
