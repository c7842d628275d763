package procurement

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportService manages the supplier delivery lifecycle: batches are created
// pending with no inventory effect, and receipt applies every tank and stock
// delta atomically.
type ImportService struct {
	batchRepo procurement.ImportBatchRepository
	scope     TransactionScope
	logger    *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(batchRepo procurement.ImportBatchRepository, scope TransactionScope, logger *zap.Logger) *ImportService {
	return &ImportService{
		batchRepo: batchRepo,
		scope:     scope,
		logger:    logger,
	}
}

// CreateBatch creates a pending batch. No tank or stock is touched here.
func (s *ImportService) CreateBatch(ctx context.Context, req CreateBatchRequest) (*BatchResponse, error) {
	items := make([]procurement.ImportLineItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, procurement.ImportLineItem{
			ProductID: line.ProductID,
			TankID:    line.TankID,
			Amount:    line.Amount,
			UnitPrice: line.UnitPrice,
		})
	}

	batch, err := procurement.NewImportBatch(req.SupplierName, req.Reference, req.ShippingCost, items)
	if err != nil {
		return nil, err
	}
	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	s.logger.Info("import batch created",
		zap.String("batch_id", batch.ID.String()),
		zap.String("supplier", batch.SupplierName),
		zap.Int("items", len(batch.Items)))

	resp := ToBatchResponse(batch)
	return &resp, nil
}

// ReceiveBatch applies a pending batch to inventory. Every fuel line must fit
// its tank's remaining headroom or the whole receipt fails; nothing is
// partially applied. Receiving an already received batch is a hard error.
func (s *ImportService) ReceiveBatch(ctx context.Context, batchID uuid.UUID) (*BatchResponse, error) {
	var resp *BatchResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := repos.BatchRepo().FindByID(ctx, batchID)
		if err != nil {
			return err
		}
		if err := batch.MarkReceived(time.Now()); err != nil {
			return err
		}

		for _, item := range batch.Items {
			if item.TankID != nil {
				tank, err := repos.TankRepo().FindByID(ctx, *item.TankID)
				if err != nil {
					return err
				}
				if err := tank.Fill(item.Amount); err != nil {
					return err
				}
				if err := repos.TankRepo().SaveWithLock(ctx, tank); err != nil {
					return err
				}
				if err := repos.TankReadingRepo().Append(ctx, tank.NewReading()); err != nil {
					return err
				}
			}

			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if err := product.AddStock(item.Amount); err != nil {
				return err
			}
			if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
				return err
			}
		}

		if err := repos.BatchRepo().SaveWithLock(ctx, batch); err != nil {
			return err
		}

		r := ToBatchResponse(batch)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("import batch received",
		zap.String("batch_id", batchID.String()))
	return resp, nil
}

// GetBatch returns a batch by id
func (s *ImportService) GetBatch(ctx context.Context, batchID uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	resp := ToBatchResponse(batch)
	return &resp, nil
}

// ListBatches returns batches matching the filter
func (s *ImportService) ListBatches(ctx context.Context, filter shared.Filter) ([]BatchResponse, int64, error) {
	batches, total, err := s.batchRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]BatchResponse, 0, len(batches))
	for _, batch := range batches {
		responses = append(responses, ToBatchResponse(batch))
	}
	return responses, total, nil
}
