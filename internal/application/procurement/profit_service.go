package procurement

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProfitService reconciles sales against import batches. The batch passed to
// CalculateProfit only bounds the window: profit is computed and stored for
// the received batch immediately preceding it.
type ProfitService struct {
	batchRepo       procurement.ImportBatchRepository
	transactionRepo sales.TransactionRepository
	logger          *zap.Logger
}

// NewProfitService creates a new ProfitService
func NewProfitService(batchRepo procurement.ImportBatchRepository, transactionRepo sales.TransactionRepository, logger *zap.Logger) *ProfitService {
	return &ProfitService{
		batchRepo:       batchRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// CalculateProfit totals the sales of the preceding batch's products in the
// window between the two batches' import dates, subtracts that batch's full
// cost, and stores the result on it. Re-running overwrites the stored
// figures; the last computation wins.
func (s *ProfitService) CalculateProfit(ctx context.Context, batchID uuid.UUID) (*ProfitResponse, error) {
	current, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}

	target, err := s.batchRepo.FindLatestReceivedBefore(ctx, current.ImportDate)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NO_PRIOR_BATCH", "No received batch precedes this one")
		}
		return nil, err
	}

	windowStart := target.ImportDate
	windowEnd := current.ImportDate

	totalSales := decimal.Zero
	for _, item := range target.Items {
		sum, err := s.transactionRepo.SumAmountByProductBetween(ctx, item.ProductID, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}
		totalSales = totalSales.Add(sum)
	}

	totalCost := target.TotalCost()
	netProfit := totalSales.Sub(totalCost)

	target.RecordProfit(totalSales, netProfit)
	if err := s.batchRepo.SaveWithLock(ctx, target); err != nil {
		return nil, err
	}

	s.logger.Info("profit reconciled",
		zap.String("target_batch_id", target.ID.String()),
		zap.String("total_sales", totalSales.String()),
		zap.String("net_profit", netProfit.String()))

	return &ProfitResponse{
		TargetBatchID: target.ID,
		WindowStart:   windowStart,
		WindowEnd:     windowEnd,
		TotalSales:    totalSales,
		TotalCost:     totalCost,
		NetProfit:     netProfit,
	}, nil
}
