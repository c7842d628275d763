package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func receivedBatch(t *testing.T, productID uuid.UUID, importDate time.Time, amount, unitPrice, shipping int64) *procurement.ImportBatch {
	t.Helper()
	batch, err := procurement.NewImportBatch("Petrolimex", "", decimal.NewFromInt(shipping), []procurement.ImportLineItem{
		{ProductID: productID, Amount: decimal.NewFromInt(amount), UnitPrice: decimal.NewFromInt(unitPrice)},
	})
	require.NoError(t, err)
	batch.ImportDate = importDate
	require.NoError(t, batch.MarkReceived(importDate))
	return batch
}

func TestCalculateProfit(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("profit is stored on the preceding batch", func(t *testing.T) {
		batchRepo := new(MockBatchRepository)
		txRepo := new(MockTransactionRepository)
		service := NewProfitService(batchRepo, txRepo, zap.NewNop())

		// B1 cost: 10*5 + 50 shipping = 100
		b1 := receivedBatch(t, productID, jan, 10, 5, 50)
		b2 := receivedBatch(t, productID, feb, 10, 5, 0)

		batchRepo.On("FindByID", ctx, b2.ID).Return(b2, nil)
		batchRepo.On("FindLatestReceivedBefore", ctx, feb).Return(b1, nil)
		txRepo.On("SumAmountByProductBetween", ctx, productID, jan, feb).
			Return(decimal.NewFromInt(200), nil)
		batchRepo.On("SaveWithLock", ctx, b1).Return(nil)

		resp, err := service.CalculateProfit(ctx, b2.ID)
		require.NoError(t, err)
		assert.Equal(t, b1.ID, resp.TargetBatchID)
		assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(200)))
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(100)))
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(100)))

		assert.Equal(t, procurement.ProfitStatusCalculated, b1.ProfitStatus)
		assert.True(t, b1.TotalSales.Equal(decimal.NewFromInt(200)))
		assert.True(t, b1.NetProfit.Equal(decimal.NewFromInt(100)))

		// B2 itself is untouched
		assert.Equal(t, procurement.ProfitStatusUncalculated, b2.ProfitStatus)
	})

	t.Run("recalculation overwrites", func(t *testing.T) {
		batchRepo := new(MockBatchRepository)
		txRepo := new(MockTransactionRepository)
		service := NewProfitService(batchRepo, txRepo, zap.NewNop())

		b1 := receivedBatch(t, productID, jan, 10, 5, 50)
		b2 := receivedBatch(t, productID, feb, 10, 5, 0)
		b1.RecordProfit(decimal.NewFromInt(999), decimal.NewFromInt(899))

		batchRepo.On("FindByID", ctx, b2.ID).Return(b2, nil)
		batchRepo.On("FindLatestReceivedBefore", ctx, feb).Return(b1, nil)
		txRepo.On("SumAmountByProductBetween", ctx, productID, jan, feb).
			Return(decimal.NewFromInt(200), nil)
		batchRepo.On("SaveWithLock", ctx, b1).Return(nil)

		resp, err := service.CalculateProfit(ctx, b2.ID)
		require.NoError(t, err)
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(100)))
		assert.True(t, b1.NetProfit.Equal(decimal.NewFromInt(100)))
	})

	t.Run("no prior batch fails", func(t *testing.T) {
		batchRepo := new(MockBatchRepository)
		txRepo := new(MockTransactionRepository)
		service := NewProfitService(batchRepo, txRepo, zap.NewNop())

		b1 := receivedBatch(t, productID, jan, 10, 5, 0)
		batchRepo.On("FindByID", ctx, b1.ID).Return(b1, nil)
		batchRepo.On("FindLatestReceivedBefore", ctx, jan).Return(nil, shared.ErrNotFound)

		_, err := service.CalculateProfit(ctx, b1.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NO_PRIOR_BATCH", domainErr.Code)
	})

	t.Run("missing batch is fatal", func(t *testing.T) {
		batchRepo := new(MockBatchRepository)
		txRepo := new(MockTransactionRepository)
		service := NewProfitService(batchRepo, txRepo, zap.NewNop())

		id := uuid.New()
		batchRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.CalculateProfit(ctx, id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
