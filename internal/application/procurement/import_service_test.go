package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type importFixture struct {
	batchRepo       *MockBatchRepository
	productRepo     *MockProductRepository
	tankRepo        *MockTankRepository
	tankReadingRepo *MockTankReadingRepository
	service         *ImportService
}

func newImportFixture() *importFixture {
	f := &importFixture{
		batchRepo:       new(MockBatchRepository),
		productRepo:     new(MockProductRepository),
		tankRepo:        new(MockTankRepository),
		tankReadingRepo: new(MockTankReadingRepository),
	}
	scope := NewNoOpTransactionScope(f.batchRepo, f.productRepo, f.tankRepo, f.tankReadingRepo)
	f.service = NewImportService(f.batchRepo, scope, zap.NewNop())
	return f
}

func TestCreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending batch", func(t *testing.T) {
		f := newImportFixture()
		f.batchRepo.On("Save", ctx, mock.AnythingOfType("*procurement.ImportBatch")).Return(nil)

		tankID := uuid.New()
		resp, err := f.service.CreateBatch(ctx, CreateBatchRequest{
			SupplierName: "Petrolimex",
			Reference:    "PO-2024-001",
			ShippingCost: decimal.NewFromInt(500),
			Items: []ImportLineRequest{
				{ProductID: uuid.New(), TankID: &tankID, Amount: decimal.NewFromInt(5000), UnitPrice: decimal.NewFromInt(18)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, string(procurement.BatchStatusPending), resp.Status)
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(90500)))
	})

	t.Run("empty items rejected before any write", func(t *testing.T) {
		f := newImportFixture()

		_, err := f.service.CreateBatch(ctx, CreateBatchRequest{
			SupplierName: "Petrolimex",
		})
		require.Error(t, err)
		f.batchRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		f := newImportFixture()

		_, err := f.service.CreateBatch(ctx, CreateBatchRequest{
			SupplierName: "Petrolimex",
			Items: []ImportLineRequest{
				{ProductID: uuid.New(), Amount: decimal.Zero, UnitPrice: decimal.NewFromInt(18)},
			},
		})
		require.Error(t, err)
		f.batchRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func newPendingBatch(t *testing.T, productID uuid.UUID, tankID *uuid.UUID, amount int64) *procurement.ImportBatch {
	t.Helper()
	batch, err := procurement.NewImportBatch("Petrolimex", "", decimal.Zero, []procurement.ImportLineItem{
		{ProductID: productID, TankID: tankID, Amount: decimal.NewFromInt(amount), UnitPrice: decimal.NewFromInt(18)},
	})
	require.NoError(t, err)
	return batch
}

func TestReceiveBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("applies tank fill, reading and stock", func(t *testing.T) {
		f := newImportFixture()
		productID := uuid.New()
		tankID := uuid.New()

		batch := newPendingBatch(t, productID, &tankID, 1000)
		tank, err := station.NewTank("Tank 1", productID, decimal.NewFromInt(10000))
		require.NoError(t, err)
		tank.ID = tankID
		tank.CurrentVolume = decimal.NewFromInt(300)

		product, err := catalog.NewProduct("Diesel", catalog.ProductKindFuel, decimal.NewFromInt(23))
		require.NoError(t, err)

		f.batchRepo.On("FindByID", ctx, batch.ID).Return(batch, nil)
		f.tankRepo.On("FindByID", ctx, tankID).Return(tank, nil)
		f.tankRepo.On("SaveWithLock", ctx, tank).Return(nil)
		f.tankReadingRepo.On("Append", ctx, mock.AnythingOfType("*station.TankReading")).Return(nil)
		f.productRepo.On("FindByID", ctx, productID).Return(product, nil)
		f.productRepo.On("SaveWithLock", ctx, product).Return(nil)
		f.batchRepo.On("SaveWithLock", ctx, batch).Return(nil)

		resp, err := f.service.ReceiveBatch(ctx, batch.ID)
		require.NoError(t, err)
		assert.Equal(t, string(procurement.BatchStatusReceived), resp.Status)
		assert.True(t, tank.CurrentVolume.Equal(decimal.NewFromInt(1300)))
		assert.True(t, product.StockQuantity.Equal(decimal.NewFromInt(1000)))
		f.tankReadingRepo.AssertCalled(t, "Append", ctx, mock.MatchedBy(func(r *station.TankReading) bool {
			return r.TankID == tankID && r.Volume.Equal(decimal.NewFromInt(1300))
		}))
	})

	t.Run("overfill fails the whole receipt", func(t *testing.T) {
		f := newImportFixture()
		productID := uuid.New()
		tankID := uuid.New()

		batch := newPendingBatch(t, productID, &tankID, 1000)
		tank, err := station.NewTank("Tank 1", productID, decimal.NewFromInt(1200))
		require.NoError(t, err)
		tank.ID = tankID
		tank.CurrentVolume = decimal.NewFromInt(300)

		f.batchRepo.On("FindByID", ctx, batch.ID).Return(batch, nil)
		f.tankRepo.On("FindByID", ctx, tankID).Return(tank, nil)

		_, err = f.service.ReceiveBatch(ctx, batch.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "CAPACITY_EXCEEDED", domainErr.Code)
		assert.Contains(t, err.Error(), "Tank 1")
		f.productRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
		f.batchRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("second receive is rejected", func(t *testing.T) {
		f := newImportFixture()
		productID := uuid.New()

		batch := newPendingBatch(t, productID, nil, 50)
		require.NoError(t, batch.MarkReceived(time.Now()))

		f.batchRepo.On("FindByID", ctx, batch.ID).Return(batch, nil)

		_, err := f.service.ReceiveBatch(ctx, batch.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_RECEIVED", domainErr.Code)
	})

	t.Run("missing batch is fatal", func(t *testing.T) {
		f := newImportFixture()
		batchID := uuid.New()
		f.batchRepo.On("FindByID", ctx, batchID).Return(nil, shared.ErrNotFound)

		_, err := f.service.ReceiveBatch(ctx, batchID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
