package procurement

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBatchRepository is a mock implementation of procurement.ImportBatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.ImportBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.ImportBatch), args.Error(1)
}

func (m *MockBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*procurement.ImportBatch, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*procurement.ImportBatch), args.Get(1).(int64), args.Error(2)
}

func (m *MockBatchRepository) FindLatestReceivedBefore(ctx context.Context, before time.Time) (*procurement.ImportBatch, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.ImportBatch), args.Error(1)
}

func (m *MockBatchRepository) Save(ctx context.Context, batch *procurement.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) SaveWithLock(ctx context.Context, batch *procurement.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockTankRepository is a mock implementation of station.TankRepository
type MockTankRepository struct {
	mock.Mock
}

func (m *MockTankRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Tank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Tank), args.Error(1)
}

func (m *MockTankRepository) FindAll(ctx context.Context, filter shared.Filter) ([]station.Tank, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]station.Tank), args.Error(1)
}

func (m *MockTankRepository) Save(ctx context.Context, tank *station.Tank) error {
	args := m.Called(ctx, tank)
	return args.Error(0)
}

func (m *MockTankRepository) SaveWithLock(ctx context.Context, tank *station.Tank) error {
	args := m.Called(ctx, tank)
	return args.Error(0)
}

// MockTankReadingRepository is a mock implementation of station.TankReadingRepository
type MockTankReadingRepository struct {
	mock.Mock
}

func (m *MockTankReadingRepository) Append(ctx context.Context, reading *station.TankReading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockTankReadingRepository) FindByTank(ctx context.Context, tankID uuid.UUID, filter shared.Filter) ([]station.TankReading, error) {
	args := m.Called(ctx, tankID, filter)
	return args.Get(0).([]station.TankReading), args.Error(1)
}

// MockTransactionRepository is a mock implementation of sales.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *sales.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*sales.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*sales.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) FindByShift(ctx context.Context, shiftID uuid.UUID) ([]*sales.Transaction, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).([]*sales.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByProductBetween(ctx context.Context, productID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
