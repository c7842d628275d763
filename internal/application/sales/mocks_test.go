package sales

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

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

// MockNozzleRepository is a mock implementation of station.NozzleRepository
type MockNozzleRepository struct {
	mock.Mock
}

func (m *MockNozzleRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Nozzle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Nozzle), args.Error(1)
}

func (m *MockNozzleRepository) FindByDispenserAndProduct(ctx context.Context, dispenserID, productID uuid.UUID) ([]station.Nozzle, error) {
	args := m.Called(ctx, dispenserID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]station.Nozzle), args.Error(1)
}

func (m *MockNozzleRepository) FindByDispenser(ctx context.Context, dispenserID uuid.UUID) ([]station.Nozzle, error) {
	args := m.Called(ctx, dispenserID)
	return args.Get(0).([]station.Nozzle), args.Error(1)
}

func (m *MockNozzleRepository) Save(ctx context.Context, nozzle *station.Nozzle) error {
	args := m.Called(ctx, nozzle)
	return args.Error(0)
}

func (m *MockNozzleRepository) SaveWithLock(ctx context.Context, nozzle *station.Nozzle) error {
	args := m.Called(ctx, nozzle)
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

// MockMemberRepository is a mock implementation of membership.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByPhone(ctx context.Context, phone string) (*membership.Member, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *membership.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) SaveWithLock(ctx context.Context, member *membership.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// MockPromotionRepository is a mock implementation of membership.PromotionRepository
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindActiveForProduct(ctx context.Context, at time.Time, productID *uuid.UUID) ([]membership.Promotion, error) {
	args := m.Called(ctx, at, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindActive(ctx context.Context, at time.Time) ([]membership.Promotion, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Promotion, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]membership.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) Save(ctx context.Context, promotion *membership.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
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

// MockShiftRepository is a mock implementation of sales.ShiftRepository
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpen(ctx context.Context) (*sales.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*sales.Shift, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*sales.Shift), args.Get(1).(int64), args.Error(2)
}

func (m *MockShiftRepository) Save(ctx context.Context, shift *sales.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) SaveWithLock(ctx context.Context, shift *sales.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}
