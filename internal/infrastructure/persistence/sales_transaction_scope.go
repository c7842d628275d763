package persistence

import (
	"context"

	appsales "github.com/fuelstation/backend/internal/application/sales"
	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/station"
	"gorm.io/gorm"
)

// GormSalesTransactionScope implements the sale-commit TransactionScope
// using GORM transactions. Every repository handed to the callback is bound
// to the same database transaction.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	})
}

type gormSalesRepositories struct {
	tx *gorm.DB
}

func (r *gormSalesRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormSalesRepositories) NozzleRepo() station.NozzleRepository {
	return NewGormNozzleRepository(r.tx)
}

func (r *gormSalesRepositories) TankRepo() station.TankRepository {
	return NewGormTankRepository(r.tx)
}

func (r *gormSalesRepositories) TankReadingRepo() station.TankReadingRepository {
	return NewGormTankReadingRepository(r.tx)
}

func (r *gormSalesRepositories) MemberRepo() membership.MemberRepository {
	return NewGormMemberRepository(r.tx)
}

func (r *gormSalesRepositories) PromotionRepo() membership.PromotionRepository {
	return NewGormPromotionRepository(r.tx)
}

func (r *gormSalesRepositories) TransactionRepo() sales.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

func (r *gormSalesRepositories) ShiftRepo() sales.ShiftRepository {
	return NewGormShiftRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)
