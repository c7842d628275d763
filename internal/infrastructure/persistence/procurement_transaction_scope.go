package persistence

import (
	"context"

	appprocurement "github.com/fuelstation/backend/internal/application/procurement"
	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/station"
	"gorm.io/gorm"
)

// GormProcurementTransactionScope implements the batch-receipt
// TransactionScope using GORM transactions.
type GormProcurementTransactionScope struct {
	db *gorm.DB
}

// NewGormProcurementTransactionScope creates a new GormProcurementTransactionScope
func NewGormProcurementTransactionScope(db *gorm.DB) *GormProcurementTransactionScope {
	return &GormProcurementTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormProcurementTransactionScope) Execute(ctx context.Context, fn func(repos appprocurement.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormProcurementRepositories{tx: tx})
	})
}

type gormProcurementRepositories struct {
	tx *gorm.DB
}

func (r *gormProcurementRepositories) BatchRepo() procurement.ImportBatchRepository {
	return NewGormImportBatchRepository(r.tx)
}

func (r *gormProcurementRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormProcurementRepositories) TankRepo() station.TankRepository {
	return NewGormTankRepository(r.tx)
}

func (r *gormProcurementRepositories) TankReadingRepo() station.TankReadingRepository {
	return NewGormTankReadingRepository(r.tx)
}

var _ appprocurement.TransactionScope = (*GormProcurementTransactionScope)(nil)
var _ appprocurement.TransactionalRepositories = (*gormProcurementRepositories)(nil)
