package procurement

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/station"
)

// TransactionScope provides transactional access to the repositories a batch
// receipt touches. Everything executed within one scope is committed or
// rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the receipt repositories
// within a transaction. All repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	BatchRepo() procurement.ImportBatchRepository
	ProductRepo() catalog.ProductRepository
	TankRepo() station.TankRepository
	TankReadingRepo() station.TankReadingRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for testing with mock repositories.
type NoOpTransactionScope struct {
	batchRepo       procurement.ImportBatchRepository
	productRepo     catalog.ProductRepository
	tankRepo        station.TankRepository
	tankReadingRepo station.TankReadingRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	batchRepo procurement.ImportBatchRepository,
	productRepo catalog.ProductRepository,
	tankRepo station.TankRepository,
	tankReadingRepo station.TankReadingRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo:       batchRepo,
		productRepo:     productRepo,
		tankRepo:        tankRepo,
		tankReadingRepo: tankReadingRepo,
	}
}

// Execute runs the function directly, without transaction semantics.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) BatchRepo() procurement.ImportBatchRepository { return s.batchRepo }

func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.productRepo }

func (s *NoOpTransactionScope) TankRepo() station.TankRepository { return s.tankRepo }

func (s *NoOpTransactionScope) TankReadingRepo() station.TankReadingRepository {
	return s.tankReadingRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
