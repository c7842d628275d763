package sales

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/station"
)

// TransactionScope provides transactional access to the repositories a sale
// commit touches. Everything executed within one scope is committed or
// rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sale-commit repositories
// within a transaction. All repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	NozzleRepo() station.NozzleRepository
	TankRepo() station.TankRepository
	TankReadingRepo() station.TankReadingRepository
	MemberRepo() membership.MemberRepository
	PromotionRepo() membership.PromotionRepository
	TransactionRepo() sales.TransactionRepository
	ShiftRepo() sales.ShiftRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for testing with mock repositories.
type NoOpTransactionScope struct {
	productRepo     catalog.ProductRepository
	nozzleRepo      station.NozzleRepository
	tankRepo        station.TankRepository
	tankReadingRepo station.TankReadingRepository
	memberRepo      membership.MemberRepository
	promotionRepo   membership.PromotionRepository
	transactionRepo sales.TransactionRepository
	shiftRepo       sales.ShiftRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	nozzleRepo station.NozzleRepository,
	tankRepo station.TankRepository,
	tankReadingRepo station.TankReadingRepository,
	memberRepo membership.MemberRepository,
	promotionRepo membership.PromotionRepository,
	transactionRepo sales.TransactionRepository,
	shiftRepo sales.ShiftRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:     productRepo,
		nozzleRepo:      nozzleRepo,
		tankRepo:        tankRepo,
		tankReadingRepo: tankReadingRepo,
		memberRepo:      memberRepo,
		promotionRepo:   promotionRepo,
		transactionRepo: transactionRepo,
		shiftRepo:       shiftRepo,
	}
}

// Execute runs the function directly, without transaction semantics.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.productRepo }

func (s *NoOpTransactionScope) NozzleRepo() station.NozzleRepository { return s.nozzleRepo }

func (s *NoOpTransactionScope) TankRepo() station.TankRepository { return s.tankRepo }

func (s *NoOpTransactionScope) TankReadingRepo() station.TankReadingRepository {
	return s.tankReadingRepo
}

func (s *NoOpTransactionScope) MemberRepo() membership.MemberRepository { return s.memberRepo }

func (s *NoOpTransactionScope) PromotionRepo() membership.PromotionRepository {
	return s.promotionRepo
}

func (s *NoOpTransactionScope) TransactionRepo() sales.TransactionRepository {
	return s.transactionRepo
}

func (s *NoOpTransactionScope) ShiftRepo() sales.ShiftRepository { return s.shiftRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
